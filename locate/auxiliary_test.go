package locate

import "testing"

func TestHumanReadableBytes(t *testing.T) {
	tests := map[uint64]string{
		0:          "0.00 bytes",
		1024:       "1.00 KiB",
		1048576:    "1.00 MiB",
		1073741824: "1.00 GiB",
	}
	for input, expected := range tests {
		got := HumanReadableBytes(input)
		if got != expected {
			t.Errorf("HumanReadableBytes(%d): expected %q, got %q", input, expected, got)
		}
	}
}

func TestDetermineDepth(t *testing.T) {
	tests := map[string]uint32{
		"/":        0,
		"/a":       1,
		"/a/b":     2,
		"/a/b/c":   3,
		"":         0,
	}
	for input, expected := range tests {
		got := DetermineDepth([]byte(input))
		if got != expected {
			t.Errorf("DetermineDepth(%q): expected %d, got %d", input, expected, got)
		}
	}
}
