package locate

import "testing"

func TestDigestAlgorithmFromString(t *testing.T) {
	cases := map[string]DigestAlgorithm{
		"":          DigestSHA256,
		"sha-256":   DigestSHA256,
		"sha3-512":  DigestSHA3_512,
		"SHA3-512":  DigestSHA3_512,
	}
	for input, expected := range cases {
		got, err := DigestAlgorithmFromString(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %s", input, err)
		}
		if got != expected {
			t.Errorf("%q: expected %v, got %v", input, expected, got)
		}
	}
}

func TestDigestAlgorithmFromStringUnknown(t *testing.T) {
	_, err := DigestAlgorithmFromString("md5")
	if err == nil {
		t.Error("expected an error for an unsupported algorithm name")
	}
}

func TestDigestAlgorithmNewDistinctSizes(t *testing.T) {
	h256 := DigestSHA256.New()
	h3 := DigestSHA3_512.New()
	if h256.Size() == h3.Size() {
		t.Errorf("expected SHA-256 and SHA3-512 to produce differently sized digests, both were %d", h256.Size())
	}
}
