package locate

import "testing"

func TestHashStackSelectPopOrder(t *testing.T) {
	s := NewHashStack(DigestSHA256)
	var popped []string
	s.PopObserver = func(e PopEvent) {
		popped = append(popped, string(e.Path))
	}

	s.Select([]byte("/a/b"))
	s.SumContents(nil)
	s.Select([]byte("/a/c"))
	s.SumContents(nil)
	s.Flush()

	expected := []string{"/a/b", "/a/c", "/a", ""}
	if len(popped) != len(expected) {
		t.Fatalf("expected pop order %v, got %v", expected, popped)
	}
	for i, e := range expected {
		if popped[i] != e {
			t.Errorf("pop %d: expected %q, got %q", i, e, popped[i])
		}
	}
}

func TestHashStackPopEventParentPath(t *testing.T) {
	s := NewHashStack(DigestSHA256)
	events := make(map[string]PopEvent)
	s.PopObserver = func(e PopEvent) {
		events[string(e.Path)] = e
	}

	s.Select([]byte("/a/b"))
	s.SumContents(nil)
	s.Flush()

	ev, ok := events["/a/b"]
	if !ok {
		t.Fatal("expected a pop event for /a/b")
	}
	if string(ev.ParentPath) != "/a" {
		t.Errorf("expected parent path %q, got %q", "/a", ev.ParentPath)
	}
}

func TestHashStackSameContentSameDigest(t *testing.T) {
	entries := []Entry{{IsSubdir: false, Name: []byte("a.txt")}}

	digest := func(path string) string {
		s := NewHashStack(DigestSHA256)
		var got string
		s.PopObserver = func(e PopEvent) {
			if string(e.Path) == path {
				got = e.Digest
			}
		}
		s.Select([]byte(path))
		s.SumContents(entries)
		s.Flush()
		return got
	}

	a := digest("/x/dirA")
	b := digest("/y/dirB")
	if a != b {
		t.Errorf("expected identical entry lists to hash identically, got %q and %q", a, b)
	}
}

func TestHashStackEmptyDirDigestMatchesEncodeEntriesNil(t *testing.T) {
	s := NewHashStack(DigestSHA256)
	if s.EmptyDirDigest() != EMPTY_DIR_DIGEST {
		t.Errorf("expected SHA-256 EmptyDirDigest to equal the fixed constant, got %q vs %q", s.EmptyDirDigest(), EMPTY_DIR_DIGEST)
	}

	s3 := NewHashStack(DigestSHA3_512)
	if s3.EmptyDirDigest() == EMPTY_DIR_DIGEST {
		t.Error("expected SHA3-512's empty-dir digest to differ from the SHA-256 constant")
	}
}

func TestSumContentsUsesStackAlgorithm(t *testing.T) {
	entries := []Entry{{Name: []byte("a.txt")}}

	s256 := NewHashStack(DigestSHA256)
	got256 := s256.SumContents(entries)
	want256 := digestHexOf(DigestSHA256, encodeEntries(entries))
	if got256 != want256 {
		t.Errorf("expected SHA-256 digest %q, got %q", want256, got256)
	}

	s3 := NewHashStack(DigestSHA3_512)
	got3 := s3.SumContents(entries)
	want3 := digestHexOf(DigestSHA3_512, encodeEntries(entries))
	if got3 != want3 {
		t.Errorf("expected SHA3-512 digest %q, got %q", want3, got3)
	}
	if got3 == got256 {
		t.Error("expected SumContents under SHA3-512 to differ from SHA-256")
	}
}

func TestEncodeEntriesOrderSensitive(t *testing.T) {
	a := encodeEntries([]Entry{{Name: []byte("a")}, {Name: []byte("b")}})
	b := encodeEntries([]Entry{{Name: []byte("b")}, {Name: []byte("a")}})
	if string(a) == string(b) {
		t.Error("expected entry order to affect the canonical encoding")
	}
}
