package locate

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DigestAlgorithm names a hash.Hash constructor usable by the hash stack.
// Only two algorithms are supported, unlike the fifteen of the teacher's
// internals/hash.go registry: the mlocate domain has no file content to
// hash, only directory-entry lists, so the broader registry's
// checksum-family algorithms (CRC, Adler, FNV) have no role here.
type DigestAlgorithm int

const (
	// DigestSHA256 is the default algorithm (spec.md §4.6).
	DigestSHA256 DigestAlgorithm = iota
	// DigestSHA3_512 selects golang.org/x/crypto/sha3's sponge construction;
	// digests produced this way are opaque relative to DigestSHA256 output
	// (spec.md §9), since a non-default algorithm changes both size and value.
	DigestSHA3_512
)

// New returns a fresh, zeroed hash.Hash for this algorithm.
func (d DigestAlgorithm) New() hash.Hash {
	switch d {
	case DigestSHA3_512:
		return sha3.New512()
	default:
		return sha256.New()
	}
}

// Name returns the algorithm's identifier as accepted by --digest-algorithm.
func (d DigestAlgorithm) Name() string {
	switch d {
	case DigestSHA3_512:
		return "sha3-512"
	default:
		return "sha-256"
	}
}

// DigestAlgorithmFromString resolves a --digest-algorithm flag value to a
// DigestAlgorithm.
func DigestAlgorithmFromString(name string) (DigestAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sha-256", "sha256":
		return DigestSHA256, nil
	case "sha3-512", "sha3512":
		return DigestSHA3_512, nil
	default:
		return DigestSHA256, fmt.Errorf("unknown digest algorithm %q", name)
	}
}
