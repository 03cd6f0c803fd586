package fingerprint

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hasher is the digest contract the calculator depends on: a pure,
// deterministic mapping from a byte sequence to a string digest. A Hasher
// must hold no state between calls and must be safe for concurrent use.
type Hasher interface {
	// Hash returns the digest of data. Implementations backed by the SHA
	// family never fail; the error return exists for hashers that can
	// reject input (for example, encoding-sensitive external digesters).
	Hash(data []byte) (string, error)

	// Algorithm returns the canonical lowercase name of the digest
	// algorithm, e.g. "sha256".
	Algorithm() string
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(data []byte) (string, error)

// Hash calls fn(data).
func (fn HasherFunc) Hash(data []byte) (string, error) {
	return fn(data)
}

// Algorithm returns "custom" for function-backed hashers.
func (HasherFunc) Algorithm() string {
	return "custom"
}

// Algorithm names accepted by NewHasher.
const (
	AlgorithmSHA1   = "sha1"
	AlgorithmSHA256 = "sha256"
	AlgorithmSHA512 = "sha512"
)

// DefaultAlgorithm is used when no algorithm is configured.
const DefaultAlgorithm = AlgorithmSHA256

type shaHasher struct {
	name string
	sum  func([]byte) []byte
}

func (h shaHasher) Hash(data []byte) (string, error) {
	return hex.EncodeToString(h.sum(data)), nil
}

func (h shaHasher) Algorithm() string {
	return h.name
}

// SHA256 returns the default hasher: hex-encoded SHA-256.
func SHA256() Hasher {
	return shaHasher{name: AlgorithmSHA256, sum: func(data []byte) []byte {
		sum := sha256.Sum256(data)
		return sum[:]
	}}
}

// SHA1 returns a hex-encoded SHA-1 hasher, for callers that need shorter
// digests and do not rely on collision resistance.
func SHA1() Hasher {
	return shaHasher{name: AlgorithmSHA1, sum: func(data []byte) []byte {
		sum := sha1.Sum(data)
		return sum[:]
	}}
}

// SHA512 returns a hex-encoded SHA-512 hasher.
func SHA512() Hasher {
	return shaHasher{name: AlgorithmSHA512, sum: func(data []byte) []byte {
		sum := sha512.Sum512(data)
		return sum[:]
	}}
}

// NewHasher resolves an algorithm name to a built-in hasher. Names are
// case-insensitive; the empty string resolves to DefaultAlgorithm.
func NewHasher(algorithm string) (Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", DefaultAlgorithm:
		return SHA256(), nil
	case AlgorithmSHA1:
		return SHA1(), nil
	case AlgorithmSHA512:
		return SHA512(), nil
	default:
		return nil, fmt.Errorf("fingerprint: unsupported hash algorithm %q", algorithm)
	}
}
