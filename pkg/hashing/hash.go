// Package hashing computes hex digests of strings under a named algorithm.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"slices"
	"strings"

	"github.com/aretw0/utilkit/pkg/domain"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a supported digest.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	XXH64      Algorithm = "xxh64"
)

// Default is the algorithm used when the caller does not name one.
const Default = MD5

var registry = map[Algorithm]func() hash.Hash{
	MD5:      md5.New,
	SHA1:     sha1.New,
	SHA224:   sha256.New224,
	SHA256:   sha256.New,
	SHA384:   sha512.New384,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	SHA3_512: sha3.New512,
	BLAKE2b256: func() hash.Hash {
		// Only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
	XXH64: func() hash.Hash { return xxhash.New() },
}

// aliases maps the squashed form of a name (lower case, no separators) to its algorithm.
var aliases = func() map[string]Algorithm {
	m := make(map[string]Algorithm, len(registry))
	for alg := range registry {
		m[squash(string(alg))] = alg
	}
	return m
}()

func squash(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

// Algorithms returns the supported algorithm names, sorted.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for alg := range registry {
		out = append(out, alg)
	}
	slices.Sort(out)
	return out
}

// ParseAlgorithm resolves a user supplied name such as "SHA-256" or "sha_256".
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := aliases[squash(name)]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: unsupported hash algorithm %q", domain.ErrInvalidArgument, name)
}

func (a Algorithm) String() string {
	return string(a)
}

// Sum returns the lower-case hex digest of the UTF-8 bytes of s.
func Sum(s string, alg Algorithm) (string, error) {
	newHash, ok := registry[alg]
	if !ok {
		return "", fmt.Errorf("%w: unsupported hash algorithm %q", domain.ErrInvalidArgument, alg)
	}

	h := newHash()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumNamed parses name and hashes s with the resulting algorithm.
func SumNamed(s, name string) (string, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return "", err
	}
	return Sum(s, alg)
}
