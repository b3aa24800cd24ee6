package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm is stamped onto every newly written password hash.
// Existing accounts keep the algorithm recorded at the time of hashing,
// which is what allows a future migration to a stronger function.
const DefaultAlgorithm = "sha256"

var ErrUnknownAlgorithm = errors.New("unknown password algorithm")

var algorithms = map[string]func() hash.Hash{
	"sha256":   sha256.New,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
}

// HashPassword hex-encodes the digest of password under the named algorithm.
// An empty password hashes as the empty string rather than being rejected.
func HashPassword(algorithm, password string) (string, error) {
	newHash, ok := algorithms[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	h := newHash()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// CheckPasswordHash reports whether password hashes to hashedPassword under
// the named algorithm. An unknown algorithm never matches.
func CheckPasswordHash(algorithm, password, hashedPassword string) bool {
	computed, err := HashPassword(algorithm, password)
	if err != nil {
		return false
	}
	return computed == hashedPassword
}
