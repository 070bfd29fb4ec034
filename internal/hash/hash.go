// Package hash provides content fingerprints for mission requests.
//
// A fingerprint identifies a (mass, flight path) input independent of how it
// was submitted, so the HTTP service can expose it as an ETag and the CLI can
// print it alongside JSON results. The package provides both a real
// implementation using crypto/sha256 and a fake implementation for testing.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Hasher provides an abstraction for fingerprinting operations.
type Hasher interface {
	// HashParts computes the fingerprint of the ordered parts.
	HashParts(parts ...string) string
}

// SHA256Hasher implements Hasher using SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashParts computes the hex SHA-256 of the parts joined by NUL bytes.
// The separator keeps ["ab", "c"] and ["a", "bc"] distinct.
func (h *SHA256Hasher) HashParts(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

// FakeHasher implements Hasher with deterministic hashes for testing.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a new FakeHasher.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{
		hashes: make(map[string]string),
	}
}

// SetHash sets the hash returned for the given parts (for testing).
func (h *FakeHasher) SetHash(hash string, parts ...string) {
	h.hashes[strings.Join(parts, "|")] = hash
}

// HashParts returns the predetermined hash for the given parts.
func (h *FakeHasher) HashParts(parts ...string) string {
	if hash, ok := h.hashes[strings.Join(parts, "|")]; ok {
		return hash
	}
	// Default hash if not set
	return "fakehash"
}
