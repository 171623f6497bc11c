// Package hasher provides types and interfaces for hash calculating.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

// Hasher is the interface that fingerprint hashers must implement.
// Implementations are safe for concurrent use.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

type sha256Hasher struct {
	newHash func() hash.Hash
}

// NewSHA256Hasher creates a new sha256Hasher instance.
func NewSHA256Hasher() Hasher {
	return &sha256Hasher{
		newHash: sha256.New,
	}
}

// Name implements Hasher interface.
func (h *sha256Hasher) Name() string {
	return "sha256"
}

// Hash implements Hasher interface. Every call starts from a fresh state.
func (h *sha256Hasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	sum := h.newHash()

	n, err := sum.Write(data)
	if n < len(data) || err != nil {
		return nil, fmt.Errorf("failed to write data: %w", err)
	}

	return sum.Sum(nil), nil
}

// HexString returns the hex encoded hash of the data.
func HexString(h Hasher, data []byte) (string, error) {
	sum, err := h.Hash(data)
	if err != nil {
		return "", fmt.Errorf("failed to calculate %s: %w", h.Name(), err)
	}

	return hex.EncodeToString(sum), nil
}
