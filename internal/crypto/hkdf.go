package crypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MaxExpandLength is the RFC 5869 output bound for HKDF-SHA256 (255 * 32).
const MaxExpandLength = 255 * sha256.Size

// ErrLengthBound is returned when HKDF-Expand is asked for more than
// MaxExpandLength bytes.
var ErrLengthBound = errors.New("hkdf expand length out of bounds")

// Extract implements HKDF-Extract with SHA-256. An empty salt is treated as
// a block of sha256.Size zero bytes.
func Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(sha256.New, ikm, salt)
}

// Expand implements HKDF-Expand with SHA-256 and returns exactly length
// bytes of output keying material.
func Expand(prk, info []byte, length int) ([]byte, error) {
	if length < 0 || length > MaxExpandLength {
		return nil, fmt.Errorf("expand %d bytes (max %d): %w", length, MaxExpandLength, ErrLengthBound)
	}
	okm := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, info), okm); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return okm, nil
}
