package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// ErrMalformedInput indicates that a salt or hash passed to the hasher was
// not valid base64. The offending value is never included in the error so
// that credential material cannot leak into logs.
var ErrMalformedInput = errors.New("malformed credential hasher input")

// pbkdf2Hasher is the private implementation of [CredentialHasher].
type pbkdf2Hasher struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	iterations int
	keyLen     int
	saltLen    int
}

// NewCredentialHasher constructs a [CredentialHasher] backed by
// PBKDF2-HMAC-SHA256 with 12 000 iterations, a 16-byte salt, and a 32-byte
// (256-bit) derived key.
func NewCredentialHasher() CredentialHasher {
	return &pbkdf2Hasher{
		iterations: 12000,
		keyLen:     32, // 256 bits
		saltLen:    16,
	}
}

// NewSalt implements [CredentialHasher]. It reads the salt bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (h *pbkdf2Hasher) NewSalt() (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// Hash implements [CredentialHasher].
func (h *pbkdf2Hasher) Hash(secret []byte, saltB64 string) (string, error) {
	key, err := h.derive(secret, saltB64)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// Verify implements [CredentialHasher]. The derivation always runs before
// any comparison, and a length mismatch burns a same-length compare pass so
// that total verification time does not depend on where (or whether) the
// candidate diverges from the expected hash.
func (h *pbkdf2Hasher) Verify(secret []byte, saltB64, expectedHashB64 string) (bool, error) {
	expected, err := base64.StdEncoding.DecodeString(expectedHashB64)
	if err != nil {
		return false, fmt.Errorf("%w: decode expected hash: %v", ErrMalformedInput, err)
	}

	computed, err := h.derive(secret, saltB64)
	if err != nil {
		return false, err
	}

	if len(expected) != len(computed) {
		subtle.ConstantTimeCompare(computed, computed)
		return false, nil
	}

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func (h *pbkdf2Hasher) derive(secret []byte, saltB64 string) ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return nil, fmt.Errorf("%w: decode salt: %v", ErrMalformedInput, err)
	}
	return pbkdf2.Key(secret, salt, h.iterations, h.keyLen, sha256.New), nil
}
