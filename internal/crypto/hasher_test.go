package crypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialHasher_NewSalt(t *testing.T) {
	h := NewCredentialHasher()

	s1, err := h.NewSalt()
	require.NoError(t, err)
	s2, err := h.NewSalt()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(s1)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
	assert.NotEqual(t, s1, s2, "two salts must not collide")
}

func TestCredentialHasher_Hash_Deterministic(t *testing.T) {
	h := NewCredentialHasher()

	salt, err := h.NewSalt()
	require.NoError(t, err)

	h1, err := h.Hash([]byte("secret123"), salt)
	require.NoError(t, err)
	h2, err := h.Hash([]byte("secret123"), salt)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	raw, err := base64.StdEncoding.DecodeString(h1)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestCredentialHasher_Hash_SaltChangesOutput(t *testing.T) {
	h := NewCredentialHasher()

	s1, err := h.NewSalt()
	require.NoError(t, err)
	s2, err := h.NewSalt()
	require.NoError(t, err)

	h1, err := h.Hash([]byte("secret123"), s1)
	require.NoError(t, err)
	h2, err := h.Hash([]byte("secret123"), s2)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestCredentialHasher_Verify(t *testing.T) {
	h := NewCredentialHasher()

	salt, err := h.NewSalt()
	require.NoError(t, err)
	hash, err := h.Hash([]byte("secret123"), salt)
	require.NoError(t, err)

	ok, err := h.Verify([]byte("secret123"), salt, hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify([]byte("secret124"), salt, hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialHasher_Verify_LengthMismatch(t *testing.T) {
	h := NewCredentialHasher()

	salt, err := h.NewSalt()
	require.NoError(t, err)

	// A truncated-but-valid base64 hash must compare false without error:
	// wrong length never short-circuits into a different error path than a
	// wrong value.
	short := base64.StdEncoding.EncodeToString([]byte("short"))
	ok, err := h.Verify([]byte("secret123"), salt, short)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentialHasher_MalformedInput(t *testing.T) {
	h := NewCredentialHasher()

	_, err := h.Hash([]byte("secret123"), "%%%not-base64%%%")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	salt, err := h.NewSalt()
	require.NoError(t, err)

	_, err = h.Verify([]byte("secret123"), salt, "%%%not-base64%%%")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))

	_, err = h.Verify([]byte("secret123"), "%%%not-base64%%%", "aGFzaA==")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedInput))
}
