package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_hasher_mock.go -package=mock

// CredentialHasher derives a verifiable secret from a plaintext password and
// a random salt, and verifies candidates in constant time. It knows nothing
// about the network, the store, or the user; its only job is deriving and
// comparing password hashes for offline login.
//
// The hashing here is device-local "good enough": it protects a cached
// password on a single-user device, it is not a server-grade multi-tenant
// password store.
type CredentialHasher interface {
	// NewSalt generates a cryptographically random 16-byte salt and returns
	// it base64-encoded. A fresh salt must be generated on every
	// password-establishing event; salts are never reused across secrets.
	NewSalt() (string, error)

	// Hash applies the key-derivation function to secret and the decoded
	// salt and returns the base64-encoded result. Deterministic for a given
	// (secret, salt) pair.
	Hash(secret []byte, saltB64 string) (string, error)

	// Verify recomputes the hash for secret and saltB64 and compares it
	// against expectedHashB64 in constant time. A length mismatch still
	// consumes a full comparison pass rather than short-circuiting.
	// Returns an error only for malformed base64 input.
	Verify(secret []byte, saltB64, expectedHashB64 string) (bool, error)
}
