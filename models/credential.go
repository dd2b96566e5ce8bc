package models

// CredentialRecord is the salted, hashed representation of the account
// password that enables offline login verification. Both fields are
// base64-encoded and are always written together as one unit; the plaintext
// secret is never stored. Present only for the EMAIL provider.
type CredentialRecord struct {
	SaltB64 string `json:"salt_b64"`
	HashB64 string `json:"hash_b64"`
}
