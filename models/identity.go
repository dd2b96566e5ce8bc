package models

import (
	"strings"
	"time"
)

// Identity is the cached user profile record. Exactly one Identity is stored
// on a device at a time (single-user device assumption). It is created on
// registration or first login, mutated by profile edits, and removed wholesale
// on hard logout.
type Identity struct {
	// ID is the immutable identifier assigned by the remote identity
	// provider (or synthesized locally if the provider returned none).
	ID string `json:"id"`

	// Email is the account email address. Compared case-insensitively.
	Email string `json:"email"`

	// DisplayName is the human-readable name shown in UI.
	DisplayName string `json:"display_name"`

	// AvatarRef is an optional reference to the user's avatar image.
	AvatarRef string `json:"avatar_ref,omitempty"`

	// CreatedAt is when the account record was first established on this
	// device.
	CreatedAt time.Time `json:"created_at"`
}

// EmailEquals reports whether the identity's email matches other,
// case-insensitively.
func (i Identity) EmailEquals(other string) bool {
	return strings.EqualFold(i.Email, other)
}

// RemoteIdentity is the provider-side view of an account as returned by the
// remote identity provider. DisplayName and AvatarRef may be empty if the
// provider does not track them.
type RemoteIdentity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarRef   string `json:"avatar_url,omitempty"`
}
