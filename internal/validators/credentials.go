// Package validators enforces input rules for account credentials and
// profile fields. The checks are deliberately lenient: the remote provider
// is the authority on what it accepts, these validators only reject input
// that no provider would take, before a network round trip is spent on it.
package validators

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6
	// MaxDisplayNameLength is the maximum accepted display name length in
	// runes.
	MaxDisplayNameLength = 120
)

// ValidateEmail reports whether email is a plausible address. Returns
// [ErrInvalidEmail] otherwise.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the minimum password strength. Returns
// [ErrWeakPassword] for anything shorter than [MinPasswordLength].
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// ValidateDisplayName bounds the display name length. Empty names are
// allowed; the provider substitutes a default.
func ValidateDisplayName(name string) error {
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return ErrDisplayNameTooLong
	}
	return nil
}
