package validators

import "errors"

var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("weak password")
	ErrDisplayNameTooLong = errors.New("display name too long")
)
