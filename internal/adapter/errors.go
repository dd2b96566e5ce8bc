package adapter

import "errors"

var (
	// ErrRemote is the opaque wrapper around provider/transport failures.
	// Treated as transient; never retried automatically except by the
	// deferred profile-sync path.
	ErrRemote = errors.New("remote identity provider error")

	// ErrUnauthorized indicates the provider rejected the held session or
	// the supplied credentials.
	ErrUnauthorized = errors.New("unauthorized by identity provider")

	// ErrDuplicateEmail indicates a registration attempt with an email the
	// provider already knows.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrWeakPassword indicates the provider rejected the secret as too
	// weak.
	ErrWeakPassword = errors.New("password rejected as too weak")
)
