package service

import "errors"

// Authentication errors. Surfaced verbatim to the caller/UI and never
// retried automatically.
var (
	ErrNoCachedUser        = errors.New("no cached user")
	ErrEmailMismatch       = errors.New("email does not match cached user")
	ErrProviderMismatch    = errors.New("cached provider does not allow this operation")
	ErrNoOfflineCredential = errors.New("no offline credential stored")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNoRemoteSession     = errors.New("no remote session held")
)

// Profile sync errors. Each names the step of an online edit that failed so
// the caller can tell the user exactly what did and did not change.
var (
	ErrReauthFailed      = errors.New("re-authentication failed")
	ErrEmailUpdateFailed = errors.New("remote email update failed")
	ErrNameUpdateFailed  = errors.New("remote display name update failed")
)
