// Package adapter provides transport-layer abstractions for communicating
// with the remote identity provider.
//
// The primary abstraction is [IdentityProvider], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPIdentityProvider]) plus an HTTP-based
// [ConnectivityOracle] ([NewHTTPConnectivityOracle]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrDuplicateEmail] for
// 409 on registration).
package adapter

import (
	"context"

	"github.com/moneytrackultra/go-cashbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider defines transport-agnostic communication with the remote
// identity/profile backend. Implementations are responsible for
// serialisation, bearer-token management, and mapping transport-level errors
// to the sentinel values defined in this package.
//
// All methods that reach the network honour ctx and carry the configured
// request timeout; a timed-out call surfaces as a wrapped [ErrRemote].
type IdentityProvider interface {
	// CreateAccount registers a new account with the provider. On success
	// it stores the returned bearer token and remote identity for
	// CurrentRemoteIdentity. Returns [ErrDuplicateEmail] (wrapped) when the
	// email is already taken, [ErrWeakPassword] (wrapped) when the secret
	// is rejected, or a wrapped [ErrRemote] on any transport failure.
	CreateAccount(ctx context.Context, email, secret string) (models.RemoteIdentity, error)

	// VerifyCredentials authenticates against the provider. On success it
	// stores the returned bearer token and remote identity. Returns
	// [ErrUnauthorized] (wrapped) on rejection, or a wrapped [ErrRemote]
	// on transport failure.
	VerifyCredentials(ctx context.Context, email, secret string) (models.RemoteIdentity, error)

	// Reauthenticate re-confirms the current secret without replacing the
	// held session. Required by the provider before sensitive profile
	// changes (email, password).
	Reauthenticate(ctx context.Context, email, secret string) error

	// UpdateEmail changes the account email. Requires a held session and a
	// prior Reauthenticate.
	UpdateEmail(ctx context.Context, newEmail string) error

	// UpdateDisplayName changes the account display name. Requires a held
	// session.
	UpdateDisplayName(ctx context.Context, newName string) error

	// UpdatePassword changes the account password. Requires a held session
	// and a prior Reauthenticate.
	UpdatePassword(ctx context.Context, newSecret string) error

	// SendPasswordReset asks the provider to send a password-reset message
	// to email. No session required.
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut invalidates the held remote session, locally and (best
	// effort) remotely. The local token is dropped even when the remote
	// call fails.
	SignOut(ctx context.Context) error

	// CurrentRemoteIdentity returns the remote identity bound to the held
	// session token, or nil when no session is held. Never touches the
	// network.
	CurrentRemoteIdentity() *models.RemoteIdentity
}

// ConnectivityOracle answers a point-in-time, best-effort "are we online"
// question. Callers must tolerate false positives and negatives: a remote
// call may still fail after IsOnline returned true.
type ConnectivityOracle interface {
	IsOnline(ctx context.Context) bool
}
