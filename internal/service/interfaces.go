// Package service implements the identity core's business logic: the session
// state machine (online and offline authentication, soft/hard logout) and
// the profile-edit reconciliation queue.
//
// All mutating operations across both services are serialized by a shared
// single-flight guard: at most one of register/login/logout/apply-edit/drain
// runs at a time, so there is never a concurrent-write race on the Identity
// or the Credential Record.
package service

import (
	"context"
	"time"

	"github.com/moneytrackultra/go-cashbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SessionService is the authentication engine consumed by UI code.
type SessionService interface {
	// Register creates the account with the remote provider and
	// establishes a full local session: cached Identity, EMAIL provider,
	// cleared soft-logout flag, and a fresh offline Credential Record.
	// Nothing is persisted when the remote call fails.
	Register(ctx context.Context, email, secret, displayName string) (models.Identity, error)

	// LoginOnline verifies credentials with the remote provider. The
	// provider is authoritative: a cached Identity with a different email
	// is replaced by one built from the remote result. The Credential
	// Record is refreshed from secret so offline login keeps working.
	LoginOnline(ctx context.Context, email, secret string) (models.Identity, error)

	// LoginOffline verifies secret against the stored Credential Record
	// without any network access. On success only the soft-logout flag is
	// cleared; the cached Identity and Credential Record are untouched.
	LoginOffline(ctx context.Context, email, secret string) (models.Identity, error)

	// SoftLogout suspends the session while keeping the Identity,
	// Credential Record, and provider cached. Always succeeds.
	SoftLogout(ctx context.Context) error

	// HardLogout invalidates the remote session (best effort), then clears
	// the Identity, Credential Record, and provider. Remote failure never
	// blocks the local wipe.
	HardLogout(ctx context.Context) error

	// ResumeSocialSession resumes a soft-logged-out GOOGLE or FACEBOOK
	// session without credentials, provided a remote session is still
	// held. Both social providers are treated uniformly.
	ResumeSocialSession(ctx context.Context) (models.Identity, error)

	// RequestPasswordReset asks the provider to send a reset message.
	RequestPasswordReset(ctx context.Context, email string) error

	// ChangePassword re-authenticates with current, updates the password
	// remotely, and regenerates the Credential Record from next with a
	// fresh salt.
	ChangePassword(ctx context.Context, current, next string) error

	// IsActiveSession reports whether a remote-capable session token is
	// held, an Identity is cached, and the soft-logout flag is clear.
	IsActiveSession(ctx context.Context) (bool, error)

	// CurrentPhase derives the session state machine position from durable
	// state and the held remote session.
	CurrentPhase(ctx context.Context) (models.SessionPhase, error)
}

// ProfileSyncService reconciles locally-applied profile edits against the
// remote identity provider.
type ProfileSyncService interface {
	// ApplyEdit applies a profile edit immediately (online) or deferred
	// (offline). See [models.SyncResult] for the possible outcomes; errors
	// distinguish which step of an online edit failed.
	ApplyEdit(ctx context.Context, edit models.ProfileEdit, online bool) (models.SyncResult, error)

	// DrainIfPending pushes a deferred edit to the provider if one is
	// pending and online is true. Best-effort: failures leave the pending
	// flag set for a later retry and are never surfaced to the caller.
	DrainIfPending(ctx context.Context, online bool)
}

// DrainJob periodically checks connectivity and drains pending profile
// edits in the background.
type DrainJob interface {
	// Start launches the background drain loop with the given tick
	// interval. A previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the background loop and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
