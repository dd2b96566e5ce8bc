package store

import (
	"context"

	"github.com/moneytrackultra/go-cashbook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_state_mock.go -package=mock

// LocalState is the single durable record store of the identity core. It
// holds the cached Identity, the Credential Record, the session flags, the
// pending profile-sync record, and a handful of device-level settings.
//
// Every write is flushed before the call returns, and every named value is
// serialized as one atomic unit: concurrent readers observe either the
// pre-write or post-write value, never a torn intermediate state. LocalState
// must only be mutated through this interface, never by UI code.
type LocalState interface {
	// GetIdentity returns the cached Identity, or nil if none is stored.
	GetIdentity(ctx context.Context) (*models.Identity, error)
	// PutIdentity stores identity as the single cached profile record.
	// A nil identity clears it.
	PutIdentity(ctx context.Context, identity *models.Identity) error

	// GetCredentialRecord returns the stored offline credential, or nil if
	// none is stored.
	GetCredentialRecord(ctx context.Context) (*models.CredentialRecord, error)
	// PutCredentialRecord stores the salt/hash pair as one atomic unit so a
	// crash mid-write can never leave a half-written credential. A nil
	// record clears it.
	PutCredentialRecord(ctx context.Context, record *models.CredentialRecord) error

	// GetSessionState returns the durable session flag pair.
	GetSessionState(ctx context.Context) (models.SessionState, error)
	// SetProvider records which backend established the session.
	// ProviderNone clears the record.
	SetProvider(ctx context.Context, provider models.AuthProvider) error
	// SetSoftLoggedOut sets or clears the soft-logout flag.
	SetSoftLoggedOut(ctx context.Context, value bool) error

	// GetPendingSync reports whether a locally-applied profile edit has not
	// yet been confirmed against the remote provider.
	GetPendingSync(ctx context.Context) (bool, error)
	// SetPendingSync sets or clears the pending-sync flag.
	SetPendingSync(ctx context.Context, pending bool) error
	// PendingProfile reads the pending-sync flag together with the cached
	// Identity snapshot it applies to, atomically. Drain logic must use
	// this instead of separate reads so a racing local edit cannot be
	// observed half-applied.
	PendingProfile(ctx context.Context) (bool, *models.Identity, error)

	// FirstLaunchDone reports whether onboarding has already been shown on
	// this device.
	FirstLaunchDone(ctx context.Context) (bool, error)
	// MarkFirstLaunchDone records that onboarding has been handled.
	MarkFirstLaunchDone(ctx context.Context) error

	// Currency returns the stored ledger display currency code, or "" if
	// none has been chosen yet.
	Currency(ctx context.Context) (string, error)
	// SaveCurrency stores code as the ledger display currency. The code
	// must be a known ISO-4217 currency code.
	SaveCurrency(ctx context.Context, code string) error

	// ClearDomainDataPreserveIdentity wipes all ledger-scoped records
	// (transactions, wallets, aggregates, limits, currency, seed marker,
	// pending-sync record) while preserving the Identity, Credential
	// Record, and session flags. Registered OnDomainDataCleared callbacks
	// fire after the wipe commits.
	ClearDomainDataPreserveIdentity(ctx context.Context) error
	// ClearEverything wipes every stored record, identity included.
	ClearEverything(ctx context.Context) error
	// OnDomainDataCleared registers a callback invoked after every
	// successful ClearDomainDataPreserveIdentity. Used by ledger screens
	// to refresh.
	OnDomainDataCleared(fn func())
}
