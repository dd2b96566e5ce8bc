package models

// ProfileEdit describes a requested change to the cached profile. Empty
// fields mean "unchanged". CurrentSecret must be supplied when NewEmail
// differs from the cached email and the edit is applied online, because the
// remote provider requires re-authentication before an email change.
type ProfileEdit struct {
	NewName       string
	NewEmail      string
	CurrentSecret string
}

// Empty reports whether the edit carries no field changes at all.
func (e ProfileEdit) Empty() bool {
	return e.NewName == "" && e.NewEmail == ""
}

// SyncResult reports how far a profile edit got when it was applied.
type SyncResult int

const (
	// SyncFailed means nothing was applied, locally or remotely.
	SyncFailed SyncResult = iota

	// SyncNoChange means the edit matched the cached profile exactly.
	SyncNoChange

	// SyncSynced means the edit was confirmed by the remote provider and
	// persisted locally.
	SyncSynced

	// SyncAppliedLocally means the edit was persisted locally with the
	// pending-sync flag set; no remote call was attempted.
	SyncAppliedLocally

	// SyncAppliedLocallyFallback means a remote update was attempted and
	// failed, so the edit was persisted locally and deferred instead.
	SyncAppliedLocallyFallback

	// SyncEmailOnly means the email change was confirmed remotely and
	// persisted, but the display-name update failed afterwards. The caller
	// must surface this partial outcome to the user.
	SyncEmailOnly
)

func (r SyncResult) String() string {
	switch r {
	case SyncNoChange:
		return "no_change"
	case SyncSynced:
		return "synced"
	case SyncAppliedLocally:
		return "applied_locally"
	case SyncAppliedLocallyFallback:
		return "applied_locally_fallback"
	case SyncEmailOnly:
		return "email_only"
	default:
		return "failed"
	}
}
