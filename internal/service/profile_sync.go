package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/internal/store"
	"github.com/moneytrackultra/go-cashbook/models"
)

type profileSyncService struct {
	localState store.LocalState
	provider   adapter.IdentityProvider
	logger     *logger.Logger

	// guard is shared with the session service; see NewSessionService.
	guard *sync.Mutex
}

// NewProfileSyncService builds the [ProfileSyncService]. guard must be the
// mutex shared with the session service.
func NewProfileSyncService(localState store.LocalState, provider adapter.IdentityProvider, guard *sync.Mutex, log *logger.Logger) ProfileSyncService {
	return &profileSyncService{
		localState: localState,
		provider:   provider,
		guard:      guard,
		logger:     log,
	}
}

func (p *profileSyncService) ApplyEdit(ctx context.Context, edit models.ProfileEdit, online bool) (models.SyncResult, error) {
	p.guard.Lock()
	defer p.guard.Unlock()

	cached, err := p.localState.GetIdentity(ctx)
	if err != nil {
		return models.SyncFailed, err
	}
	if cached == nil {
		return models.SyncFailed, ErrNoCachedUser
	}

	nameChanged := edit.NewName != "" && edit.NewName != cached.DisplayName
	emailChanged := edit.NewEmail != "" && !cached.EmailEquals(edit.NewEmail)
	if !nameChanged && !emailChanged {
		return models.SyncNoChange, nil
	}

	if !online {
		if err = p.applyLocally(ctx, cached, edit, nameChanged, emailChanged); err != nil {
			return models.SyncFailed, err
		}
		p.logger.Info().Str("user_id", cached.ID).Msg("profile edit queued for sync")
		return models.SyncAppliedLocally, nil
	}

	if emailChanged {
		return p.applyOnlineWithEmail(ctx, cached, edit, nameChanged)
	}
	return p.applyOnlineNameOnly(ctx, cached, edit)
}

// applyOnlineWithEmail handles the strict path: an email change requires a
// fresh reauthentication and must not be silently deferred. Any failure
// before the email lands remotely leaves local state untouched.
func (p *profileSyncService) applyOnlineWithEmail(ctx context.Context, cached *models.Identity, edit models.ProfileEdit, nameChanged bool) (models.SyncResult, error) {
	if edit.CurrentSecret == "" {
		return models.SyncFailed, ErrReauthFailed
	}
	if err := p.provider.Reauthenticate(ctx, cached.Email, edit.CurrentSecret); err != nil {
		return models.SyncFailed, fmt.Errorf("%w: %v", ErrReauthFailed, err)
	}
	if err := p.provider.UpdateEmail(ctx, edit.NewEmail); err != nil {
		return models.SyncFailed, fmt.Errorf("%w: %v", ErrEmailUpdateFailed, err)
	}

	updated := *cached
	updated.Email = edit.NewEmail
	if err := p.localState.PutIdentity(ctx, &updated); err != nil {
		return models.SyncFailed, err
	}

	if !nameChanged {
		return models.SyncSynced, nil
	}

	if err := p.provider.UpdateDisplayName(ctx, edit.NewName); err != nil {
		// Email already landed on both sides; report the partial outcome.
		return models.SyncEmailOnly, fmt.Errorf("%w: %v", ErrNameUpdateFailed, err)
	}
	updated.DisplayName = edit.NewName
	if err := p.localState.PutIdentity(ctx, &updated); err != nil {
		return models.SyncEmailOnly, err
	}
	return models.SyncSynced, nil
}

// applyOnlineNameOnly handles a display-name-only edit. A remote failure
// degrades to the offline path instead of failing the edit.
func (p *profileSyncService) applyOnlineNameOnly(ctx context.Context, cached *models.Identity, edit models.ProfileEdit) (models.SyncResult, error) {
	if err := p.provider.UpdateDisplayName(ctx, edit.NewName); err != nil {
		p.logger.Warn().Err(err).Msg("remote display name update failed, applying locally")
		if localErr := p.applyLocally(ctx, cached, edit, true, false); localErr != nil {
			return models.SyncFailed, localErr
		}
		return models.SyncAppliedLocallyFallback, nil
	}

	updated := *cached
	updated.DisplayName = edit.NewName
	if err := p.localState.PutIdentity(ctx, &updated); err != nil {
		return models.SyncFailed, err
	}
	return models.SyncSynced, nil
}

// applyLocally writes the edit to the cached identity and raises the
// pending-sync flag so a later drain can push it to the provider.
func (p *profileSyncService) applyLocally(ctx context.Context, cached *models.Identity, edit models.ProfileEdit, nameChanged, emailChanged bool) error {
	updated := *cached
	if nameChanged {
		updated.DisplayName = edit.NewName
	}
	if emailChanged {
		updated.Email = edit.NewEmail
	}
	if err := p.localState.PutIdentity(ctx, &updated); err != nil {
		return err
	}
	return p.localState.SetPendingSync(ctx, true)
}

func (p *profileSyncService) DrainIfPending(ctx context.Context, online bool) {
	p.guard.Lock()
	defer p.guard.Unlock()

	if !online {
		return
	}

	pending, cached, err := p.localState.PendingProfile(ctx)
	if err != nil {
		p.logger.Error().Err(err).Msg("pending profile read failed")
		return
	}
	if !pending || cached == nil {
		return
	}

	// An email pushed from a drain is as good as one pushed online, but
	// only when the provider session is still live; otherwise the flag
	// stays up for the next attempt.
	remote := p.provider.CurrentRemoteIdentity()
	if remote == nil {
		p.logger.Debug().Msg("pending profile sync deferred, no remote session")
		return
	}

	if remote.DisplayName != cached.DisplayName {
		if err = p.provider.UpdateDisplayName(ctx, cached.DisplayName); err != nil {
			p.logger.Warn().Err(err).Msg("pending display name push failed")
			return
		}
	}
	if remote.Email != "" && !cached.EmailEquals(remote.Email) {
		if err = p.provider.UpdateEmail(ctx, cached.Email); err != nil {
			p.logger.Warn().Err(err).Msg("pending email push failed")
			return
		}
	}

	if err = p.localState.SetPendingSync(ctx, false); err != nil {
		p.logger.Error().Err(err).Msg("pending sync flag clear failed")
		return
	}
	p.logger.Info().Str("user_id", cached.ID).Msg("pending profile edits drained")
}
