package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
	"github.com/moneytrackultra/go-cashbook/internal/crypto"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/internal/store"
	"github.com/moneytrackultra/go-cashbook/models"
)

type sessionService struct {
	localState store.LocalState
	provider   adapter.IdentityProvider
	hasher     crypto.CredentialHasher
	logger     *logger.Logger

	// guard is the single-flight lock shared with the profile sync
	// service; every mutating operation holds it end to end.
	guard *sync.Mutex

	authenticating atomic.Bool
}

// NewSessionService builds the [SessionService]. guard must be the same
// mutex handed to the profile sync service so session and profile mutations
// serialize against each other.
func NewSessionService(localState store.LocalState, provider adapter.IdentityProvider, hasher crypto.CredentialHasher, guard *sync.Mutex, log *logger.Logger) SessionService {
	return &sessionService{
		localState: localState,
		provider:   provider,
		hasher:     hasher,
		guard:      guard,
		logger:     log,
	}
}

func (s *sessionService) Register(ctx context.Context, email, secret, displayName string) (models.Identity, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.authenticating.Store(true)
	remote, err := s.provider.CreateAccount(ctx, email, secret)
	s.authenticating.Store(false)
	if err != nil {
		return models.Identity{}, fmt.Errorf("register: %w", err)
	}

	// The display name lives on the provider too, but a failure here must
	// not fail registration: the profile sync path can repair it later.
	if displayName != "" {
		if nameErr := s.provider.UpdateDisplayName(ctx, displayName); nameErr != nil {
			s.logger.Warn().Err(nameErr).Msg("display name not set remotely during registration")
		}
	}

	identity := models.Identity{
		ID:          remote.ID,
		Email:       email,
		DisplayName: displayName,
		AvatarRef:   remote.AvatarRef,
		CreatedAt:   time.Now(),
	}
	if identity.ID == "" {
		// Should not normally occur; the provider assigns ids.
		identity.ID = uuid.NewString()
	}

	if err = s.establishSession(ctx, identity, secret); err != nil {
		return models.Identity{}, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("registered")
	return identity, nil
}

func (s *sessionService) LoginOnline(ctx context.Context, email, secret string) (models.Identity, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	s.authenticating.Store(true)
	remote, err := s.provider.VerifyCredentials(ctx, email, secret)
	s.authenticating.Store(false)
	if err != nil {
		return models.Identity{}, fmt.Errorf("online login: %w", err)
	}

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return models.Identity{}, err
	}

	// The provider is authoritative for id/email/display name. A cached
	// identity for the same email is kept as-is; anything else is
	// replaced wholesale.
	if cached == nil || !cached.EmailEquals(email) {
		replacement := identityFromRemote(remote, email)
		if err = s.localState.PutIdentity(ctx, &replacement); err != nil {
			return models.Identity{}, err
		}
		cached = &replacement
	}

	if err = s.establishSession(ctx, *cached, secret); err != nil {
		return models.Identity{}, err
	}

	s.logger.Info().Str("user_id", cached.ID).Msg("logged in online")
	return *cached, nil
}

func (s *sessionService) LoginOffline(ctx context.Context, email, secret string) (models.Identity, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if cached == nil {
		return models.Identity{}, ErrNoCachedUser
	}
	if !cached.EmailEquals(email) {
		return models.Identity{}, ErrEmailMismatch
	}

	state, err := s.localState.GetSessionState(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if state.Provider != models.ProviderEmail {
		return models.Identity{}, ErrProviderMismatch
	}

	record, err := s.localState.GetCredentialRecord(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if record == nil {
		return models.Identity{}, ErrNoOfflineCredential
	}

	ok, err := s.hasher.Verify([]byte(secret), record.SaltB64, record.HashB64)
	if err != nil {
		return models.Identity{}, fmt.Errorf("offline verify: %w", err)
	}
	if !ok {
		return models.Identity{}, ErrWrongPassword
	}

	// No remote contact occurred, so nothing else may change: identity
	// and credential record stay exactly as cached.
	if err = s.localState.SetSoftLoggedOut(ctx, false); err != nil {
		return models.Identity{}, err
	}

	s.logger.Info().Str("user_id", cached.ID).Msg("logged in offline")
	return *cached, nil
}

func (s *sessionService) SoftLogout(ctx context.Context) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	return s.localState.SetSoftLoggedOut(ctx, true)
}

func (s *sessionService) HardLogout(ctx context.Context) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	// Device-level logout must never be blocked by network state; a
	// failed remote invalidation is logged and ignored.
	if err := s.provider.SignOut(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("remote session invalidation failed during hard logout")
	}

	if err := s.localState.SetSoftLoggedOut(ctx, true); err != nil {
		return err
	}
	if err := s.localState.PutIdentity(ctx, nil); err != nil {
		return err
	}
	if err := s.localState.PutCredentialRecord(ctx, nil); err != nil {
		return err
	}
	if err := s.localState.SetProvider(ctx, models.ProviderNone); err != nil {
		return err
	}

	s.logger.Info().Msg("hard logout complete")
	return nil
}

func (s *sessionService) ResumeSocialSession(ctx context.Context) (models.Identity, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if cached == nil {
		return models.Identity{}, ErrNoCachedUser
	}

	state, err := s.localState.GetSessionState(ctx)
	if err != nil {
		return models.Identity{}, err
	}
	if !state.Provider.Social() {
		return models.Identity{}, ErrProviderMismatch
	}

	if s.provider.CurrentRemoteIdentity() == nil {
		return models.Identity{}, ErrNoRemoteSession
	}

	if err = s.localState.SetSoftLoggedOut(ctx, false); err != nil {
		return models.Identity{}, err
	}

	s.logger.Info().Str("user_id", cached.ID).Str("provider", string(state.Provider)).Msg("social session resumed")
	return *cached, nil
}

func (s *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.provider.SendPasswordReset(ctx, email); err != nil {
		return fmt.Errorf("password reset: %w", err)
	}
	return nil
}

func (s *sessionService) ChangePassword(ctx context.Context, current, next string) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return err
	}
	if cached == nil {
		return ErrNoCachedUser
	}

	state, err := s.localState.GetSessionState(ctx)
	if err != nil {
		return err
	}
	if state.Provider != models.ProviderEmail {
		return ErrProviderMismatch
	}

	if err = s.provider.Reauthenticate(ctx, cached.Email, current); err != nil {
		return fmt.Errorf("%w: %v", ErrReauthFailed, err)
	}
	if err = s.provider.UpdatePassword(ctx, next); err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err = s.rotateCredential(ctx, next); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", cached.ID).Msg("password changed")
	return nil
}

func (s *sessionService) IsActiveSession(ctx context.Context) (bool, error) {
	if s.provider.CurrentRemoteIdentity() == nil {
		return false, nil
	}

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return false, err
	}
	if cached == nil {
		return false, nil
	}

	state, err := s.localState.GetSessionState(ctx)
	if err != nil {
		return false, err
	}
	return !state.SoftLoggedOut, nil
}

func (s *sessionService) CurrentPhase(ctx context.Context) (models.SessionPhase, error) {
	if s.authenticating.Load() {
		return models.PhaseAuthenticating, nil
	}

	cached, err := s.localState.GetIdentity(ctx)
	if err != nil {
		return models.PhaseUnauthenticated, err
	}
	if cached == nil {
		return models.PhaseUnauthenticated, nil
	}

	state, err := s.localState.GetSessionState(ctx)
	if err != nil {
		return models.PhaseUnauthenticated, err
	}
	if state.SoftLoggedOut {
		return models.PhaseSoftLoggedOut, nil
	}

	if s.provider.CurrentRemoteIdentity() != nil {
		return models.PhaseActiveOnline, nil
	}
	return models.PhaseActiveOffline, nil
}

// establishSession persists the session records that every successful
// remote authentication produces: the EMAIL provider, a cleared soft-logout
// flag, and a freshly rotated Credential Record.
func (s *sessionService) establishSession(ctx context.Context, identity models.Identity, secret string) error {
	if err := s.localState.PutIdentity(ctx, &identity); err != nil {
		return err
	}
	if err := s.localState.SetProvider(ctx, models.ProviderEmail); err != nil {
		return err
	}
	if err := s.localState.SetSoftLoggedOut(ctx, false); err != nil {
		return err
	}
	return s.rotateCredential(ctx, secret)
}

// rotateCredential derives a fresh salt+hash pair from secret and stores it.
// Salts are never reused across secrets.
func (s *sessionService) rotateCredential(ctx context.Context, secret string) error {
	salt, err := s.hasher.NewSalt()
	if err != nil {
		return fmt.Errorf("rotate credential: %w", err)
	}
	hash, err := s.hasher.Hash([]byte(secret), salt)
	if err != nil {
		return fmt.Errorf("rotate credential: %w", err)
	}

	return s.localState.PutCredentialRecord(ctx, &models.CredentialRecord{SaltB64: salt, HashB64: hash})
}

// identityFromRemote builds the local Identity for an account the provider
// just confirmed. The display name falls back to the local part of the
// email address when the provider supplies none.
func identityFromRemote(remote models.RemoteIdentity, email string) models.Identity {
	if remote.Email != "" {
		email = remote.Email
	}

	displayName := remote.DisplayName
	if displayName == "" {
		if at := strings.Index(email, "@"); at > 0 {
			displayName = email[:at]
		} else {
			displayName = email
		}
	}

	identity := models.Identity{
		ID:          remote.ID,
		Email:       email,
		DisplayName: displayName,
		AvatarRef:   remote.AvatarRef,
		CreatedAt:   time.Now(),
	}
	if identity.ID == "" {
		identity.ID = uuid.NewString()
	}
	return identity
}
