package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/internal/mock"
	"github.com/moneytrackultra/go-cashbook/models"
)

// newTestSessionSvc builds a sessionService with all dependencies mocked.
func newTestSessionSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*sessionService,
	*mock.MockLocalState,
	*mock.MockIdentityProvider,
	*mock.MockCredentialHasher,
) {
	t.Helper()
	mockState := mock.NewMockLocalState(ctrl)
	mockProvider := mock.NewMockIdentityProvider(ctrl)
	mockHasher := mock.NewMockCredentialHasher(ctrl)

	log := logger.Nop()
	svc := NewSessionService(mockState, mockProvider, mockHasher, &sync.Mutex{}, log).(*sessionService)

	return svc, mockState, mockProvider, mockHasher
}

// expectCredentialRotation wires the salt/hash/store sequence every
// successful password-bearing authentication performs.
func expectCredentialRotation(mockState *mock.MockLocalState, mockHasher *mock.MockCredentialHasher, secret, salt, hash string) {
	mockHasher.EXPECT().NewSalt().Return(salt, nil)
	mockHasher.EXPECT().Hash([]byte(secret), salt).Return(hash, nil)
	mockState.EXPECT().PutCredentialRecord(gomock.Any(), &models.CredentialRecord{SaltB64: salt, HashB64: hash})
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	remote := models.RemoteIdentity{ID: "user-123", Email: "alice@example.com", AvatarRef: "https://cdn/avatar.png"}

	gomock.InOrder(
		mockProvider.EXPECT().CreateAccount(ctx, "alice@example.com", "s3cret").Return(remote, nil),
		mockProvider.EXPECT().UpdateDisplayName(ctx, "Alice").Return(nil),
		mockState.EXPECT().PutIdentity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, identity *models.Identity) error {
				require.NotNil(t, identity)
				assert.Equal(t, "user-123", identity.ID)
				assert.Equal(t, "alice@example.com", identity.Email)
				assert.Equal(t, "Alice", identity.DisplayName)
				assert.Equal(t, "https://cdn/avatar.png", identity.AvatarRef)
				assert.False(t, identity.CreatedAt.IsZero())
				return nil
			},
		),
		mockState.EXPECT().SetProvider(gomock.Any(), models.ProviderEmail).Return(nil),
		mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil),
	)
	expectCredentialRotation(mockState, mockHasher, "s3cret", "salt-b64", "hash-b64")

	got, err := svc.Register(ctx, "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "user-123", got.ID)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestSessionService_Register_RemoteError_NothingPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().CreateAccount(ctx, "alice@example.com", "s3cret").
		Return(models.RemoteIdentity{}, adapter.ErrDuplicateEmail)

	// No store expectations: a failed remote registration must not touch
	// local state.
	_, err := svc.Register(ctx, "alice@example.com", "s3cret", "Alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrDuplicateEmail)
}

func TestSessionService_Register_DisplayNameFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().CreateAccount(ctx, "bob@example.com", "pw").
		Return(models.RemoteIdentity{ID: "user-9"}, nil)
	mockProvider.EXPECT().UpdateDisplayName(ctx, "Bob").Return(errors.New("503"))
	mockState.EXPECT().PutIdentity(gomock.Any(), gomock.Any()).Return(nil)
	mockState.EXPECT().SetProvider(gomock.Any(), models.ProviderEmail).Return(nil)
	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil)
	expectCredentialRotation(mockState, mockHasher, "pw", "s", "h")

	got, err := svc.Register(ctx, "bob@example.com", "pw", "Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.DisplayName, "local display name is kept even when the remote set fails")
}

// ── LoginOnline ──────────────────────────────────────────────────────────────

func TestSessionService_LoginOnline_KeepsCachedIdentitySameEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	cached := &models.Identity{ID: "user-1", Email: "Alice@Example.com", DisplayName: "Alice"}

	mockProvider.EXPECT().VerifyCredentials(ctx, "alice@example.com", "pw").
		Return(models.RemoteIdentity{ID: "user-1", Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(cached, nil)
	// Email comparison is case-insensitive, so the cached identity survives.
	mockState.EXPECT().PutIdentity(gomock.Any(), cached).Return(nil)
	mockState.EXPECT().SetProvider(gomock.Any(), models.ProviderEmail).Return(nil)
	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil)
	expectCredentialRotation(mockState, mockHasher, "pw", "s", "h")

	got, err := svc.LoginOnline(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.DisplayName)
}

func TestSessionService_LoginOnline_ReplacesDifferentAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	old := &models.Identity{ID: "user-1", Email: "old@example.com", DisplayName: "Old"}

	mockProvider.EXPECT().VerifyCredentials(ctx, "new@example.com", "pw").
		Return(models.RemoteIdentity{ID: "user-2", Email: "new@example.com"}, nil)
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(old, nil)

	// First Put replaces the stale account, second Put is the session
	// establishment write with the same identity.
	putCount := 0
	mockState.EXPECT().PutIdentity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, identity *models.Identity) error {
			putCount++
			require.NotNil(t, identity)
			assert.Equal(t, "user-2", identity.ID)
			assert.Equal(t, "new@example.com", identity.Email)
			assert.Equal(t, "new", identity.DisplayName, "display name falls back to the email local part")
			return nil
		},
	).Times(2)
	mockState.EXPECT().SetProvider(gomock.Any(), models.ProviderEmail).Return(nil)
	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil)
	expectCredentialRotation(mockState, mockHasher, "pw", "s", "h")

	got, err := svc.LoginOnline(ctx, "new@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "user-2", got.ID)
	assert.Equal(t, 2, putCount)
}

func TestSessionService_LoginOnline_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockProvider.EXPECT().VerifyCredentials(ctx, "alice@example.com", "bad").
		Return(models.RemoteIdentity{}, adapter.ErrUnauthorized)

	_, err := svc.LoginOnline(ctx, "alice@example.com", "bad")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ── LoginOffline ─────────────────────────────────────────────────────────────

func TestSessionService_LoginOffline_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	cached := &models.Identity{ID: "user-1", Email: "alice@example.com", DisplayName: "Alice"}
	record := &models.CredentialRecord{SaltB64: "salt", HashB64: "hash"}

	mockState.EXPECT().GetIdentity(gomock.Any()).Return(cached, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail, SoftLoggedOut: true}, nil)
	mockState.EXPECT().GetCredentialRecord(gomock.Any()).Return(record, nil)
	mockHasher.EXPECT().Verify([]byte("pw"), "salt", "hash").Return(true, nil)
	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil)

	got, err := svc.LoginOffline(ctx, "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestSessionService_LoginOffline_NoCachedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).Return(nil, nil)

	_, err := svc.LoginOffline(context.Background(), "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrNoCachedUser)
}

func TestSessionService_LoginOffline_EmailMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{Email: "alice@example.com"}, nil)

	_, err := svc.LoginOffline(context.Background(), "mallory@example.com", "pw")
	assert.ErrorIs(t, err, ErrEmailMismatch)
}

func TestSessionService_LoginOffline_SocialProviderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderGoogle}, nil)

	_, err := svc.LoginOffline(context.Background(), "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrProviderMismatch)
}

func TestSessionService_LoginOffline_NoCredentialRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockState.EXPECT().GetCredentialRecord(gomock.Any()).Return(nil, nil)

	_, err := svc.LoginOffline(context.Background(), "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrNoOfflineCredential)
}

func TestSessionService_LoginOffline_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, mockHasher := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockState.EXPECT().GetCredentialRecord(gomock.Any()).
		Return(&models.CredentialRecord{SaltB64: "salt", HashB64: "hash"}, nil)
	mockHasher.EXPECT().Verify([]byte("wrong"), "salt", "hash").Return(false, nil)

	_, err := svc.LoginOffline(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionService_SoftLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), true).Return(nil)

	require.NoError(t, svc.SoftLogout(context.Background()))
}

func TestSessionService_HardLogout_RemoteFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockProvider.EXPECT().SignOut(ctx).Return(errors.New("network unreachable")),
		mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), true).Return(nil),
		mockState.EXPECT().PutIdentity(gomock.Any(), nil).Return(nil),
		mockState.EXPECT().PutCredentialRecord(gomock.Any(), nil).Return(nil),
		mockState.EXPECT().SetProvider(gomock.Any(), models.ProviderNone).Return(nil),
	)

	require.NoError(t, svc.HardLogout(ctx))
}

// ── ResumeSocialSession ──────────────────────────────────────────────────────

func TestSessionService_ResumeSocialSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	cached := &models.Identity{ID: "user-1", Email: "alice@example.com"}

	mockState.EXPECT().GetIdentity(gomock.Any()).Return(cached, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderFacebook, SoftLoggedOut: true}, nil)
	mockProvider.EXPECT().CurrentRemoteIdentity().Return(&models.RemoteIdentity{ID: "user-1"})
	mockState.EXPECT().SetSoftLoggedOut(gomock.Any(), false).Return(nil)

	got, err := svc.ResumeSocialSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestSessionService_ResumeSocialSession_NoRemoteSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{ID: "user-1"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderGoogle, SoftLoggedOut: true}, nil)
	mockProvider.EXPECT().CurrentRemoteIdentity().Return(nil)

	_, err := svc.ResumeSocialSession(context.Background())
	assert.ErrorIs(t, err, ErrNoRemoteSession)
}

func TestSessionService_ResumeSocialSession_EmailProviderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, _, _ := newTestSessionSvc(t, ctrl)

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{ID: "user-1"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)

	_, err := svc.ResumeSocialSession(context.Background())
	assert.ErrorIs(t, err, ErrProviderMismatch)
}

// ── ChangePassword ───────────────────────────────────────────────────────────

func TestSessionService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, mockHasher := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{ID: "user-1", Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockProvider.EXPECT().Reauthenticate(ctx, "alice@example.com", "old-pw").Return(nil)
	mockProvider.EXPECT().UpdatePassword(ctx, "new-pw").Return(nil)
	expectCredentialRotation(mockState, mockHasher, "new-pw", "fresh-salt", "fresh-hash")

	require.NoError(t, svc.ChangePassword(ctx, "old-pw", "new-pw"))
}

func TestSessionService_ChangePassword_ReauthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockState.EXPECT().GetIdentity(gomock.Any()).
		Return(&models.Identity{Email: "alice@example.com"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockProvider.EXPECT().Reauthenticate(ctx, "alice@example.com", "bad").
		Return(adapter.ErrUnauthorized)

	err := svc.ChangePassword(ctx, "bad", "new-pw")
	assert.ErrorIs(t, err, ErrReauthFailed)
}

// ── IsActiveSession / CurrentPhase ───────────────────────────────────────────

func TestSessionService_IsActiveSession(t *testing.T) {
	tests := []struct {
		name      string
		remote    *models.RemoteIdentity
		cached    *models.Identity
		state     models.SessionState
		stateRead bool
		want      bool
	}{
		{
			name: "no remote session",
			want: false,
		},
		{
			name:   "remote session but no cached identity",
			remote: &models.RemoteIdentity{ID: "u"},
			want:   false,
		},
		{
			name:      "soft logged out",
			remote:    &models.RemoteIdentity{ID: "u"},
			cached:    &models.Identity{ID: "u"},
			state:     models.SessionState{Provider: models.ProviderEmail, SoftLoggedOut: true},
			stateRead: true,
			want:      false,
		},
		{
			name:      "fully active",
			remote:    &models.RemoteIdentity{ID: "u"},
			cached:    &models.Identity{ID: "u"},
			state:     models.SessionState{Provider: models.ProviderEmail},
			stateRead: true,
			want:      true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)

			mockProvider.EXPECT().CurrentRemoteIdentity().Return(tc.remote)
			if tc.remote != nil {
				mockState.EXPECT().GetIdentity(gomock.Any()).Return(tc.cached, nil)
			}
			if tc.stateRead {
				mockState.EXPECT().GetSessionState(gomock.Any()).Return(tc.state, nil)
			}

			got, err := svc.IsActiveSession(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSessionService_CurrentPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockState, mockProvider, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// No cached identity at all.
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(nil, nil)
	phase, err := svc.CurrentPhase(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseUnauthenticated, phase)

	// Cached identity, soft logged out.
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(&models.Identity{ID: "u"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail, SoftLoggedOut: true}, nil)
	phase, err = svc.CurrentPhase(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseSoftLoggedOut, phase)

	// Cached identity, active, no remote session held.
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(&models.Identity{ID: "u"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockProvider.EXPECT().CurrentRemoteIdentity().Return(nil)
	phase, err = svc.CurrentPhase(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseActiveOffline, phase)

	// Cached identity, active, remote session held.
	mockState.EXPECT().GetIdentity(gomock.Any()).Return(&models.Identity{ID: "u"}, nil)
	mockState.EXPECT().GetSessionState(gomock.Any()).
		Return(models.SessionState{Provider: models.ProviderEmail}, nil)
	mockProvider.EXPECT().CurrentRemoteIdentity().Return(&models.RemoteIdentity{ID: "u"})
	phase, err = svc.CurrentPhase(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseActiveOnline, phase)
}
