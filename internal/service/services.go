package service

import (
	"sync"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
	"github.com/moneytrackultra/go-cashbook/internal/crypto"
	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/internal/store"
)

type Services struct {
	Session     SessionService
	ProfileSync ProfileSyncService
	DrainJob    DrainJob
}

// NewServices wires the service layer. Session and profile sync share a
// single mutex so their mutations never interleave.
func NewServices(localState store.LocalState, provider adapter.IdentityProvider, connectivity adapter.ConnectivityOracle, hasher crypto.CredentialHasher, log *logger.Logger) *Services {
	guard := &sync.Mutex{}

	sessionSvc := NewSessionService(localState, provider, hasher, guard, log)
	syncSvc := NewProfileSyncService(localState, provider, guard, log)

	return &Services{
		Session:     sessionSvc,
		ProfileSync: syncSvc,
		DrainJob:    NewDrainJob(syncSvc, connectivity),
	}
}
