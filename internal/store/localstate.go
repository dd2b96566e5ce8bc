package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Rhymond/go-money"

	"github.com/moneytrackultra/go-cashbook/internal/logger"
	"github.com/moneytrackultra/go-cashbook/models"
)

// Record names. These are the persisted layout contract of the identity
// core and must remain stable across process restarts.
const (
	recIdentity    = "identity_json"
	recCredential  = "credential_json"
	recProvider    = "auth_provider"
	recSoftLogout  = "soft_logout"
	recPendingSync = "pending_profile_sync"
	recFirstLaunch = "first_launch_done"
	recCurrency    = "currency_code"
)

// Ledger-scoped record names. The records themselves are owned by the ledger
// subsystem; the identity core only wipes them on domain-data clears.
var domainRecords = []string{
	"transactions_json",
	"wallets_json",
	"weekly_aggregates_json",
	"buying_limits_json",
	"seed_version",
	recCurrency,
	recPendingSync,
}

type localState struct {
	db     *DB
	logger *logger.Logger

	// mu serializes all mutations; readers take the read lock so a clear
	// in progress can never interleave with a multi-record read.
	mu sync.RWMutex

	subsMu      sync.Mutex
	clearedSubs []func()
}

// NewLocalState builds the [LocalState] implementation on top of an open,
// migrated local database.
func NewLocalState(db *DB, log *logger.Logger) LocalState {
	return &localState{db: db, logger: log}
}

func (l *localState) GetIdentity(ctx context.Context) (*models.Identity, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var identity models.Identity
	found, err := l.readJSON(ctx, recIdentity, &identity)
	if err != nil || !found {
		return nil, err
	}
	return &identity, nil
}

func (l *localState) PutIdentity(ctx context.Context, identity *models.Identity) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if identity == nil {
		return l.remove(ctx, recIdentity)
	}
	return l.writeJSON(ctx, recIdentity, identity)
}

func (l *localState) GetCredentialRecord(ctx context.Context) (*models.CredentialRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var record models.CredentialRecord
	found, err := l.readJSON(ctx, recCredential, &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

func (l *localState) PutCredentialRecord(ctx context.Context, record *models.CredentialRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if record == nil {
		return l.remove(ctx, recCredential)
	}
	// Salt and hash travel as one serialized value: they are written
	// together or not at all.
	return l.writeJSON(ctx, recCredential, record)
}

func (l *localState) GetSessionState(ctx context.Context) (models.SessionState, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	state := models.SessionState{Provider: models.ProviderNone}

	var provider string
	found, err := l.readJSON(ctx, recProvider, &provider)
	if err != nil {
		return models.SessionState{}, err
	}
	if found {
		state.Provider = models.AuthProvider(provider)
	}

	if _, err = l.readJSON(ctx, recSoftLogout, &state.SoftLoggedOut); err != nil {
		return models.SessionState{}, err
	}

	return state, nil
}

func (l *localState) SetProvider(ctx context.Context, provider models.AuthProvider) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if provider == models.ProviderNone {
		return l.remove(ctx, recProvider)
	}
	return l.writeJSON(ctx, recProvider, string(provider))
}

func (l *localState) SetSoftLoggedOut(ctx context.Context, value bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writeJSON(ctx, recSoftLogout, value)
}

func (l *localState) GetPendingSync(ctx context.Context) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var pending bool
	if _, err := l.readJSON(ctx, recPendingSync, &pending); err != nil {
		return false, err
	}
	return pending, nil
}

func (l *localState) SetPendingSync(ctx context.Context, pending bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writeJSON(ctx, recPendingSync, pending)
}

func (l *localState) PendingProfile(ctx context.Context) (bool, *models.Identity, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Flag and snapshot are read inside one transaction so a concurrent
	// local edit is observed either fully (flag plus fresh snapshot) or
	// not at all.
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return false, nil, fmt.Errorf("begin pending profile read: %w", err)
	}
	defer tx.Rollback()

	var pending bool
	found, err := readJSONRow(tx.QueryRowContext(ctx, getRecord, recPendingSync), &pending)
	if err != nil {
		return false, nil, err
	}
	if !found || !pending {
		return false, nil, nil
	}

	var identity models.Identity
	found, err = readJSONRow(tx.QueryRowContext(ctx, getRecord, recIdentity), &identity)
	if err != nil {
		return false, nil, err
	}
	if !found {
		return false, nil, nil
	}

	if err = tx.Commit(); err != nil {
		return false, nil, fmt.Errorf("commit pending profile read: %w", err)
	}
	return true, &identity, nil
}

func (l *localState) FirstLaunchDone(ctx context.Context) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var done bool
	if _, err := l.readJSON(ctx, recFirstLaunch, &done); err != nil {
		return false, err
	}
	return done, nil
}

func (l *localState) MarkFirstLaunchDone(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writeJSON(ctx, recFirstLaunch, true)
}

func (l *localState) Currency(ctx context.Context) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var code string
	if _, err := l.readJSON(ctx, recCurrency, &code); err != nil {
		return "", err
	}
	return code, nil
}

func (l *localState) SaveCurrency(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writeJSON(ctx, recCurrency, code)
}

func (l *localState) ClearDomainDataPreserveIdentity(ctx context.Context) error {
	l.mu.Lock()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("begin domain data clear: %w", err)
	}

	for _, name := range domainRecords {
		if _, err = tx.ExecContext(ctx, deleteRecord, name); err != nil {
			tx.Rollback()
			l.mu.Unlock()
			l.logger.Err(err).Str("record", name).Msg("failed to clear domain record")
			return fmt.Errorf("clear domain record %s: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		l.mu.Unlock()
		return fmt.Errorf("commit domain data clear: %w", err)
	}
	l.mu.Unlock()

	l.notifyDomainDataCleared()
	return nil
}

func (l *localState) ClearEverything(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.db.ExecContext(ctx, deleteAllRecords); err != nil {
		l.logger.Err(err).Msg("failed to clear all records")
		return fmt.Errorf("clear all records: %w", err)
	}
	return nil
}

func (l *localState) OnDomainDataCleared(fn func()) {
	if fn == nil {
		return
	}
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	l.clearedSubs = append(l.clearedSubs, fn)
}

func (l *localState) notifyDomainDataCleared() {
	l.subsMu.Lock()
	subs := make([]func(), len(l.clearedSubs))
	copy(subs, l.clearedSubs)
	l.subsMu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// readJSON loads the named record and unmarshals it into target. Returns
// found=false without error when the record does not exist. Callers must
// hold at least the read lock.
func (l *localState) readJSON(ctx context.Context, name string, target any) (bool, error) {
	return readJSONRow(l.db.QueryRowContext(ctx, getRecord, name), target)
}

func readJSONRow(row *sql.Row, target any) (bool, error) {
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("scan record: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return false, fmt.Errorf("decode record: %w", err)
	}
	return true, nil
}

// writeJSON serializes value and upserts it under name. The upsert is a
// single statement, so the write is atomic and flushed before returning.
// Callers must hold the write lock.
func (l *localState) writeJSON(ctx context.Context, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", name, err)
	}

	if _, err = l.db.ExecContext(ctx, upsertRecord, name, string(raw)); err != nil {
		l.logger.Err(err).Str("record", name).Msg("failed to upsert record")
		return fmt.Errorf("save record %s: %w", name, err)
	}
	return nil
}

func (l *localState) remove(ctx context.Context, name string) error {
	if _, err := l.db.ExecContext(ctx, deleteRecord, name); err != nil {
		l.logger.Err(err).Str("record", name).Msg("failed to delete record")
		return fmt.Errorf("delete record %s: %w", name, err)
	}
	return nil
}
