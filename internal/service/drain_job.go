package service

import (
	"context"
	"sync"
	"time"

	"github.com/moneytrackultra/go-cashbook/internal/adapter"
)

type drainJob struct {
	syncService  ProfileSyncService
	connectivity adapter.ConnectivityOracle

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDrainJob creates a drainJob that calls syncService.DrainIfPending on a
// ticker, probing connectivity before each attempt. The job is idle until
// Start is called.
func NewDrainJob(syncService ProfileSyncService, connectivity adapter.ConnectivityOracle) DrainJob {
	return &drainJob{syncService: syncService, connectivity: connectivity}
}

// Start implements DrainJob. It stops any previously running job, then
// launches a background goroutine that drains pending profile edits every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *drainJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncService.DrainIfPending(jobCtx, j.connectivity.IsOnline(jobCtx))
			}
		}
	}()
}

// Stop implements DrainJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *drainJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
