package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneytrackultra/go-cashbook/models"
)

// spyProfileSync counts DrainIfPending calls and records the online flag.
type spyProfileSync struct {
	calls      atomic.Int64
	lastOnline atomic.Bool
}

func (s *spyProfileSync) ApplyEdit(_ context.Context, _ models.ProfileEdit, _ bool) (models.SyncResult, error) {
	return models.SyncNoChange, nil
}

func (s *spyProfileSync) DrainIfPending(_ context.Context, online bool) {
	s.calls.Add(1)
	s.lastOnline.Store(online)
}

// stubOracle answers IsOnline with a fixed value.
type stubOracle struct {
	online bool
}

func (o *stubOracle) IsOnline(_ context.Context) bool { return o.online }

func TestNewDrainJob_ReturnsInterface(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	require.NotNil(t, job)

	var _ DrainJob = job
}

func TestDrainJob_Start_DrainsOnTicks(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	ctx := context.Background()

	// 10ms interval over 55ms should yield several ticks.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "DrainIfPending should run on every tick, got %d calls", got)
	assert.True(t, spy.lastOnline.Load(), "the probed connectivity result is forwarded")
}

func TestDrainJob_ForwardsOfflineProbe(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: false})
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	require.Greater(t, spy.calls.Load(), int64(0))
	assert.False(t, spy.lastOnline.Load())
}

func TestDrainJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no calls may land after Stop")
}

func TestDrainJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewDrainJob(&spyProfileSync{}, &stubOracle{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestDrainJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewDrainJob(&spyProfileSync{}, &stubOracle{online: true})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestDrainJob_Start_DefaultInterval(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so no ticks land within 20ms.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestDrainJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// A second Start stops the first goroutine and carries on ticking.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestDrainJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spyProfileSync{}
	job := NewDrainJob(spy, &stubOracle{online: true})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	// Stop must return promptly after the parent context is cancelled.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
