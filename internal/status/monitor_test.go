package status

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	fail  atomic.Bool
	calls atomic.Int64
}

func (f *fakePinger) Ping(context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("unreachable")
	}
	return nil
}

func TestMonitorStartsUnknown(t *testing.T) {
	m := NewMonitor(&fakePinger{}, time.Second, nil)
	snap := m.Snapshot()
	assert.Equal(t, Unknown, snap.State)
	assert.True(t, snap.LastChecked.IsZero())
	assert.Equal(t, "❓", snap.Icon())
	assert.Equal(t, "Unknown", snap.Text())
}

func TestCheckNowFlipsState(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, time.Second, nil)

	assert.Equal(t, Connected, m.CheckNow(context.Background()))
	assert.Equal(t, "✅", m.Snapshot().Icon())
	assert.False(t, m.Snapshot().LastChecked.IsZero())

	// a single failed probe flips immediately, no retry-before-flip
	p.fail.Store(true)
	assert.Equal(t, Disconnected, m.CheckNow(context.Background()))
	assert.Equal(t, "Disconnected", m.Snapshot().Text())

	p.fail.Store(false)
	assert.Equal(t, Connected, m.CheckNow(context.Background()))
}

func TestRunProbesImmediatelyAndPeriodically(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()

	assert.Eventually(t, func() bool { return p.calls.Load() >= 3 },
		time.Second, time.Millisecond, "initial probe plus ticks")

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}

	stopped := p.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, p.calls.Load(), "no probes after stop")
}
