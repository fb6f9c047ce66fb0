package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/metrics"
)

// State is the tri-state connectivity verdict. There is no hysteresis: one
// failed probe flips straight to Disconnected.
type State int

const (
	Unknown State = iota
	Connected
	Disconnected
)

func (s State) String() string {
	switch s {
	case Connected:
		return "connected"
	case Disconnected:
		return "disconnected"
	}
	return "unknown"
}

// Pinger is the liveness probe; *api.Client satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Snapshot is a point-in-time view for rendering, compact (icon only) or
// detailed (icon, text, last-checked timestamp).
type Snapshot struct {
	State       State
	Checking    bool
	LastChecked time.Time
}

func (s Snapshot) Icon() string {
	if s.Checking {
		return "🔄"
	}
	switch s.State {
	case Connected:
		return "✅"
	case Disconnected:
		return "❌"
	}
	return "❓"
}

func (s Snapshot) Text() string {
	if s.Checking {
		return "Checking..."
	}
	switch s.State {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	}
	return "Unknown"
}

// Monitor polls the backend health endpoint on a fixed interval, starting
// with an immediate probe. It runs for as long as its context lives; stopping
// it is the owner's responsibility.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	log      *slog.Logger

	mu          sync.Mutex
	state       State
	checking    bool
	lastChecked time.Time
}

func NewMonitor(p Pinger, interval time.Duration, log *slog.Logger) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	return &Monitor{pinger: p, interval: interval, log: log}
}

// Run probes immediately, then on every tick until ctx is canceled.
func (m *Monitor) Run(ctx context.Context) error {
	t := time.NewTicker(m.interval)
	defer t.Stop()

	m.CheckNow(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			m.CheckNow(ctx)
		}
	}
}

// CheckNow performs one probe on demand and returns the resulting state.
func (m *Monitor) CheckNow(ctx context.Context) State {
	m.mu.Lock()
	m.checking = true
	m.mu.Unlock()

	err := m.pinger.Ping(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.checking = false
	m.lastChecked = time.Now()
	if err != nil {
		if m.state != Disconnected {
			m.log.Warn("health check failed", "err", err)
		}
		m.state = Disconnected
	} else {
		m.state = Connected
	}
	metrics.HealthProbesTotal.WithLabelValues(m.state.String()).Inc()
	return m.state
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, Checking: m.checking, LastChecked: m.lastChecked}
}
