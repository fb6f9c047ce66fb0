package availability

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/metrics"
)

// ShiftSource is the one backend read the resolver needs.
type ShiftSource interface {
	ShiftsForDate(ctx context.Context, date string) ([]api.Shift, error)
}

// Resolver keeps a time picker's option list consistent with the currently
// chosen date. Fetch failures collapse to an empty list: they are logged but
// never surfaced as field errors.
//
// Each Refresh carries a generation number; a response that arrives after a
// newer request was issued is discarded, so rapid date changes cannot apply
// a stale availability list out of order.
type Resolver struct {
	svc ShiftSource
	log *slog.Logger

	mu  sync.Mutex
	seq uint64
}

func NewResolver(svc ShiftSource, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{svc: svc, log: log}
}

// TimesForDate returns the enabled shift times for date. An empty date yields
// an empty list without touching the backend.
func (r *Resolver) TimesForDate(ctx context.Context, date string) []string {
	if date == "" {
		return nil
	}
	shifts, err := r.svc.ShiftsForDate(ctx, date)
	if err != nil {
		r.log.Error("error loading available times", "date", date, "err", err)
		metrics.AvailabilityFetchesTotal.WithLabelValues("error").Inc()
		return nil
	}
	metrics.AvailabilityFetchesTotal.WithLabelValues("ok").Inc()
	var times []string
	for _, s := range shifts {
		if s.Enabled {
			times = append(times, s.Time)
		}
	}
	return times
}

// Refresh fetches availability for date and hands the result to apply, unless
// a newer Refresh was issued while this one was in flight.
func (r *Resolver) Refresh(ctx context.Context, date string, apply func([]string)) {
	r.mu.Lock()
	r.seq++
	gen := r.seq
	r.mu.Unlock()

	times := r.TimesForDate(ctx, date)

	r.mu.Lock()
	stale := gen != r.seq
	r.mu.Unlock()
	if stale {
		r.log.Debug("discarding stale availability response", "date", date)
		return
	}
	apply(times)
}
