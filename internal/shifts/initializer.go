package shifts

import (
	"context"
	"log/slog"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/widget"
)

// DefaultTimes is the canonical dinner grid, used as the fallback when the
// backend cannot report its own slot times.
var DefaultTimes = []string{
	"19:00", "19:15", "19:30", "19:45",
	"20:00", "20:15", "20:30", "20:45",
	"21:00", "21:15", "21:30",
}

// DefaultWindowDays is how far ahead shifts are prepared at startup.
const DefaultWindowDays = 30

// Service is the slice of the backend client the initializer needs.
type Service interface {
	ShiftsForDate(ctx context.Context, date string) ([]api.Shift, error)
	InitializeShifts(ctx context.Context, date string) error
	AvailableTimes(ctx context.Context) ([]string, error)
}

// Report summarizes one initialization sweep.
type Report struct {
	Created int
	Skipped int
	Failed  int
}

// EnsureInitialized walks the next `days` dates starting at now and asks the
// backend to create its default shift grid wherever none exists yet. A fetch
// error is treated as "probably missing": initialization is attempted anyway.
func EnsureInitialized(ctx context.Context, svc Service, now time.Time, days int, log *slog.Logger) Report {
	if log == nil {
		log = slog.Default()
	}
	if days <= 0 {
		days = DefaultWindowDays
	}

	var rep Report
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i).Format(widget.DateLayout)

		existing, err := svc.ShiftsForDate(ctx, date)
		if err == nil && len(existing) > 0 {
			rep.Skipped++
			continue
		}
		if err != nil {
			log.Warn("shift lookup failed, initializing anyway", "date", date, "err", err)
		}

		if err := svc.InitializeShifts(ctx, date); err != nil {
			log.Error("shift initialization failed", "date", date, "err", err)
			rep.Failed++
			continue
		}
		rep.Created++
	}

	log.Info("shift initialization complete",
		"created", rep.Created, "skipped", rep.Skipped, "failed", rep.Failed)
	return rep
}

// AvailableTimesOrDefault asks the backend for its slot times, falling back
// to the canonical grid when the call fails.
func AvailableTimesOrDefault(ctx context.Context, svc Service, log *slog.Logger) []string {
	if log == nil {
		log = slog.Default()
	}
	times, err := svc.AvailableTimes(ctx)
	if err != nil || len(times) == 0 {
		if err != nil {
			log.Error("error loading available times", "err", err)
		}
		return DefaultTimes
	}
	return times
}
