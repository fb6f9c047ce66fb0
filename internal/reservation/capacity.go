package reservation

import (
	"context"

	"github.com/fermento-pizzeria/fermento/internal/api"
)

// ShiftReader is the read side of the backend used by the capacity pre-check.
type ShiftReader interface {
	Shift(ctx context.Context, date, time string) (*api.Shift, error)
	List(ctx context.Context, f api.ListFilters) ([]api.Reservation, error)
}

// CheckShiftAvailability reports whether requested seats still look bookable
// at (date, time): the shift exists and is enabled, and the seats of all
// non-rejected reservations at that slot plus the request fit under
// maxReservations.
//
// This duplicates logic the backend owns and can disagree with it; it is an
// advisory pre-check only. The create response is the authoritative answer.
func CheckShiftAvailability(ctx context.Context, svc ShiftReader, date, time string, requested int) bool {
	shift, err := svc.Shift(ctx, date, time)
	if err != nil || shift == nil || !shift.Enabled {
		return false
	}

	reservations, err := svc.List(ctx, api.ListFilters{Date: date})
	if err != nil {
		return false
	}

	taken := 0
	for _, r := range reservations {
		if r.Time == time && r.Status != api.StatusRejected {
			taken += r.Seats
		}
	}
	return taken+requested <= shift.MaxReservations
}
