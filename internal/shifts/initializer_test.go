package shifts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	existing map[string][]api.Shift
	fetchErr map[string]error
	initErr  map[string]error

	initialized []string
}

func (f *fakeService) ShiftsForDate(_ context.Context, date string) ([]api.Shift, error) {
	if err := f.fetchErr[date]; err != nil {
		return nil, err
	}
	return f.existing[date], nil
}

func (f *fakeService) InitializeShifts(_ context.Context, date string) error {
	if err := f.initErr[date]; err != nil {
		return err
	}
	f.initialized = append(f.initialized, date)
	return nil
}

func (f *fakeService) AvailableTimes(context.Context) ([]string, error) {
	return nil, errors.New("unavailable")
}

func TestEnsureInitialized(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc := &fakeService{
		existing: map[string][]api.Shift{
			"2025-06-01": {{Time: "19:00"}}, // already present
		},
		fetchErr: map[string]error{
			"2025-06-03": errors.New("timeout"), // lookup fails, init attempted anyway
		},
		initErr: map[string]error{
			"2025-06-04": errors.New("backend refused"),
		},
	}

	rep := EnsureInitialized(context.Background(), svc, now, 5, nil)

	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, 3, rep.Created)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03", "2025-06-05"}, svc.initialized)
}

func TestEnsureInitializedDefaultWindow(t *testing.T) {
	now := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	svc := &fakeService{}

	rep := EnsureInitialized(context.Background(), svc, now, 0, nil)
	assert.Equal(t, DefaultWindowDays, rep.Created)
	assert.Len(t, svc.initialized, DefaultWindowDays)
}

func TestAvailableTimesFallsBack(t *testing.T) {
	times := AvailableTimesOrDefault(context.Background(), &fakeService{}, nil)
	assert.Equal(t, DefaultTimes, times)
	assert.Len(t, times, 11)
}
