package reservation

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/fermento-pizzeria/fermento/internal/api"
)

// Phase is the submission lifecycle state of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// GenericFailureMessage is shown when the backend gave no error text.
const GenericFailureMessage = "Something went wrong while sending your reservation. Please try again."

// Creator is the single backend operation the form needs. *api.Client
// satisfies it; tests substitute fakes.
type Creator interface {
	Create(ctx context.Context, r api.Reservation) (string, error)
}

// Result echoes the accepted submission exactly as it was sent. The UI shows
// submitted values, not anything the backend may have normalized.
type Result struct {
	ID        string
	FirstName string
	LastName  string
	Date      string
	Time      string
	Seats     int
}

// Form owns one reservation draft and its submission lifecycle:
// Idle -> Validating -> Submitting -> Succeeded or Failed. Failed returns to
// an idle-equivalent state so the guest can retry; Succeeded ends the
// workflow. Not safe for concurrent use; drive it from one goroutine.
type Form struct {
	draft   Draft
	errors  ValidationErrors
	phase   Phase
	result  *Result
	failure string
	log     *slog.Logger
}

func NewForm(log *slog.Logger) *Form {
	if log == nil {
		log = slog.Default()
	}
	return &Form{
		draft:  NewDraft(),
		errors: ValidationErrors{},
		log:    log,
	}
}

func (f *Form) Draft() Draft             { return f.draft }
func (f *Form) Phase() Phase             { return f.phase }
func (f *Form) Errors() ValidationErrors { return f.errors }
func (f *Form) FailureMessage() string   { return f.failure }

// Result is non-nil only after a successful submission.
func (f *Form) Result() *Result { return f.result }

// CanSubmit is false only while a submission is outstanding; this is the
// only duplicate-action guard the form has.
func (f *Form) CanSubmit() bool { return f.phase != PhaseSubmitting && f.phase != PhaseSucceeded }

// Each setter clears exactly its own field's stale error. Other fields are
// not re-validated until the next Submit.

func (f *Form) SetFirstName(v string) { f.draft.FirstName = v; delete(f.errors, "firstName") }
func (f *Form) SetLastName(v string)  { f.draft.LastName = v; delete(f.errors, "lastName") }
func (f *Form) SetPhone(v string)     { f.draft.Phone = v; delete(f.errors, "phone") }
func (f *Form) SetEmail(v string)     { f.draft.Email = v; delete(f.errors, "email") }
func (f *Form) SetCountryCode(v string) {
	f.draft.CountryCode = v
}
func (f *Form) SetDate(v string) { f.draft.Date = v; delete(f.errors, "date") }
func (f *Form) SetTime(v string) { f.draft.Time = v; delete(f.errors, "time") }
func (f *Form) SetSeats(v int)   { f.draft.Seats = v }
func (f *Form) SetSpecialRequests(v string) {
	f.draft.SpecialRequests = v
}

// ApplyAvailability re-validates the selected time against a freshly fetched
// availability list, clearing it when it no longer qualifies. Called on every
// date change.
func (f *Form) ApplyAvailability(times []string) {
	if f.draft.Time == "" {
		return
	}
	if !slices.Contains(times, f.draft.Time) {
		f.draft.Time = ""
	}
}

// Submit validates the draft and, when clean, forwards it to the backend.
// Validation failures leave the form idle with field errors set and never
// reach the create operation.
func (f *Form) Submit(ctx context.Context, svc Creator) {
	if !f.CanSubmit() {
		return
	}

	f.phase = PhaseValidating
	f.errors = Validate(f.draft)
	if !f.errors.Valid() {
		f.phase = PhaseIdle
		return
	}

	f.phase = PhaseSubmitting
	f.failure = ""

	id, err := svc.Create(ctx, api.Reservation{
		FullName:        f.draft.FullName(),
		Phone:           strings.TrimSpace(f.draft.Phone),
		Email:           strings.TrimSpace(f.draft.Email),
		Date:            f.draft.Date,
		Time:            f.draft.Time,
		Seats:           f.draft.Seats,
		SpecialRequests: f.draft.SpecialRequests,
		Status:          api.StatusPending,
	})
	if err != nil {
		f.log.Error("reservation submit failed", "draft", f.draft.ID, "err", err)
		f.phase = PhaseFailed
		f.failure = failureMessage(err)
		return
	}

	f.phase = PhaseSucceeded
	f.result = &Result{
		ID:        id,
		FirstName: f.draft.FirstName,
		LastName:  f.draft.LastName,
		Date:      f.draft.Date,
		Time:      f.draft.Time,
		Seats:     f.draft.Seats,
	}
}

// AcknowledgeFailure dismisses the error panel and re-arms the form.
func (f *Form) AcknowledgeFailure() {
	if f.phase == PhaseFailed {
		f.phase = PhaseIdle
	}
}

func failureMessage(err error) string {
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return GenericFailureMessage
}
