package reservation

import (
	"regexp"
	"strings"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/google/uuid"
)

// Seat bounds for the people selector.
const (
	MinSeats = 1
	MaxSeats = 10
)

// Draft is the in-progress, unsaved reservation form state. It lives for one
// open form instance and is never persisted: on success or cancel it is
// simply discarded.
type Draft struct {
	ID uuid.UUID // correlation id for logs, never sent to the backend

	FirstName       string
	LastName        string
	Phone           string
	CountryCode     string
	Email           string
	Date            string // "YYYY-MM-DD", empty until picked
	Time            string // must stay within the latest availability list for Date
	Seats           int
	SpecialRequests string
	Status          string // always pending; the backend decides the rest
}

func NewDraft() Draft {
	return Draft{
		ID:          uuid.New(),
		CountryCode: "+39",
		Seats:       MinSeats,
		Status:      api.StatusPending,
	}
}

// FullName is the display name submitted to the backend.
func (d Draft) FullName() string {
	return strings.TrimSpace(d.FirstName) + " " + strings.TrimSpace(d.LastName)
}

// ValidationErrors maps field names to human-readable messages. An empty map
// means the draft is submittable.
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool { return len(v) == 0 }

// The check is deliberately loose: something before an @, something after,
// and a dot in the domain part. The backend does its own verification.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate is a pure function of the draft. Seats and special requests are
// never required.
func Validate(d Draft) ValidationErrors {
	errs := ValidationErrors{}
	if strings.TrimSpace(d.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(strings.TrimSpace(d.Email)) {
		errs["email"] = "Please enter a valid email address"
	}
	if d.Date == "" {
		errs["date"] = "Date is required"
	}
	if d.Time == "" {
		errs["time"] = "Time is required"
	}
	return errs
}
