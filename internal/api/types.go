package api

// Reservation statuses as the backend reports them. New reservations are
// always submitted as pending; accepted/rejected are backend decisions.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Reservation mirrors the backend record. Date is "YYYY-MM-DD", Time "HH:MM".
type Reservation struct {
	ID              string `json:"id,omitempty"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Seats           int    `json:"seats"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Shift is one bookable (date, time) slot. Owned by the backend; read-only
// here except for the admin toggles.
type Shift struct {
	Time            string `json:"time"`
	Date            string `json:"date"`
	Enabled         bool   `json:"enabled"`
	MaxReservations int    `json:"maxReservations"`
}

// ReservationPatch is a partial update; nil fields are left untouched.
type ReservationPatch struct {
	FullName        *string `json:"fullName,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	Date            *string `json:"date,omitempty"`
	Time            *string `json:"time,omitempty"`
	Seats           *int    `json:"seats,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	Status          *string `json:"status,omitempty"`
}

// ShiftPatch is a partial shift update; nil fields are left untouched.
type ShiftPatch struct {
	Enabled         *bool `json:"enabled,omitempty"`
	MaxReservations *int  `json:"maxReservations,omitempty"`
}

// ShiftStat is the per-slot line of a daily stats report.
type ShiftStat struct {
	Time         string `json:"time"`
	Reservations int    `json:"reservations"`
	Seats        int    `json:"seats"`
	Available    bool   `json:"available"`
}

// Stats aggregates one day of reservations.
type Stats struct {
	Date                 string      `json:"date"`
	TotalReservations    int         `json:"totalReservations"`
	TotalSeats           int         `json:"totalSeats"`
	PendingReservations  int         `json:"pendingReservations"`
	AcceptedReservations int         `json:"acceptedReservations"`
	RejectedReservations int         `json:"rejectedReservations"`
	ShiftStats           []ShiftStat `json:"shiftStats"`
}

// ListFilters narrows List results. Zero values mean "no filter".
type ListFilters struct {
	Date   string
	Status string
	Limit  int
}
