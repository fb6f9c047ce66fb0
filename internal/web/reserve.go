package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/metrics"
	"github.com/fermento-pizzeria/fermento/internal/reservation"
	"github.com/fermento-pizzeria/fermento/internal/widget"
)

const monthLayout = "2006-01"

func (s *Server) handleReservation(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.reservationForm(w, r)
	case http.MethodPost:
		s.reservationSubmit(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// reservationForm renders the calendar and pickers. Month, date and picker
// values round-trip through the query string so the page stays stateless.
func (s *Server) reservationForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	picker := widget.NewDatePicker(time.Now())
	if m, err := time.Parse(monthLayout, q.Get("month")); err == nil {
		picker.ShowMonth(m)
	}

	form := reservation.NewForm(s.Log)
	form.SetFirstName(q.Get("firstName"))
	form.SetLastName(q.Get("lastName"))
	form.SetEmail(q.Get("email"))
	form.SetCountryCode(q.Get("countryCode"))
	form.SetPhone(widget.SanitizeNumber(q.Get("phone")))
	form.SetSpecialRequests(q.Get("specialRequests"))

	if d, err := time.Parse(widget.DateLayout, q.Get("date")); err == nil {
		if picker.Select(d) {
			form.SetDate(q.Get("date"))
		}
	}

	people := widget.NewPeopleSelect(reservation.MinSeats, reservation.MaxSeats)
	if n, err := strconv.Atoi(q.Get("seats")); err == nil {
		people.Select(n)
	}
	form.SetSeats(people.Value)

	var times []string
	if form.Draft().Date != "" {
		times = s.Resolver.TimesForDate(r.Context(), form.Draft().Date)
	}
	form.SetTime(q.Get("time"))
	form.ApplyAvailability(times)

	s.render(w, "reserve.html", pageData{
		Title:       "Prenota",
		Draft:       form.Draft(),
		Errors:      form.Errors(),
		TimeOptions: times,
		Days:        picker.Days(),
		WeekDays:    widget.WeekDays(),
		MonthLabel:  picker.Month().Format("January 2006"),
		PrevMonth:   picker.Month().AddDate(0, -1, 0).Format(monthLayout),
		NextMonth:   picker.Month().AddDate(0, 1, 0).Format(monthLayout),
		Countries:   widget.Countries,
		People:      people.Options(),
	})
}

func (s *Server) reservationSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := reservation.NewForm(s.Log)
	form.SetFirstName(r.PostFormValue("firstName"))
	form.SetLastName(r.PostFormValue("lastName"))
	form.SetEmail(r.PostFormValue("email"))
	form.SetCountryCode(r.PostFormValue("countryCode"))
	form.SetPhone(widget.SanitizeNumber(r.PostFormValue("phone")))
	form.SetDate(r.PostFormValue("date"))
	form.SetTime(r.PostFormValue("time"))
	form.SetSpecialRequests(r.PostFormValue("specialRequests"))

	people := widget.NewPeopleSelect(reservation.MinSeats, reservation.MaxSeats)
	if n, err := strconv.Atoi(r.PostFormValue("seats")); err == nil {
		people.Select(n)
	}
	form.SetSeats(people.Value)

	// Re-resolve availability right before submit; a slot disabled since the
	// form was rendered drops out and fails validation instead of booking.
	times := s.Resolver.TimesForDate(r.Context(), form.Draft().Date)
	form.ApplyAvailability(times)

	draft := form.Draft()
	if draft.Date != "" && draft.Time != "" {
		if !reservation.CheckShiftAvailability(r.Context(), s.API, draft.Date, draft.Time, draft.Seats) {
			// advisory only, the backend has the final word
			s.Log.Warn("shift looks full", "date", draft.Date, "time", draft.Time, "seats", draft.Seats)
		}
	}

	form.Submit(r.Context(), s.API)

	data := pageData{
		Title:       "Prenota",
		Draft:       form.Draft(),
		Errors:      form.Errors(),
		TimeOptions: times,
		Countries:   widget.Countries,
		People:      people.Options(),
		WeekDays:    widget.WeekDays(),
	}

	switch form.Phase() {
	case reservation.PhaseSucceeded:
		metrics.SubmissionsTotal.WithLabelValues("succeeded").Inc()
		data.Result = form.Result()
		s.render(w, "reserve_done.html", data)
		return
	case reservation.PhaseFailed:
		metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		data.FailureMsg = form.FailureMessage()
	default:
		metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
	}

	picker := widget.NewDatePicker(time.Now())
	if d, err := time.Parse(widget.DateLayout, form.Draft().Date); err == nil {
		picker.ShowMonth(d)
	}
	data.Days = picker.Days()
	data.MonthLabel = picker.Month().Format("January 2006")
	data.PrevMonth = picker.Month().AddDate(0, -1, 0).Format(monthLayout)
	data.NextMonth = picker.Month().AddDate(0, 1, 0).Format(monthLayout)

	s.render(w, "reserve.html", data)
}
