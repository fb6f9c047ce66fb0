package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/widget"
)

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.render(w, "admin_login.html", pageData{Title: "Login"})
	case http.MethodPost:
		user := r.PostFormValue("username")
		pass := r.PostFormValue("password")
		if user != s.Cfg.AdminUser || !CheckPassword(s.Cfg.AdminPassHash, pass) {
			s.Log.Warn("failed admin login", "user", user)
			s.render(w, "admin_login.html", pageData{Title: "Login", Flash: "Invalid credentials"})
			return
		}
		if err := s.Sessions.SetAdmin(w, r, user); err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/admin", http.StatusFound)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	s.Sessions.Clear(w)
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

// handleAdminHome shows one day of reservations, shifts and stats. The date
// defaults to today and is always passed through as YYYY-MM-DD.
func (s *Server) handleAdminHome(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := time.Parse(widget.DateLayout, date); err != nil {
		date = time.Now().Format(widget.DateLayout)
	}

	user, _ := s.Sessions.AdminUser(r)
	data := pageData{
		Title:     "Admin",
		AdminUser: user,
		Date:      date,
		RealTime:  s.Cfg.Env.Features.RealTimeUpdates,
		Flash:     r.URL.Query().Get("flash"),
	}

	ctx := r.Context()
	var err error
	if data.Reservations, err = s.API.List(ctx, api.ListFilters{Date: date}); err != nil {
		s.Log.Error("list reservations", "date", date, "err", err)
		data.Flash = "Could not load reservations: " + err.Error()
	}
	if data.Shifts, err = s.API.ShiftsForDate(ctx, date); err != nil {
		s.Log.Error("list shifts", "date", date, "err", err)
	}
	if data.Stats, err = s.API.StatsForDate(ctx, date); err != nil {
		s.Log.Error("load stats", "date", date, "err", err)
	}

	s.render(w, "admin.html", data)
}

func (s *Server) handleAdminAccept(w http.ResponseWriter, r *http.Request) {
	s.adminAction(w, r, func() error {
		return s.API.Accept(r.Context(), r.PostFormValue("id"))
	})
}

func (s *Server) handleAdminReject(w http.ResponseWriter, r *http.Request) {
	s.adminAction(w, r, func() error {
		return s.API.Reject(r.Context(), r.PostFormValue("id"), r.PostFormValue("reason"))
	})
}

func (s *Server) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	s.adminAction(w, r, func() error {
		return s.API.Delete(r.Context(), r.PostFormValue("id"))
	})
}

// handleAdminShift toggles a shift on or off and optionally changes its
// capacity.
func (s *Server) handleAdminShift(w http.ResponseWriter, r *http.Request) {
	s.adminAction(w, r, func() error {
		var patch api.ShiftPatch
		if v := r.PostFormValue("enabled"); v != "" {
			enabled := v == "true" || v == "on"
			patch.Enabled = &enabled
		}
		if v := r.PostFormValue("maxReservations"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			patch.MaxReservations = &n
		}
		return s.API.UpdateShift(r.Context(), r.PostFormValue("date"), r.PostFormValue("time"), patch)
	})
}

func (s *Server) adminAction(w http.ResponseWriter, r *http.Request, fn func() error) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	back := "/admin?date=" + r.PostFormValue("date")
	if err := fn(); err != nil {
		s.Log.Error("admin action", "path", r.URL.Path, "err", err)
		back += "&flash=" + url.QueryEscape(err.Error())
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// handleAdminStream proxies the backend reservation stream to the dashboard
// as server-sent events so the table refreshes without polling.
func (s *Server) handleAdminStream(w http.ResponseWriter, r *http.Request) {
	if !s.Cfg.Env.Features.RealTimeUpdates {
		http.Error(w, "real-time updates disabled", http.StatusNotFound)
		return
	}
	rc := http.NewResponseController(w)

	date := r.URL.Query().Get("date")
	if _, err := time.Parse(widget.DateLayout, date); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	events := make(chan []api.Reservation, 1)
	stop, err := s.API.StreamReservations(r.Context(), date, func(rs []api.Reservation) {
		select {
		case events <- rs:
		case <-r.Context().Done():
		}
	})
	if err != nil {
		http.Error(w, "stream error: "+err.Error(), http.StatusBadGateway)
		return
	}
	defer stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case rs := <-events:
			payload, err := json.Marshal(rs)
			if err != nil {
				continue
			}
			if _, err := w.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}
