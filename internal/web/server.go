package web

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/availability"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/metrics"
	"github.com/fermento-pizzeria/fermento/internal/reservation"
	"github.com/fermento-pizzeria/fermento/internal/status"
	"github.com/fermento-pizzeria/fermento/internal/widget"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server renders the public pizzeria site, drives the reservation form, and
// hosts the small admin area. All reservation state lives in the remote
// backend; this process only passes it through.
type Server struct {
	API      *api.Client
	Monitor  *status.Monitor
	Resolver *availability.Resolver
	Sessions *SessionManager
	Cfg      config.Config
	Log      *slog.Logger
}

// pageData is handed to every template. Unused fields stay zero.
type pageData struct {
	Title string
	Env   string

	// menu
	Categories []MenuCategory
	Active     MenuCategory

	// reservation form
	Draft       reservation.Draft
	Errors      reservation.ValidationErrors
	TimeOptions []string
	Days        []widget.Day
	WeekDays    []string
	MonthLabel  string
	PrevMonth   string
	NextMonth   string
	Countries   []widget.Country
	People      []int
	Result      *reservation.Result
	FailureMsg  string

	// connectivity
	Status  status.Snapshot
	Details bool

	// admin
	AdminUser    string
	Date         string
	Reservations []api.Reservation
	Shifts       []api.Shift
	Stats        api.Stats
	RealTime     bool
	Flash        string
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/menu", s.handleMenu)
	mux.HandleFunc("/galleria", s.handleGallery)
	mux.HandleFunc("/blog", s.handleBlog)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/reservation", s.handleReservation)

	mux.HandleFunc("/admin/login", s.handleAdminLogin)
	mux.HandleFunc("/admin/logout", s.handleAdminLogout)
	mux.Handle("/admin", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminHome)))
	mux.Handle("/admin/accept", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminAccept)))
	mux.Handle("/admin/reject", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminReject)))
	mux.Handle("/admin/delete", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminDelete)))
	mux.Handle("/admin/shift", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminShift)))
	mux.Handle("/admin/stream", s.Sessions.RequireAdmin(http.HandlerFunc(s.handleAdminStream)))

	// Collection always runs; only the scrape endpoint is feature-gated.
	if s.Cfg.Env.Features.Analytics {
		mux.Handle("/metrics", promhttp.Handler())
	}
	return metrics.Middleware(mux)
}

func (s *Server) render(w http.ResponseWriter, name string, data pageData) {
	data.Env = s.Cfg.Env.Name
	t, err := template.ParseFS(templatesFS,
		"templates/base.html",
		"templates/"+name,
	)
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "base", data); err != nil {
		s.Log.Error("render error", "template", name, "err", err)
	}
}

// Start serves h on addr until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, addr string, h http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	log.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
