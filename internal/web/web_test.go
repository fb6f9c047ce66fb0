package web

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fermento-pizzeria/fermento/internal/api"
	"github.com/fermento-pizzeria/fermento/internal/availability"
	"github.com/fermento-pizzeria/fermento/internal/config"
	"github.com/fermento-pizzeria/fermento/internal/metrics"
	"github.com/fermento-pizzeria/fermento/internal/status"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend emulates just enough of the reservation API for handler tests.
func fakeBackend(t *testing.T, date string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/shifts/"+date, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"time":"19:00","date":"` + date + `","enabled":true,"maxReservations":30},
			{"time":"19:15","date":"` + date + `","enabled":false,"maxReservations":30}
		]}`))
	})
	mux.HandleFunc("GET /api/shifts/"+date+"/19:00", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"time":"19:00","date":"` + date + `","enabled":true,"maxReservations":30}}`))
	})
	mux.HandleFunc("GET /api/shifts/"+date+"/stats", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"date":"` + date + `","totalReservations":1,"totalSeats":4}}`))
	})
	mux.HandleFunc("GET /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":"r1","fullName":"Ada Lovelace","phone":"333 1234567","email":"ada@example.com",
			 "date":"` + date + `","time":"19:00","seats":4,"status":"pending"}
		]}`))
	})
	mux.HandleFunc("POST /api/reservations", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"new-id"}}`))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, backendURL, env string) *Server {
	t.Helper()
	log := discardLogger()
	client := api.New(backendURL+"/api", log)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	cfg := config.Config{
		Env:           config.Resolve(env, backendURL+"/api"),
		AdminUser:     "admin",
		AdminPassHash: hash,
	}
	return &Server{
		API:      client,
		Monitor:  status.NewMonitor(client, time.Minute, log),
		Resolver: availability.NewResolver(client, log),
		Sessions: NewSessionManager([]byte("0123456789abcdef0123456789abcdef"), []byte("0123456789abcdef")),
		Cfg:      cfg,
		Log:      log,
	}
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func TestReservationFormShowsOnlyEnabledTimes(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservation?date="+date, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="19:00"`)
	assert.NotContains(t, body, `value="19:15"`)
}

func TestReservationSubmitInvalidShowsFieldErrors(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	form := url.Values{"firstName": {"Ada"}}
	req := httptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Last name is required")
	assert.NotContains(t, body, "Prenotazione inviata")
}

func TestReservationSubmitSuccessEchoesRequest(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	form := url.Values{
		"firstName":   {"Ada"},
		"lastName":    {"Lovelace"},
		"countryCode": {"+39"},
		"phone":       {"333 1234567"},
		"email":       {"ada@example.com"},
		"date":        {date},
		"time":        {"19:00"},
		"seats":       {"4"},
	}
	req := httptest.NewRequest(http.MethodPost, "/reservation", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Prenotazione inviata")
	assert.Contains(t, body, date)
	assert.Contains(t, body, "19:00")
}

func TestAdminRedirectsAnonymousToLogin(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminLoginThenDashboard(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	dash := httptest.NewRequest(http.MethodGet, "/admin?date="+date, nil)
	for _, c := range cookies {
		dash.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, dash)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	form := url.Values{"username": {"admin"}, "password": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Empty(t, rec.Result().Cookies())
}

func TestStatusRecheckProbesImmediately(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown")
	assert.Contains(t, rec.Body.String(), "Ricontrolla")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/status", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/status", rec.Header().Get("Location"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Connected")
}

func TestAdminStreamNotFoundWithoutRealTimeUpdates(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	srv := newTestServer(t, backend.URL, "development")
	srv.Cfg.Env.Features.RealTimeUpdates = false
	h := srv.Routes()

	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	login := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	login.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, login)
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	stream := httptest.NewRequest(http.MethodGet, "/admin/stream?date="+date, nil)
	for _, c := range cookies {
		stream.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, stream)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestMetricsCollectedWithoutAnalytics(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)
	h := newTestServer(t, backend.URL, "development").Routes()

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/", "200"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/", "200"))
	assert.Equal(t, before+1, after)
}

func TestMetricsEndpointGatedOnAnalytics(t *testing.T) {
	date := futureDate()
	backend := fakeBackend(t, date)

	dev := newTestServer(t, backend.URL, "development").Routes()
	rec := httptest.NewRecorder()
	dev.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	prod := newTestServer(t, backend.URL, "production").Routes()
	rec = httptest.NewRecorder()
	prod.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
