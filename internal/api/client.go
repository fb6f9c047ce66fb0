package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client wraps the remote reservation backend. It is a plain pass-through:
// no retries, no backoff, no request deduplication. Each call is fire-once
// and every failure is scoped to the call that triggered it.
//
// Construct it explicitly and pass it down; there is no package-level
// instance.
type Client struct {
	hc      *http.Client
	stream  *http.Client // no timeout: held open for server-sent events
	baseURL string
	log     *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		hc:      &http.Client{Timeout: 10 * time.Second},
		stream:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do issues one JSON request against the API base URL and decodes the data
// field of the response envelope into out (when out is non-nil). Non-2xx
// responses become *Error carrying the backend's error text.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	res, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("api request failed", "method", method, "path", path, "err", err)
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := newError(res.StatusCode, env.Error)
		c.log.Error("api request failed", "method", method, "path", path, "status", res.StatusCode, "err", apiErr.Message)
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

// --- reservations ---

func (c *Client) List(ctx context.Context, f ListFilters) ([]Reservation, error) {
	q := url.Values{}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	var out []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns nil without error when the reservation does not exist.
func (c *Client) Get(ctx context.Context, id string) (*Reservation, error) {
	var out Reservation
	err := c.do(ctx, http.MethodGet, "/reservations/"+url.PathEscape(id), nil, nil, &out)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new reservation and returns the backend-assigned id.
func (c *Client) Create(ctx context.Context, r Reservation) (string, error) {
	var out Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, r, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) Update(ctx context.Context, id string, patch ReservationPatch) error {
	return c.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id), nil, patch, nil)
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/reservations/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) Accept(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/reservations/"+url.PathEscape(id)+"/accept", nil, nil, nil)
}

// Reject declines a reservation, with an optional reason for the guest.
func (c *Client) Reject(ctx context.Context, id, reason string) error {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}
	return c.do(ctx, http.MethodPost, "/reservations/"+url.PathEscape(id)+"/reject", nil, body, nil)
}

// --- shifts ---

func (c *Client) ShiftsForDate(ctx context.Context, date string) ([]Shift, error) {
	var out []Shift
	if err := c.do(ctx, http.MethodGet, "/shifts/"+url.PathEscape(date), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Shift returns nil without error when no shift exists at (date, time).
func (c *Client) Shift(ctx context.Context, date, timeStr string) (*Shift, error) {
	var out Shift
	err := c.do(ctx, http.MethodGet, "/shifts/"+url.PathEscape(date)+"/"+url.PathEscape(timeStr), nil, nil, &out)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateShift(ctx context.Context, date, timeStr string, patch ShiftPatch) error {
	return c.do(ctx, http.MethodPut, "/shifts/"+url.PathEscape(date)+"/"+url.PathEscape(timeStr), nil, patch, nil)
}

// InitializeShifts asks the backend to create the default slot grid for date.
func (c *Client) InitializeShifts(ctx context.Context, date string) error {
	return c.do(ctx, http.MethodPost, "/shifts/"+url.PathEscape(date)+"/initialize", nil, nil, nil)
}

func (c *Client) StatsForDate(ctx context.Context, date string) (Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/shifts/"+url.PathEscape(date)+"/stats", nil, nil, &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (c *Client) AvailableTimes(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/shifts/times/available", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// --- liveness ---

// Ping probes the backend health endpoint, which lives at the service origin
// rather than under the /api prefix. Any 2xx counts as healthy.
func (c *Client) Ping(ctx context.Context) error {
	origin := strings.TrimSuffix(c.baseURL, "/api")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/health", nil)
	if err != nil {
		return err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newError(res.StatusCode, "")
	}
	return nil
}
