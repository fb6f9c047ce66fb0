package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// streamMessage is one server-sent event payload. Only "reservations"
// messages carry data this client consumes; anything else is ignored.
type streamMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// StreamReservations opens the server-sent event stream for date and invokes
// callback with the full reservation list on every push. The returned stop
// function closes the stream; the caller owns that cleanup, there is no
// automatic timeout. The stream does not reconnect on its own.
func (c *Client) StreamReservations(ctx context.Context, date string, callback func([]Reservation)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reservations/stream/"+date, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")

	res, err := c.stream.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		res.Body.Close()
		cancel()
		return nil, newError(res.StatusCode, "")
	}

	go func() {
		defer res.Body.Close()

		sc := bufio.NewScanner(res.Body)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		var data strings.Builder
		for sc.Scan() {
			line := sc.Text()
			if line == "" {
				// event boundary
				if data.Len() > 0 {
					c.dispatch(data.String(), callback)
					data.Reset()
				}
				continue
			}
			if payload, ok := strings.CutPrefix(line, "data:"); ok {
				if data.Len() > 0 {
					data.WriteByte('\n')
				}
				data.WriteString(strings.TrimPrefix(payload, " "))
			}
		}
		if err := sc.Err(); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Error("sse connection error", "date", date, "err", err)
		}
	}()

	return cancel, nil
}

func (c *Client) dispatch(raw string, callback func([]Reservation)) {
	var msg streamMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		c.log.Error("error parsing sse data", "err", err)
		return
	}
	if msg.Type != "reservations" {
		return
	}
	var rs []Reservation
	if err := json.Unmarshal(msg.Data, &rs); err != nil {
		c.log.Error("error parsing sse data", "err", err)
		return
	}
	callback(rs)
}
