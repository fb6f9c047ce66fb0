package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a transport-level failure: any non-2xx response. Message carries
// the backend's error text when it sent one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func newError(status int, serverMsg string) *Error {
	if serverMsg == "" {
		serverMsg = fmt.Sprintf("HTTP error! status: %d", status)
	}
	return &Error{StatusCode: status, Message: serverMsg}
}

// isNotFound reports whether err is a 404 transport error. Single-entity
// lookups translate those into absent values rather than failures.
func isNotFound(err error) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}
