package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrNotFound          = errors.New("client not found")
)

// RejectionError is a non-2xx answer from the backend. Message carries the
// backend's explanation and may be empty.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend rejected request: %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrNotFound) match 404 rejections.
func (e *RejectionError) Unwrap() error {
	if e.Status == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}
