package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx answer from the server. Message is the server's
// "message" field when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server responded %d", e.Status)
	}
	return e.Message
}

// Unwrap makes a 403 match ErrUnauthorized.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}
