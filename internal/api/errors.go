package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps any 401 response; callers treat it as a missing
	// or stale session rather than a network problem.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is returned while the circuit breaker is open.
	ErrUnavailable = errors.New("remote API unavailable")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote API returned status %d", e.Code)
	}
	return fmt.Sprintf("remote API returned status %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.Code == 401 {
		return ErrUnauthorized
	}
	return nil
}
