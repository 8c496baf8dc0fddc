package api

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("page not found")
	ErrRateLimited = errors.New("rate limited by server")
	ErrFormat      = errors.New("unexpected page format")
)

// StatusError is an unexpected HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}
