package auth

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrMissingToken   = errors.New("login response carried no access token")
)

// RejectedError is a login answered with a non-2xx status.
type RejectedError struct {
	StatusCode int
	StatusText string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("login rejected: %d %s", e.StatusCode, e.StatusText)
}
