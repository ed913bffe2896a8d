package places

import (
	"errors"
	"fmt"
)

var ErrInvalidRequest = errors.New("invalid_request")

// StatusError is a non-2xx answer from the places API.
type StatusError struct {
	Op         string
	StatusCode int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.StatusText)
}
