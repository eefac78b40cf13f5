package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrUnreachable      = errors.New("workflow endpoint unreachable")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrInvalidURL       = errors.New("invalid webhook url")
)

// StatusError is returned when the workflow answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("workflow returned HTTP %d: %s", e.StatusCode, e.Body)
}
