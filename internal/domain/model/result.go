package model

import "fmt"

// SendResult describes the outcome of a single delivery attempt.
// StatusCode is zero when no response was received.
type SendResult struct {
	Success    bool
	StatusCode int
	Detail     string
}

// RejectionError is returned by notifiers when the remote end answered with a
// status that does not count as delivered.
type RejectionError struct {
	StatusCode int
	Body       string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("remote rejected notification with status %d: %s", e.StatusCode, e.Body)
}
