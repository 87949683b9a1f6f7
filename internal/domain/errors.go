package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyRequest is returned when neither a topic nor a valid URL was given.
var ErrEmptyRequest = &ValidationError{
	Code:    "EmptyRequest",
	Field:   "topic",
	Message: "please enter a topic or at least one http(s) URL",
}

// ErrBusy is returned when a submission is attempted while a job is in flight.
var ErrBusy = errors.New("a generation job is already in progress")

const (
	MsgSubmissionFailed = "Failed to start article generation"
	MsgGenerationFailed = "Article generation failed"
	MsgUnavailable      = "Backend server is currently unavailable. Please try again later."
	MsgUnauthenticated  = "Authentication failed. Please log in again."
	MsgForbidden        = "Access denied. Admin privileges required."
	MsgNotAuthenticated = "Not authenticated"
)

// ValidationError is bad user input caught before any request is sent.
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error [%s]: %s", e.Code, e.Message)
}

// TransportError is a network or HTTP failure. Status is 0 for network errors.
// Detail is the backend's own error text, empty when it sent none.
type TransportError struct {
	Op      string
	Status  int
	Message string
	Detail  string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthError is a missing or rejected session on a protected call.
type AuthError struct {
	Op      string
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NotFoundError is returned when the requested resource does not exist.
type NotFoundError struct {
	Op       string
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s not found", e.Op, e.Resource)
}

// SubmissionError is a generation request the backend did not accept.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// JobFailedError is a job that reached the failed terminal state.
type JobFailedError struct {
	JobID   string
	Message string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("job %s failed: %s", e.JobID, e.Message)
}

// StatusOf extracts the HTTP status from any of the transport-level errors.
func StatusOf(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Status
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Status
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return 404
	}
	return 0
}
