package clients

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError is returned before any network activity when the request
// cannot be submitted.
type ValidationError struct {
	Field string
	Rule  string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s failed %q", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error { return e.Err }

type TimeoutError struct {
	Deadline time.Duration
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response within %s: %v", e.Deadline, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError means no HTTP response was received.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("unable to reach the server: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

type ServerError struct {
	Status     int
	StatusText string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d - %s", e.Status, e.StatusText)
}

type ProtocolReason string

const (
	ReasonMissingData     ProtocolReason = "missing_data"
	ReasonMalformedBody   ProtocolReason = "malformed_body"
	ReasonSchemaViolation ProtocolReason = "schema_violation"
)

// ProtocolError means a response arrived but did not match the expected
// result envelope or schema.
type ProtocolError struct {
	Reason ProtocolReason
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid response format from server: %s", e.Reason)
	}
	return fmt.Sprintf("invalid response format from server: %s: %v", e.Reason, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func newValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field(), Rule: fieldErrs[0].Tag(), Err: err}
	}
	return &ValidationError{Field: "request", Rule: "valid", Err: err}
}

// classifyTransportError splits transport failures into timeouts and
// everything else.
func classifyTransportError(err error, deadline time.Duration) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{Deadline: deadline, Err: err}
	}
	return &NetworkError{Err: err}
}
