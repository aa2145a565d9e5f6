package api

import (
	"errors"
	"fmt"
)

// User-facing messages
const (
	TimeoutMessage        = "The AI is taking a bit long (over 2 minutes). Please try again with a shorter prompt."
	GenericFailureMessage = "Failed to generate itinerary. Please try again."
)

var (
	// ErrUnreachable means the connectivity pre-check failed
	ErrUnreachable = errors.New("itinerary service unreachable")
	// ErrTimeout means generation exceeded the request timeout
	ErrTimeout = errors.New("itinerary generation timed out")
	// ErrMalformedResponse means a 2xx body could not be decoded
	ErrMalformedResponse = errors.New("malformed itinerary response")
)

// UnreachableError carries the base URL that failed the pre-check
type UnreachableError struct {
	BaseURL string
	Err     error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("Cannot reach Server: %s. Check your internet or wait 1 minute.", e.BaseURL)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrUnreachable) hold
func (e *UnreachableError) Is(target error) bool { return target == ErrUnreachable }

// ServiceError is a non-2xx reply from the generation endpoint
type ServiceError struct {
	StatusCode int
	// Detail is the "detail" field of the error body; empty when absent
	Detail string
}

func (e *ServiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("itinerary service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("itinerary service returned %d: %s", e.StatusCode, e.Detail)
}

// Message is the text shown to the user
func (e *ServiceError) Message() string {
	if e.Detail == "" {
		return GenericFailureMessage
	}
	return e.Detail
}

// UserMessage maps any submission error to the text shown in the UI
func UserMessage(err error) string {
	var unreachable *UnreachableError
	var svc *ServiceError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &unreachable):
		return unreachable.Error()
	case errors.Is(err, ErrTimeout):
		return TimeoutMessage
	case errors.As(err, &svc):
		return "Error: " + svc.Message()
	default:
		return "Error: " + GenericFailureMessage
	}
}
