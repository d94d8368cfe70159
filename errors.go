package toybox

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned when a client is constructed without a
	// credential. This is a configuration error, distinct from a failed
	// service call, and is detected before any network attempt.
	ErrMissingAPIKey = errors.New("API key is missing")

	// ErrNoInput is returned by Generate when neither an input image nor a
	// non-blank prompt is present.
	ErrNoInput = errors.New("no input image or prompt")

	// ErrNoImageProduced is returned when the generation call succeeds but
	// the service returns no image payload.
	ErrNoImageProduced = errors.New("no image produced")

	// ErrBusy is returned when an operation is invoked while another
	// operation is still in flight. Overlapping invocations are rejected,
	// never queued.
	ErrBusy = errors.New("operation already in flight")

	// ErrNothingToExport is returned by Export when no generated image exists.
	ErrNothingToExport = errors.New("no generated image to export")

	// ErrUnknownHistoryItem is returned when restoring an ID that is not in
	// the history.
	ErrUnknownHistoryItem = errors.New("unknown history item")
)

// ServiceError is returned when the remote generation service fails outright
// (network failure, malformed response, remote rejection). Message carries
// the service-provided text when the API supplied one.
type ServiceError struct {
	Message string
	Err     error // Underlying error from the provider
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "generation service error"
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsServiceError checks if an error is a ServiceError.
func IsServiceError(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr)
}

// UserMessage extracts the user-facing message for a failed generation:
// the service-provided message when available, otherwise a generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Something went wrong."
}

// wrapInvalidImage annotates validation failures for attach attempts.
func wrapInvalidImage(err error) error {
	return fmt.Errorf("invalid input image: %w", err)
}
