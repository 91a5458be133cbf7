package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found in catalog")
	ErrNotInCart       = errors.New("product is not in the cart")

	// ErrNoAPIKey is returned when the completion provider key is not
	// configured. Endpoints depending on the model degrade, the process
	// does not crash.
	ErrNoAPIKey = errors.New("gemini api key is not configured")

	// ErrModelUnavailable covers network and provider failures reaching
	// the completion endpoint. Retryable.
	ErrModelUnavailable = errors.New("completion model is unavailable")

	// ErrDeadline means the provider did not answer within the request
	// deadline. Kept distinct from ErrModelUnavailable for user messaging.
	ErrDeadline = errors.New("completion model deadline exceeded")

	// ErrStale marks a command result that was superseded by a newer
	// command before it could be applied.
	ErrStale = errors.New("command superseded by a newer command")
)

// An ExtractionError means the model answered, but the answer was not
// valid JSON after fence stripping. It carries the raw model text for
// diagnostics and is never retried automatically.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("could not parse model output as JSON: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
