package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("generation service rate limited")

	// ErrPaymentRequired maps an upstream 402.
	ErrPaymentRequired = errors.New("generation service requires payment")

	// ErrParse indicates model output from which no valid resume JSON could
	// be extracted.
	ErrParse = errors.New("could not parse model output")

	// ErrNotConfigured means no generation provider is wired up.
	ErrNotConfigured = errors.New("llm provider not configured")
)

// ServiceError is an upstream rejection carrying the HTTP status. Rate-limit
// and payment-required conditions unwrap to their sentinels so callers can
// branch with errors.Is; every other status is a generic failure.
type ServiceError struct {
	Status int
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generation service rejected request: status %d", e.Status)
}

func (e *ServiceError) Unwrap() error {
	switch e.Status {
	case 429:
		return ErrRateLimited
	case 402:
		return ErrPaymentRequired
	}
	return nil
}
