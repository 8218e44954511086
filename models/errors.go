package models

import (
	"fmt"
	"time"
)

// InvalidInputError reports malformed input: bad instants, out-of-range
// coordinates, negative elapsed cycle time, malformed series.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// InsufficientDataError reports a series too short to model, or an
// ensemble where every candidate model failed to fit.
type InsufficientDataError struct {
	Needed int
	Got    int
	Reason string
}

func (e *InsufficientDataError) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("insufficient data: need at least %d points, got %d", e.Needed, e.Got)
	}
	return fmt.Sprintf("insufficient data: %s", e.Reason)
}

// ComputationTimeoutError reports an exceeded grid-search budget.
type ComputationTimeoutError struct {
	Budget time.Duration
}

func (e *ComputationTimeoutError) Error() string {
	return fmt.Sprintf("computation budget of %s exceeded", e.Budget)
}
