package lolalytics

import (
	"errors"
	"fmt"
)

// Validation sentinels for structurally invalid requests. These fail before
// any network activity.
var (
	ErrEmptyChampion    = errors.New("champion name cannot be empty")
	ErrSameChampion     = errors.New("matchup champions must be distinct")
	ErrNonPositiveLimit = errors.New("row limit must be positive")
	ErrUnknownCategory  = errors.New("category must be one of all, buffed, nerfed, adjusted")
)

// InvalidLaneError reports a lane string not present in the alias table.
type InvalidLaneError struct {
	Raw string
}

func (e *InvalidLaneError) Error() string {
	return fmt.Sprintf("invalid lane %q: see LaneAliases for accepted values", e.Raw)
}

// InvalidRankError reports a rank string not present in the alias table.
type InvalidRankError struct {
	Raw string
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank %q: see RankAliases for accepted values", e.Raw)
}

// TransportError wraps any network or HTTP-layer failure. Status is zero
// when the failure happened below the HTTP layer.
type TransportError struct {
	Status int
	Cause  error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0 && e.Cause != nil:
		return fmt.Sprintf("transport failed with status %d: %v", e.Status, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("transport failed with status %d", e.Status)
	default:
		return fmt.Sprintf("transport failed: %v", e.Cause)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ExtractionError reports a retrieved document missing the data region an
// operation expected. It usually means the site layout changed or the
// requested entity does not exist.
type ExtractionError struct {
	Op     Operation
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %s", e.Op, e.Reason)
}
