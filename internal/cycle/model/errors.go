package model

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleNotFound indicates that the requested review cycle does not exist.
	ErrCycleNotFound = errors.New("review cycle not found")
	// ErrInvalidTransition indicates a transition requested from an invalid source state.
	ErrInvalidTransition = errors.New("invalid cycle status transition")
	// ErrCycleOverlap indicates the cycle's date range overlaps another active cycle.
	ErrCycleOverlap = errors.New("cycle dates overlap an active cycle")
	// ErrInvalidDateRange indicates that end_date is not after start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")
	// ErrInvalidGracePeriod indicates a grace period outside the allowed 0-7 day range.
	ErrInvalidGracePeriod = errors.New("grace_period_days must be between 0 and 7")
	// ErrInvalidCycleName indicates an empty or oversized cycle name.
	ErrInvalidCycleName = errors.New("name must be between 1 and 255 characters")
)

// TransitionError reports which state a transition expected and which it found.
type TransitionError struct {
	CycleID  string
	Expected string
	Actual   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cycle %s is %s, expected %s", e.CycleID, e.Actual, e.Expected)
}

// Unwrap makes the error match ErrInvalidTransition via errors.Is.
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// OverlapError names the already-active cycle whose date range conflicts.
type OverlapError struct {
	CycleID   string
	CycleName string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("date range overlaps cycle %q (%s)", e.CycleName, e.CycleID)
}

// Unwrap makes the error match ErrCycleOverlap via errors.Is.
func (e *OverlapError) Unwrap() error {
	return ErrCycleOverlap
}
