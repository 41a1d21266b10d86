package model

import "errors"

var (
	// ErrScoreNotFound indicates that no calculated score exists for the pair.
	ErrScoreNotFound = errors.New("calculated score not found")
	// ErrCycleNotScorable indicates a recompute request for a cycle that is not
	// COMPLETED or PUBLISHED yet.
	ErrCycleNotScorable = errors.New("cycle scores can only be recomputed after completion")
)
