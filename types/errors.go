package types

import "errors"

// Sentinel errors for the Grouper library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Assigner errors - Public API errors returned by the assigners.
var (
	// ErrTotalCapacity is returned when the combined capacity of all groups is
	// less than the number of subjects. It is raised by the upfront capacity
	// check before any assignment work is done.
	ErrTotalCapacity = errors.New("insufficient capacity: combined group capacity is less than the number of subjects")

	// ErrAssignmentFailed is returned when an assigner run cannot complete.
	// Seeing this error means an internal invariant was violated, typically by
	// a Group implementation whose Capacity changed mid-run.
	ErrAssignmentFailed = errors.New("assignment failed")
)

// Registry errors - Group-local registration errors.
var (
	// ErrGroupFull is returned when a subject is registered with a group that
	// is already at capacity. The assigners validate capacity upfront, so in
	// their normal paths this error is not expected to surface.
	ErrGroupFull = errors.New("insufficient capacity: group is already full")
)
