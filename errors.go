package grouper

import "github.com/arloliu/grouper/types"

// Sentinel errors re-exported from the types package.
var (
	// ErrTotalCapacity is returned when the combined group capacity is less
	// than the number of subjects.
	ErrTotalCapacity = types.ErrTotalCapacity

	// ErrAssignmentFailed is returned when an assigner run cannot complete
	// due to an internal invariant violation.
	ErrAssignmentFailed = types.ErrAssignmentFailed

	// ErrGroupFull is returned when a subject is registered with a group that
	// is already at capacity.
	ErrGroupFull = types.ErrGroupFull
)
