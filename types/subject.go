package types

// Subject is an entity that needs to be assigned to exactly one group.
//
// Subjects express their preferences through dissatisfaction ratings: the
// lower the rating a subject gives a group, the more the subject prefers it.
// A rating of 0 marks a first choice.
//
// Subject implementations should:
//   - Return a stable ID for the lifetime of an Assign call
//   - Return non-negative dissatisfaction ratings
//   - Be deterministic (same group ID → same rating)
type Subject interface {
	// ID returns the unique identifier of the subject.
	ID() uint64

	// Dissatisfaction returns how displeased the subject would be after being
	// assigned to the group with the given ID. Lower values mean the subject
	// prefers the group more; 0 marks a first choice.
	//
	// How to rate a group the subject never ranked is a policy of the
	// implementation, typically a large fallback value.
	Dissatisfaction(groupID uint64) int
}

// Group is a capacity-bounded destination that subjects may be assigned to.
//
// Group IDs must be unique among the groups passed to a single Assign call.
// They are not required to be disjoint from subject IDs.
type Group interface {
	// ID returns the unique identifier of the group.
	ID() uint64

	// Capacity returns the maximum number of subjects that may be assigned
	// to this group simultaneously. Must be non-negative.
	Capacity() int
}
