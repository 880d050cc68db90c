package registry

import (
	"github.com/arloliu/grouper/types"
)

// Simple tracks the subjects currently placed in one group.
//
// Membership order carries no meaning at this level; the Proposal registry
// builds its sorted sequence on top.
type Simple struct {
	group   types.Group
	members []types.Subject
}

// NewSimple creates an empty registry for the given group.
func NewSimple(group types.Group) *Simple {
	return &Simple{group: group}
}

// ID returns the wrapped group's ID.
func (r *Simple) ID() uint64 {
	return r.group.ID()
}

// Capacity returns the wrapped group's capacity.
func (r *Simple) Capacity() int {
	return r.group.Capacity()
}

// Len returns the current number of members.
func (r *Simple) Len() int {
	return len(r.members)
}

// Full reports whether the group has reached (or exceeded) its capacity.
func (r *Simple) Full() bool {
	return len(r.members) >= r.group.Capacity()
}

// Register appends the subject to the group's members.
//
// Returns:
//   - error: types.ErrGroupFull if the group is already at capacity
func (r *Simple) Register(subject types.Subject) error {
	if r.Full() {
		return types.ErrGroupFull
	}
	r.members = append(r.members, subject)

	return nil
}

// SubjectIDsToGroupID returns the many-to-one mapping from the IDs of the
// registered subjects to this group's ID.
func (r *Simple) SubjectIDsToGroupID() map[uint64]uint64 {
	groupID := r.ID()
	mapping := make(map[uint64]uint64, len(r.members))
	for _, subject := range r.members {
		mapping[subject.ID()] = groupID
	}

	return mapping
}

// GroupIDToSubjectIDs returns the one-to-many mapping from this group's ID to
// the IDs of its registered subjects, in membership order. The entry is
// present even when the group has no members.
func (r *Simple) GroupIDToSubjectIDs() map[uint64][]uint64 {
	subjectIDs := make([]uint64, len(r.members))
	for i, subject := range r.members {
		subjectIDs[i] = subject.ID()
	}

	return map[uint64][]uint64{r.ID(): subjectIDs}
}

// Registry is the read surface Fold needs to turn per-group state into an
// Assignment.
type Registry interface {
	SubjectIDsToGroupID() map[uint64]uint64
	GroupIDToSubjectIDs() map[uint64][]uint64
}

// Fold unions the contributions of the given registries into one Assignment.
// Registries are disjoint in subject membership by construction, so the union
// loses nothing. An empty registry list yields an empty assignment.
func Fold[R Registry](registries []R) *types.Assignment {
	subjectToGroup := make(map[uint64]uint64)
	groupToSubjects := make(map[uint64][]uint64)
	for _, reg := range registries {
		for subjectID, groupID := range reg.SubjectIDsToGroupID() {
			subjectToGroup[subjectID] = groupID
		}
		for groupID, subjectIDs := range reg.GroupIDToSubjectIDs() {
			groupToSubjects[groupID] = subjectIDs
		}
	}

	return types.NewAssignment(subjectToGroup, groupToSubjects)
}
