package types

import "slices"

// Assignment describes the relationship between subjects and groups produced
// by an assigner run.
//
// An Assignment is built once from the assigner's final state and is read-only
// afterwards. Every subject appears in exactly one group's member list, and
// every group passed to the assigner has an entry, including groups that ended
// up with no members.
type Assignment struct {
	subjectToGroup  map[uint64]uint64
	groupToSubjects map[uint64][]uint64
}

// NewAssignment creates an Assignment from the two halves of the mapping.
//
// The maps are taken over by the Assignment and must not be mutated by the
// caller afterwards.
//
// Parameters:
//   - subjectToGroup: Map from subject ID to the ID of its assigned group
//   - groupToSubjects: Map from group ID to the IDs of its assigned subjects
//
// Returns:
//   - *Assignment: The completed assignment
func NewAssignment(subjectToGroup map[uint64]uint64, groupToSubjects map[uint64][]uint64) *Assignment {
	if subjectToGroup == nil {
		subjectToGroup = map[uint64]uint64{}
	}
	if groupToSubjects == nil {
		groupToSubjects = map[uint64][]uint64{}
	}

	return &Assignment{
		subjectToGroup:  subjectToGroup,
		groupToSubjects: groupToSubjects,
	}
}

// SubjectGroupID returns the ID of the group the given subject was assigned to.
//
// Parameters:
//   - subjectID: ID of the subject to look up
//
// Returns:
//   - uint64: ID of the assigned group
//   - bool: false if the subject is not part of this assignment
func (a *Assignment) SubjectGroupID(subjectID uint64) (uint64, bool) {
	groupID, ok := a.subjectToGroup[subjectID]

	return groupID, ok
}

// GroupSubjectIDs returns the IDs of the subjects assigned to the given group.
//
// The returned slice is a copy; mutating it does not affect the assignment.
//
// Parameters:
//   - groupID: ID of the group to look up
//
// Returns:
//   - []uint64: IDs of the group's assigned subjects (possibly empty)
//   - bool: false if the group is not part of this assignment
func (a *Assignment) GroupSubjectIDs(groupID uint64) ([]uint64, bool) {
	subjectIDs, ok := a.groupToSubjects[groupID]
	if !ok {
		return nil, false
	}

	return slices.Clone(subjectIDs), true
}

// SubjectCount returns the number of assigned subjects.
func (a *Assignment) SubjectCount() int {
	return len(a.subjectToGroup)
}

// GroupCount returns the number of groups covered by this assignment.
func (a *Assignment) GroupCount() int {
	return len(a.groupToSubjects)
}

// TotalDissatisfaction sums the realized dissatisfaction of the given subjects
// under this assignment. Subjects that are not part of the assignment
// contribute nothing.
//
// Parameters:
//   - subjects: The subjects to evaluate, typically the Assign input
//
// Returns:
//   - int: Sum of each subject's dissatisfaction with its assigned group
func (a *Assignment) TotalDissatisfaction(subjects []Subject) int {
	total := 0
	for _, subject := range subjects {
		if groupID, ok := a.subjectToGroup[subject.ID()]; ok {
			total += subject.Dissatisfaction(groupID)
		}
	}

	return total
}
