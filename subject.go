package grouper

import "github.com/arloliu/grouper/types"

// MapSubject is a ready-made Subject backed by a preference map.
//
// Groups absent from the map receive a fixed fallback dissatisfaction,
// typically chosen larger than any listed rating so unranked groups are
// picked last.
type MapSubject struct {
	id          uint64
	preferences map[uint64]int
	fallback    int
}

// Compile-time assertion that MapSubject implements Subject.
var _ types.Subject = (*MapSubject)(nil)

// NewMapSubject creates a subject from an explicit preference map.
//
// Parameters:
//   - id: Unique subject identifier
//   - preferences: Map from group ID to dissatisfaction rating (lower = more preferred)
//   - fallback: Rating applied to any group missing from preferences
//
// Returns:
//   - *MapSubject: Subject usable with any assigner
//
// Example:
//
//	// Prefers group 101, tolerates 102, dislikes everything else.
//	subject := grouper.NewMapSubject(1, map[uint64]int{101: 0, 102: 1}, 5)
func NewMapSubject(id uint64, preferences map[uint64]int, fallback int) *MapSubject {
	return &MapSubject{id: id, preferences: preferences, fallback: fallback}
}

// ID returns the unique identifier of the subject.
func (s *MapSubject) ID() uint64 {
	return s.id
}

// Dissatisfaction returns the subject's rating for the given group, or the
// fallback rating when the group was never ranked.
func (s *MapSubject) Dissatisfaction(groupID uint64) int {
	if rating, ok := s.preferences[groupID]; ok {
		return rating
	}

	return s.fallback
}
