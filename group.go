package grouper

import "github.com/arloliu/grouper/types"

// SimpleGroup is a ready-made Group with a fixed ID and capacity.
type SimpleGroup struct {
	id       uint64
	capacity int
}

// Compile-time assertion that SimpleGroup implements Group.
var _ types.Group = (*SimpleGroup)(nil)

// NewSimpleGroup creates a group with the given ID and capacity.
//
// Parameters:
//   - id: Unique group identifier
//   - capacity: Maximum number of simultaneous members (non-negative)
//
// Returns:
//   - *SimpleGroup: Group usable with any assigner
func NewSimpleGroup(id uint64, capacity int) *SimpleGroup {
	return &SimpleGroup{id: id, capacity: capacity}
}

// ID returns the unique identifier of the group.
func (g *SimpleGroup) ID() uint64 {
	return g.id
}

// Capacity returns the maximum number of members the group can hold.
func (g *SimpleGroup) Capacity() int {
	return g.capacity
}
