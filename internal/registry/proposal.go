package registry

import (
	"slices"
	"sort"

	"github.com/arloliu/grouper/types"
)

// Proposal composes a Simple registry with dissatisfaction-ordered membership
// and the propose/transfer protocol of the propose-and-reject algorithm.
//
// Members are kept sorted ascending by their dissatisfaction toward this
// group, so the most dissatisfied member is always at the tail and the cached
// highest dissatisfaction is the tail member's rating (0 when empty).
type Proposal struct {
	base                   *Simple
	highestDissatisfaction int
}

// NewProposal creates a registry for the given group and priority-inserts the
// given members, ignoring capacity. The propose-and-reject first pass uses
// this to seed groups with their first choosers, which may leave the group
// overfull.
func NewProposal(group types.Group, members ...types.Subject) *Proposal {
	r := &Proposal{base: NewSimple(group)}
	for _, subject := range members {
		r.ForceRegister(subject)
	}

	return r
}

// ID returns the wrapped group's ID.
func (r *Proposal) ID() uint64 {
	return r.base.ID()
}

// Capacity returns the wrapped group's capacity.
func (r *Proposal) Capacity() int {
	return r.base.Capacity()
}

// Len returns the current number of members.
func (r *Proposal) Len() int {
	return r.base.Len()
}

// Full reports whether the group has reached (or exceeded) its capacity.
func (r *Proposal) Full() bool {
	return r.base.Full()
}

// Overfull reports whether the group currently holds more members than its
// capacity. Only transiently true between the first pass and convergence.
func (r *Proposal) Overfull() bool {
	return r.base.Len() > r.base.Capacity()
}

// HighestDissatisfaction returns the cached dissatisfaction of the most
// dissatisfied member, or 0 when the group is empty.
func (r *Proposal) HighestDissatisfaction() int {
	return r.highestDissatisfaction
}

// Register inserts the subject at the position keeping the member sequence
// sorted by dissatisfaction toward this group.
//
// Returns:
//   - error: types.ErrGroupFull if the group is already at capacity
func (r *Proposal) Register(subject types.Subject) error {
	if r.Full() {
		return types.ErrGroupFull
	}
	r.insertSorted(subject)

	return nil
}

// ForceRegister inserts the subject in sorted position ignoring capacity.
// The algorithm needs every subject to always have some home, transiently
// over capacity if necessary, for the convergence loop to terminate.
func (r *Proposal) ForceRegister(subject types.Subject) {
	r.insertSorted(subject)
}

// HandleMembershipProposal evaluates whether this group would accept the
// candidate.
//
// A group with room always accepts, without eviction. A full group accepts
// only a candidate that is strictly happier here than the group's currently
// most dissatisfied member; the resulting offer signals that member's
// eviction.
//
// Returns:
//   - MembershipOffer: The extended offer
//   - bool: false when the group declines
func (r *Proposal) HandleMembershipProposal(candidate types.Subject) (MembershipOffer, bool) {
	rating := candidate.Dissatisfaction(r.ID())
	if r.base.Len() >= r.Capacity() {
		improvement := rating - r.highestDissatisfaction
		if improvement >= 0 {
			return MembershipOffer{}, false
		}

		return NewEvictionOffer(rating, improvement), true
	}

	return NewMembershipOffer(rating), true
}

// ProposeTransferral asks other to accept the member of this group who minds
// moving there the least.
//
// Returns:
//   - TransferralOffer: The member's position paired with other's offer
//   - bool: false when this group is empty or other declines
func (r *Proposal) ProposeTransferral(other *Proposal) (TransferralOffer, bool) {
	if r.base.Len() == 0 {
		return TransferralOffer{}, false
	}

	otherID := other.ID()
	lookupKey := 0
	lowest := r.base.members[0].Dissatisfaction(otherID)
	for i, member := range r.base.members[1:] {
		// Ties go to the member closest to the tail, i.e. the one most
		// dissatisfied with this group among those minding the move least.
		if rating := member.Dissatisfaction(otherID); rating <= lowest {
			lookupKey, lowest = i+1, rating
		}
	}

	offer, ok := other.HandleMembershipProposal(r.base.members[lookupKey])
	if !ok {
		return TransferralOffer{}, false
	}

	return NewTransferralOffer(lookupKey, offer), true
}

// Transfer moves the subject named by the offer from this group into other.
//
// When the offer signals an eviction, other's most dissatisfied member (the
// tail element) is removed first to make room and returned to the caller for
// reprocessing. Otherwise other has room and nothing is displaced.
//
// Returns:
//   - types.Subject: The evicted member of other
//   - bool: false when nothing was evicted
func (r *Proposal) Transfer(other *Proposal, offer TransferralOffer) (types.Subject, bool) {
	subject := r.base.members[offer.SubjectLookupKey]
	r.removeAt(offer.SubjectLookupKey)

	var evicted types.Subject
	if offer.RequiresEviction() {
		evicted = other.base.members[other.base.Len()-1]
		other.removeAt(other.base.Len() - 1)
	}
	other.insertSorted(subject)

	return evicted, evicted != nil
}

// SubjectIDsToGroupID returns the many-to-one mapping from member IDs to this
// group's ID.
func (r *Proposal) SubjectIDsToGroupID() map[uint64]uint64 {
	return r.base.SubjectIDsToGroupID()
}

// GroupIDToSubjectIDs returns the one-to-many mapping from this group's ID to
// its member IDs.
func (r *Proposal) GroupIDToSubjectIDs() map[uint64][]uint64 {
	return r.base.GroupIDToSubjectIDs()
}

func (r *Proposal) insertSorted(subject types.Subject) {
	groupID := r.ID()
	rating := subject.Dissatisfaction(groupID)
	// Insert after any members with an equal rating to keep existing members
	// ahead of newcomers at the same rating.
	idx := sort.Search(len(r.base.members), func(i int) bool {
		return r.base.members[i].Dissatisfaction(groupID) > rating
	})
	r.base.members = slices.Insert(r.base.members, idx, subject)
	r.refreshHighest()
}

func (r *Proposal) removeAt(idx int) {
	r.base.members = slices.Delete(r.base.members, idx, idx+1)
	r.refreshHighest()
}

func (r *Proposal) refreshHighest() {
	if len(r.base.members) == 0 {
		r.highestDissatisfaction = 0
		return
	}
	tail := r.base.members[len(r.base.members)-1]
	r.highestDissatisfaction = tail.Dissatisfaction(r.ID())
}
