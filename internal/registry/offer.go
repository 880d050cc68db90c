package registry

import "cmp"

// MembershipOffer describes what a subject would experience if accepted by a
// group, and whether an existing member must be evicted to make room.
//
// Offers are ordered lexicographically: first by DissatisfactionRating
// ascending, then no-eviction offers before eviction offers, then among
// eviction offers by EvictionImprovement ascending, so the offer replacing
// the least committed member wins ties.
type MembershipOffer struct {
	// DissatisfactionRating is how dissatisfied the candidate subject would
	// be as a member of the offering group.
	DissatisfactionRating int

	// EvictionImprovement is candidate rating minus the group's highest
	// member rating. Only meaningful when Eviction is true, and then always
	// negative.
	EvictionImprovement int

	// Eviction reports whether accepting the offer displaces the group's
	// currently most dissatisfied member.
	Eviction bool
}

// NewMembershipOffer creates an offer that needs no eviction.
func NewMembershipOffer(rating int) MembershipOffer {
	return MembershipOffer{DissatisfactionRating: rating}
}

// NewEvictionOffer creates an offer whose acceptance displaces the group's
// most dissatisfied member. The improvement must be negative.
func NewEvictionOffer(rating, improvement int) MembershipOffer {
	return MembershipOffer{
		DissatisfactionRating: rating,
		EvictionImprovement:   improvement,
		Eviction:              true,
	}
}

// Compare orders offers so that the smallest offer is the most attractive to
// the proposing group.
//
// Returns:
//   - int: -1 if o sorts before other, 0 if they rank equally, +1 otherwise
func (o MembershipOffer) Compare(other MembershipOffer) int {
	if c := cmp.Compare(o.DissatisfactionRating, other.DissatisfactionRating); c != 0 {
		return c
	}
	switch {
	case !o.Eviction && !other.Eviction:
		return 0
	case !o.Eviction:
		return -1
	case !other.Eviction:
		return 1
	default:
		return cmp.Compare(o.EvictionImprovement, other.EvictionImprovement)
	}
}

// TransferralOffer pairs the donor-side position of the subject that would
// move with the MembershipOffer it realizes at the receiving group.
type TransferralOffer struct {
	// SubjectLookupKey is the position of the moving subject within the donor
	// registry's member sequence at the time the offer was made.
	SubjectLookupKey int

	// Offer is the membership offer the receiving group extended.
	Offer MembershipOffer
}

// NewTransferralOffer creates a transferral offer for the donor member at the
// given position.
func NewTransferralOffer(subjectLookupKey int, offer MembershipOffer) TransferralOffer {
	return TransferralOffer{SubjectLookupKey: subjectLookupKey, Offer: offer}
}

// RequiresEviction reports whether executing the transfer displaces a member
// of the receiving group.
func (o TransferralOffer) RequiresEviction() bool {
	return o.Offer.Eviction
}

// Compare orders transferral offers by their embedded membership offers; the
// lookup key does not participate.
func (o TransferralOffer) Compare(other TransferralOffer) int {
	return o.Offer.Compare(other.Offer)
}
