package assigner

import (
	"fmt"
	"time"

	"github.com/arloliu/grouper/internal/registry"
	"github.com/arloliu/grouper/types"
)

// ProposeAndReject implements a capacity-aware variant of the Gale-Shapley
// propose-and-reject algorithm.
type ProposeAndReject struct {
	opts options
}

var _ Assigner = (*ProposeAndReject)(nil)

// NewProposeAndReject creates a new propose-and-reject assigner.
//
// Every subject is first assigned to the group of its first choice (or, when
// it has none, to its least disliked group) regardless of capacity. Groups
// that end up overfull then propose in rounds to the groups with room to take
// one of their members, until no group is over capacity. A full group only
// accepts a subject that is strictly happier there than the group's currently
// most dissatisfied member, which it evicts in exchange.
//
// The resulting total dissatisfaction never exceeds what FirstComeFirstServed
// produces on the same input.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *ProposeAndReject: Initialized assigner
func NewProposeAndReject(opts ...Option) *ProposeAndReject {
	return &ProposeAndReject{opts: newOptions(opts...)}
}

// Assign distributes the subjects across the groups by iterative rebalancing.
//
// The algorithm:
//  1. Validate total capacity
//  2. First-choice pass: seed every group with its first choosers, ignoring
//     capacity; place subjects without a first choice greedily
//  3. Partition registries into overfull, bystanders (full) and available
//  4. While any registry is overfull, each overfull registry hands one member
//     to the available registry extending the best offer; evicted members are
//     force-registered back with the group they now mind least
//  5. Fold the converged registries into an Assignment
//
// Parameters:
//   - subjects: Subjects to place
//   - groups: Candidate groups
//
// Returns:
//   - *types.Assignment: Mapping of subjects to groups
//   - error: types.ErrTotalCapacity when the groups cannot hold all subjects
func (a *ProposeAndReject) Assign(subjects []types.Subject, groups []types.Group) (*types.Assignment, error) {
	start := time.Now()
	if err := sufficientCapacity(subjects, groups); err != nil {
		a.opts.metrics.RecordAssignmentRun(algorithmProposeAndReject, len(subjects), len(groups), false)
		return nil, err
	}

	registries := firstChoicePass(subjects, groups)

	var overfull, bystanders, available []*registry.Proposal
	for _, reg := range registries {
		switch {
		case reg.Overfull():
			overfull = append(overfull, reg)
		case reg.Full():
			bystanders = append(bystanders, reg)
		default:
			available = append(available, reg)
		}
	}

	rounds, transfers, evictions := 0, 0, 0
	for len(overfull) > 0 {
		rounds++

		var reprocess []types.Subject
		for _, donor := range overfull {
			dest, offer, ok := bestTransferral(donor, available)
			if !ok {
				// Unreachable when the capacity check holds: an overfull group
				// implies a group with room among the available registries.
				a.opts.metrics.RecordAssignmentRun(algorithmProposeAndReject, len(subjects), len(groups), false)
				return nil, fmt.Errorf("%w: no group can accept a transfer from group %d",
					types.ErrAssignmentFailed, donor.ID())
			}

			transfers++
			if evicted, ok := donor.Transfer(dest, offer); ok {
				evictions++
				reprocess = append(reprocess, evicted)
			}
		}

		// Evicted subjects rejoin whichever non-available group they now mind
		// least, over capacity if need be. This may recreate overfullness and
		// drive further rounds.
		merged := make([]*registry.Proposal, 0, len(overfull)+len(bystanders))
		merged = append(merged, overfull...)
		merged = append(merged, bystanders...)
		for _, subject := range reprocess {
			forceRegisterMostDesired(subject, merged)
		}

		overfull, bystanders = nil, nil
		for _, reg := range merged {
			if reg.Overfull() {
				overfull = append(overfull, reg)
			} else {
				bystanders = append(bystanders, reg)
			}
		}

		a.opts.logger.Debug("proposal round complete",
			"round", rounds, "overfull", len(overfull), "reprocessed", len(reprocess))
	}

	result := registry.Fold(append(available, bystanders...))
	a.opts.metrics.RecordAssignmentDuration(algorithmProposeAndReject, time.Since(start).Seconds())
	a.opts.metrics.RecordAssignmentRun(algorithmProposeAndReject, len(subjects), len(groups), true)
	a.opts.metrics.RecordProposalRounds(rounds)
	a.opts.metrics.RecordTransfers(transfers, evictions)
	a.opts.metrics.RecordTotalDissatisfaction(algorithmProposeAndReject, result.TotalDissatisfaction(subjects))

	return result, nil
}

// firstChoicePass builds one proposal registry per group and seeds each with
// the not-yet-claimed subjects rating it 0, ignoring capacity. A subject with
// several first choices goes to the earliest such group in input order.
// Subjects with no first choice at all are then placed greedily: with their
// least disliked non-full group, or, when every group is full, force-registered
// with their least disliked group overall.
func firstChoicePass(subjects []types.Subject, groups []types.Group) []*registry.Proposal {
	registries := make([]*registry.Proposal, 0, len(groups))
	claimed := make([]bool, len(subjects))
	for _, group := range groups {
		groupID := group.ID()
		var firstChoosers []types.Subject
		for i, subject := range subjects {
			if claimed[i] || subject.Dissatisfaction(groupID) != 0 {
				continue
			}
			claimed[i] = true
			firstChoosers = append(firstChoosers, subject)
		}
		registries = append(registries, registry.NewProposal(group, firstChoosers...))
	}

	for i, subject := range subjects {
		if claimed[i] {
			continue
		}
		if reg := bestAvailableProposal(subject, registries); reg != nil {
			// Capacity allows a plain priority insertion.
			_ = reg.Register(subject)
			continue
		}
		forceRegisterMostDesired(subject, registries)
	}

	return registries
}

// bestTransferral evaluates the donor's transfer options against every
// available registry and returns the destination extending the best offer.
func bestTransferral(donor *registry.Proposal, available []*registry.Proposal) (*registry.Proposal, registry.TransferralOffer, bool) {
	var (
		dest  *registry.Proposal
		best  registry.TransferralOffer
		found bool
	)
	for _, candidate := range available {
		offer, ok := donor.ProposeTransferral(candidate)
		if !ok {
			continue
		}
		if !found || offer.Compare(best) < 0 {
			dest, best, found = candidate, offer, true
		}
	}

	return dest, best, found
}

// bestAvailableProposal returns the non-full registry the subject dislikes
// the least, or nil when every registry is full.
func bestAvailableProposal(subject types.Subject, registries []*registry.Proposal) *registry.Proposal {
	var best *registry.Proposal
	bestRating := 0
	for _, reg := range registries {
		if reg.Full() {
			continue
		}
		rating := subject.Dissatisfaction(reg.ID())
		if best == nil || rating < bestRating {
			best, bestRating = reg, rating
		}
	}

	return best
}

// forceRegisterMostDesired inserts the subject into the registry it minds the
// least among the given ones, disregarding capacity.
func forceRegisterMostDesired(subject types.Subject, registries []*registry.Proposal) {
	var best *registry.Proposal
	bestRating := 0
	for _, reg := range registries {
		rating := subject.Dissatisfaction(reg.ID())
		if best == nil || rating < bestRating {
			best, bestRating = reg, rating
		}
	}
	if best != nil {
		best.ForceRegister(subject)
	}
}
