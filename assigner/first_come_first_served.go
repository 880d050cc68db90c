package assigner

import (
	"time"

	"github.com/arloliu/grouper/internal/registry"
	"github.com/arloliu/grouper/types"
)

// FirstComeFirstServed implements greedy single-pass assignment.
type FirstComeFirstServed struct {
	opts options
}

var _ Assigner = (*FirstComeFirstServed)(nil)

// NewFirstComeFirstServed creates a new first-come-first-served assigner.
//
// Each subject, in input order, joins the non-full group it dislikes the
// least. Earlier subjects therefore get strictly better treatment than later
// ones.
//
// Parameters:
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *FirstComeFirstServed: Initialized assigner
func NewFirstComeFirstServed(opts ...Option) *FirstComeFirstServed {
	return &FirstComeFirstServed{opts: newOptions(opts...)}
}

// Assign distributes the subjects across the groups one subject at a time.
//
// The algorithm:
//  1. Validate total capacity
//  2. For each subject in input order, register it with the non-full group
//     minimizing its dissatisfaction, breaking ties by group order
//
// Parameters:
//   - subjects: Subjects to place, in priority order
//   - groups: Candidate groups
//
// Returns:
//   - *types.Assignment: Mapping of subjects to groups
//   - error: types.ErrTotalCapacity when the groups cannot hold all subjects
func (a *FirstComeFirstServed) Assign(subjects []types.Subject, groups []types.Group) (*types.Assignment, error) {
	start := time.Now()
	if err := sufficientCapacity(subjects, groups); err != nil {
		a.opts.metrics.RecordAssignmentRun(algorithmFCFS, len(subjects), len(groups), false)
		return nil, err
	}

	registries := make([]*registry.Simple, len(groups))
	for i, group := range groups {
		registries[i] = registry.NewSimple(group)
	}

	for _, subject := range subjects {
		best := bestAvailable(subject, registries)
		if best == nil {
			// Unreachable once the capacity check passed: remaining capacity
			// always covers the remaining subjects. A Group implementation
			// with an unstable Capacity can get us here.
			a.opts.logger.Error("no group with remaining capacity, subject left unassigned",
				"subject_id", subject.ID())

			continue
		}
		if err := best.Register(subject); err != nil {
			a.opts.logger.Error("registration failed on non-full group",
				"subject_id", subject.ID(), "group_id", best.ID(), "error", err)
		}
	}

	result := registry.Fold(registries)
	a.opts.metrics.RecordAssignmentDuration(algorithmFCFS, time.Since(start).Seconds())
	a.opts.metrics.RecordAssignmentRun(algorithmFCFS, len(subjects), len(groups), true)
	a.opts.metrics.RecordTotalDissatisfaction(algorithmFCFS, result.TotalDissatisfaction(subjects))

	return result, nil
}

// bestAvailable returns the non-full registry the subject dislikes the least,
// or nil when every registry is full. The first registry in input order wins
// ties.
func bestAvailable(subject types.Subject, registries []*registry.Simple) *registry.Simple {
	var best *registry.Simple
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
