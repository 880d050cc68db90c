package assigner

import (
	"github.com/arloliu/grouper/internal/logging"
	"github.com/arloliu/grouper/internal/metrics"
	"github.com/arloliu/grouper/types"
)

// Algorithm labels used for logging and metrics.
const (
	algorithmFCFS             = "first_come_first_served"
	algorithmProposeAndReject = "propose_and_reject"
)

// Assigner assigns subjects to groups.
//
// Implementations should:
//   - Be deterministic (same input order → same output)
//   - Validate total capacity before any assignment work
//   - Leave the caller's subject and group slices untouched
type Assigner interface {
	// Assign distributes the given subjects across the given groups.
	//
	// Parameters:
	//   - subjects: Subjects to place, in priority/iteration order
	//   - groups: Candidate groups, in iteration order
	//
	// Returns:
	//   - *types.Assignment: Mapping of subjects to groups
	//   - error: types.ErrTotalCapacity when the groups cannot hold all subjects
	Assign(subjects []types.Subject, groups []types.Group) (*types.Assignment, error)
}

// Option configures an assigner with optional dependencies.
type Option func(*options)

// options holds optional assigner configuration.
type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

func newOptions(opts ...Option) options {
	o := options{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the logger used for diagnostics.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for the assigner constructors
//
// Example:
//
//	a := assigner.NewProposeAndReject(assigner.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for the assigner constructors
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "grouper")
//	a := assigner.NewProposeAndReject(assigner.WithMetrics(collector))
func WithMetrics(collector types.MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// sufficientCapacity checks that the combined group capacity can hold every
// subject. Assigners call this once, up front, before mutating anything.
func sufficientCapacity(subjects []types.Subject, groups []types.Group) error {
	capacity := 0
	for _, group := range groups {
		capacity += group.Capacity()
	}
	if capacity < len(subjects) {
		return types.ErrTotalCapacity
	}

	return nil
}
