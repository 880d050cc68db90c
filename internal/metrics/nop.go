package metrics

import "github.com/arloliu/grouper/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAssignmentDuration discards the duration metric.
func (n *NopMetrics) RecordAssignmentDuration(_ /* algorithm */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordAssignmentRun discards the run metric.
func (n *NopMetrics) RecordAssignmentRun(_ /* algorithm */ string, _ /* subjects */, _ /* groups */ int, _ /* success */ bool) {
	// No-op
}

// RecordProposalRounds discards the rounds metric.
func (n *NopMetrics) RecordProposalRounds(_ /* rounds */ int) {
	// No-op
}

// RecordTransfers discards the transfer metrics.
func (n *NopMetrics) RecordTransfers(_ /* transfers */, _ /* evictions */ int) {
	// No-op
}

// RecordTotalDissatisfaction discards the dissatisfaction metric.
func (n *NopMetrics) RecordTotalDissatisfaction(_ /* algorithm */ string, _ /* total */ int) {
	// No-op
}
