package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "grouper_test")

	collector.RecordAssignmentDuration("propose_and_reject", 0.002)
	collector.RecordAssignmentRun("propose_and_reject", 8, 5, true)
	collector.RecordAssignmentRun("first_come_first_served", 8, 5, false)
	collector.RecordProposalRounds(3)
	collector.RecordTransfers(6, 1)
	collector.RecordTotalDissatisfaction("propose_and_reject", 12)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	require.True(t, names["grouper_test_assigner_duration_seconds"])
	require.True(t, names["grouper_test_assigner_runs_total"])
	require.True(t, names["grouper_test_propose_and_reject_rounds"])
	require.True(t, names["grouper_test_propose_and_reject_transfers_total"])
	require.True(t, names["grouper_test_assigner_total_dissatisfaction_last"])
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	collector := NewPrometheus(prometheus.NewRegistry(), "")
	require.Equal(t, "grouper", collector.namespace)
}

func TestNopMetrics(t *testing.T) {
	collector := NewNop()

	// Must not panic.
	collector.RecordAssignmentDuration("first_come_first_served", 0.1)
	collector.RecordAssignmentRun("first_come_first_served", 1, 1, true)
	collector.RecordProposalRounds(0)
	collector.RecordTransfers(0, 0)
	collector.RecordTotalDissatisfaction("first_come_first_served", 0)
}
