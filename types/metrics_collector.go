package types

// MetricsCollector defines methods for recording assignment metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Assigners call these methods synchronously at the end of each run.
type MetricsCollector interface {
	// RecordAssignmentDuration records the time taken by an Assign call.
	//
	// Parameters:
	//   - algorithm: Assigner name ("first_come_first_served", "propose_and_reject")
	//   - seconds: Time taken in seconds
	RecordAssignmentDuration(algorithm string, seconds float64)

	// RecordAssignmentRun records an Assign attempt (success or failure).
	//
	// Parameters:
	//   - algorithm: Assigner name
	//   - subjects: Number of subjects in the run
	//   - groups: Number of groups in the run
	//   - success: true if an Assignment was produced, false otherwise
	RecordAssignmentRun(algorithm string, subjects, groups int, success bool)

	// RecordProposalRounds records how many proposal rounds a propose-and-reject
	// run needed to converge.
	RecordProposalRounds(rounds int)

	// RecordTransfers records subject movement during a propose-and-reject run.
	//
	// Parameters:
	//   - transfers: Number of subjects moved from an overfull group
	//   - evictions: Number of members displaced by an accepted transfer
	RecordTransfers(transfers, evictions int)

	// RecordTotalDissatisfaction records the summed realized dissatisfaction of
	// the produced assignment.
	RecordTotalDissatisfaction(algorithm string, total int)
}
