// Package assigner provides the built-in assignment algorithm implementations.
//
// An assigner distributes subjects across capacity-bounded groups according
// to the subjects' dissatisfaction ratings. The package includes two
// assigners:
//
//   - ProposeAndReject: Capacity-aware variant of the Gale-Shapley
//     propose-and-reject algorithm (recommended)
//   - FirstComeFirstServed: Greedy single-pass assignment
//
// # Assigner Selection Guide
//
// ProposeAndReject:
//   - Use when overall preference satisfaction matters
//   - Total dissatisfaction never exceeds what FirstComeFirstServed produces
//   - Subjects start at their first choice; overfull groups then hand
//     subjects over to groups with room until every group fits its capacity
//
// FirstComeFirstServed:
//   - Use when input order is itself the priority (earlier subjects win)
//   - Single pass, no rebalancing
//
// Both assigners validate the total capacity upfront and fail with
// types.ErrTotalCapacity before doing any work when the groups cannot hold
// all subjects. Both are deterministic for a fixed subject and group order.
//
// Custom algorithms can be implemented by satisfying the Assigner interface.
package assigner
