// Package grouper provides a Go library for preference-based group assignment
// with capacity constraints.
//
// Grouper assigns a set of subjects (people, items) to a set of
// capacity-bounded groups according to each subject's ranked preferences.
// Subjects express preferences as dissatisfaction ratings, where lower means
// more preferred, and each group caps how many subjects it can hold. Typical
// uses are course enrollment, team formation and resource partitioning.
//
// # Quick Start
//
// Basic usage with the built-in subject and group types:
//
//	import (
//	    "github.com/arloliu/grouper"
//	    "github.com/arloliu/grouper/assigner"
//	)
//
//	subjects := []grouper.Subject{
//	    grouper.NewMapSubject(1, map[uint64]int{101: 0, 102: 1}, 2),
//	    grouper.NewMapSubject(2, map[uint64]int{101: 1, 102: 0}, 2),
//	}
//	groups := []grouper.Group{
//	    grouper.NewSimpleGroup(101, 2),
//	    grouper.NewSimpleGroup(102, 2),
//	}
//
//	result, err := assigner.NewProposeAndReject().Assign(subjects, groups)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	groupID, _ := result.SubjectGroupID(1)
//
// Custom member and group types plug in by implementing the two-method
// Subject and Group interfaces.
//
// # Assigners
//
// Two assignment algorithms are provided in the assigner package:
//
//   - ProposeAndReject: A capacity-aware variant of the Gale-Shapley
//     propose-and-reject algorithm. Every subject starts at its first choice
//     regardless of capacity; overfull groups then hand subjects over to
//     groups with room until no group is over capacity. Produces a total
//     dissatisfaction no worse than FirstComeFirstServed on the same input.
//   - FirstComeFirstServed: A greedy single pass. Each subject, in input
//     order, joins the non-full group it dislikes the least.
//
// Both assigners fail fast with ErrTotalCapacity when the combined group
// capacity cannot hold all subjects, and both are deterministic for a fixed
// input order.
//
// # Key Properties
//
//   - Capacity: No group in a returned Assignment exceeds its capacity
//   - Conservation: Every subject lands in exactly one group
//   - Purity: A run is a synchronous in-memory computation with no shared
//     state across calls
package grouper
