// Package registry provides the per-group bookkeeping structures used by the
// assigners.
//
// A Simple registry tracks which subjects are currently placed in one group
// and enforces the group's capacity on plain registration. A Proposal
// registry composes a Simple registry with dissatisfaction-ordered membership
// and the propose/transfer protocol that drives the propose-and-reject
// algorithm. Offers are the comparable descriptors exchanged during a
// proposal round.
package registry
