// Package types provides core type definitions and interfaces for the Grouper library.
//
// This package contains shared types that are used across multiple packages in the
// Grouper library. By keeping these types in a separate package, we avoid import cycles
// between the main grouper package and its internal implementations.
//
// Key types:
//   - Subject: An entity that needs to be assigned to exactly one group
//   - Group: A capacity-bounded assignment destination
//   - Assignment: The subject/group mapping produced by an assigner run
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
