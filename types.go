package grouper

import "github.com/arloliu/grouper/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `grouper` package, while
// still providing a convenient `grouper.Subject`, `grouper.Assignment`, etc.
// for users.
type (
	Assignment = types.Assignment
)

// Re-export interfaces from the internal types package for convenience.
type (
	Subject          = types.Subject
	Group            = types.Group
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
