// Package domain defines the core business entities for RuleForge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A detectable project kind (Spring Boot, Angular, ...)
//   - Detection: The outcome of one analysis run, with per-category attributes
//   - RuleDocument: A Cursor rule file (frontmatter + body)
//   - SecurityPriority: Coarse ordinal risk classification
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
