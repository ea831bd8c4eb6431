// Package domain defines the core entities of the htmlnotepad editor session.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: The file currently loaded for editing and its dirty flag
//   - Preferences: The user's persisted editor preferences
//   - Configuration: The versioned key-value blob written to disk
//   - RecentFiles: The bounded, de-duplicated most-recently-used list
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
