// Package domain defines the core entities of the review bundle builder.
//
// This package is the hexagon's innermost layer. It has NO external
// dependencies and defines the fundamental types:
//
//   - SourceEntry: A labelled document to include in a bundle
//   - BundleConfig: Header, ordered sources and destination of one build
//   - Preset: A named, repository-relative BundleConfig
//   - SourceReadError / OutputWriteError: Failures carrying the offending path
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
