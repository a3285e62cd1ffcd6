// Package domain defines the core entities of the wikiplain converter.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageRecord: A main-namespace page lifted out of the dump
//   - ConvertedRecord: A page after plain-text extraction
//   - ConversionSettings: Parameters of a single conversion run
//   - Run: A recorded conversion run
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
