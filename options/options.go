// Package options provides configurable settings for the Voronoi sweep's
// finalize step.
//
// This package defines a functional options pattern, letting callers tune
// the finalize step's numeric tolerances without changing the Voronoi
// function's signature. Options are applied using functional parameters
// that modify a VoronoiOptions struct.
//
// # Key Features
//
//   - Floating-Point Precision Control: the Epsilon parameter widens the
//     vertex-pruning test at the clip rectangle's boundary, absorbing the
//     accumulated floating-point error of the sweep's arithmetic.
//   - Extension Distance Control: the ExtensionDistance parameter sets the
//     sweepline height (y = -ExtensionDistance) at which unfinished
//     breakpoint half-edges are closed off before clipping.
//   - Functional Options Pattern: the VoronoiOptionsFunc type provides a
//     way to apply optional configurations without requiring additional
//     parameters in function signatures.
//
// These options are applied using ApplyVoronoiOptions, which takes a
// default VoronoiOptions struct and modifies it based on the provided
// options.
package options
