// Package numeric provides floating-point comparison helpers with epsilon
// tolerance, used by the sweep's finalize step when deciding whether a
// vertex produced by clipping falls close enough to the bounding
// rectangle to keep.
//
// # Features
//
//   - Floating-Point Comparisons: Functions such as FloatEquals,
//     FloatGreaterThan, FloatLessThan, and their variants provide
//     robust comparisons between floating-point numbers using an epsilon
//     threshold to mitigate precision errors.
//
//   - Precision Adjustment: The SnapToEpsilon function allows
//     floating-point numbers to be snapped to the nearest whole number if
//     they are within an acceptable tolerance, reducing small precision
//     artifacts.
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
