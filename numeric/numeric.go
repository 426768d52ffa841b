// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues in the
// polygon clipping engine.
//
// # Overview
//
// The numeric package contains a small set of helper functions for common
// numerical operations that arise in computational geometry: floating-point
// equality with epsilon tolerance, and interval clamping.
//
// # Features
//
//   - Floating-Point Equality: FloatEquals compares two floating-point
//     numbers using an epsilon threshold to mitigate precision errors.
//
//   - Clamping: The Clamp function restricts a value to a closed interval,
//     which the segment intersection predicate uses to bound numerical
//     drift.
//
// # Usage
//
// This package is particularly useful in scenarios where direct equality
// checks for floating-point numbers are unreliable due to the inherent
// imprecision of floating-point arithmetic.
package numeric
