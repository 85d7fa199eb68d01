// Package bound implements the scalar side of the timed-zone algebra:
// lower and upper bounds carrying a numeric value and a strictness flag
// (open/closed), plus unbounded sentinels, over a pluggable numeric domain.
//
// The package provides two domain instantiations:
//
//   - Float64 — machine floating point, for fast approximate analysis.
//   - Rational — arbitrary-precision rational (backed by math/big.Rat),
//     for exact symbolic computation.
//
// A LowerBound and an UpperBound are distinct types; each may be Unbounded.
// Complement of a lower bound yields an upper bound with the dual
// strictness, and vice versa — this is how the zone and zoneset packages
// implement De Morgan complementation without touching the numeric domain.
//
// Safe for concurrent use by multiple goroutines: every bound is an
// immutable value, and every function here returns a new value.
package bound
