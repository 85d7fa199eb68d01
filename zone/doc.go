// Package zone implements the single-zone primitive layer consumed by
// package zoneset: a Zone is a convex region in (begin, end, duration)
// space, expressed as six bounds (bmin, bmax, emin, emax, dmin, dmax) with
// the invariant d = e − b.
//
// A Zone is a value type: every operation here (Intersection, Concatenation,
// DurationRestriction, …) takes its receiver and argument by value and
// returns a freshly constructed Zone. There is no shared mutable state, so
// Zone values are safe for concurrent use by multiple goroutines.
package zone
