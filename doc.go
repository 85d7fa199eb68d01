// Package zonealgebra is a symbolic algebra over timed zones: convex
// regions of (begin, end, duration) space used by timed-logic model
// checkers and robustness analyzers to evaluate MCL/MITL formulas over
// dense-time traces.
//
// 🚀 What is zonealgebra?
//
//	A value-oriented, generics-based library that brings together:
//
//	  • Zone primitives: six-bound regions with exact or floating arithmetic
//	  • Set algebra: union, intersection, complementation, concatenation,
//	    transitive closure, duration restriction — all antichain-canonical
//	  • Metric modal operators: the six Allen-style diamond/box pairs
//	  • Robustness: left/right translation slack of a nominal interval
//
// ✨ Why choose zonealgebra?
//
//   - Exact when it matters — an arbitrary-precision rational domain
//     (math/big) alongside fast float64
//   - Safe by construction — every operation reads its inputs and
//     returns a fresh value, so concurrent use needs no locks
//   - Canonical results — algebraic operators return bmin-sorted
//     inclusion antichains, ready for the sweep-based inclusion test
//
// Everything is organized under four subpackages, leaves first:
//
//	bound/      — lower/upper bounds with strictness flags and unbounded
//	              sentinels, over a pluggable numeric domain
//	zone/       — the single-zone primitive: six bounds, intersection,
//	              concatenation, inclusion, duration restriction
//	zoneset/    — the zone-set algebra engine (the core of the library)
//	robustness/ — time-robustness translation of a zone set around a
//	              nominal interval
//
// Quick example:
//
//	s := zoneset.New[bound.Float64]().AddFromPeriod(0, 2)
//	t := zoneset.New[bound.Float64]().AddFromPeriod(2, 5)
//	c := zoneset.Concatenation(s, t) // {period(0, 5)}
//
//	go get github.com/katalvlaran/zonealgebra
package zonealgebra
