// Package zoneset implements the zone-set algebra engine: a canonicalized
// collection of zones closed under union, intersection, complementation,
// concatenation, transitive closure, duration restriction, and the six
// Allen-style metric modal operators used by timed-logic model checkers.
//
// A ZoneSet is an ordered sequence of zone.Zone values representing the
// union of its members. Construction via Add silently drops empty zones;
// the sequence is not deduplicated on insert, so canonicalization is
// explicit via Filter. Most algebraic operators documented here return a
// Filter-ed, bmin-sorted result, matching the antichain contract that the
// inclusion and sweep algorithms depend on.
//
// ZoneSet values and every operator in this package are value-oriented:
// operations read their arguments and return freshly allocated results,
// so a ZoneSet is safe to share across goroutines once constructed.
package zoneset
