// Package robustness computes the time-robustness translation of a zone
// set around a nominal interval: the largest horizontal shift a
// constant-duration reference line can tolerate, left and right, while
// staying contained in the zone set. It is a secondary but non-trivial
// analysis built entirely on top of package zoneset's intersection and
// inclusion operators.
package robustness
