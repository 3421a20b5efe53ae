// Package interval provides outward-rounded scalar and vector interval
// arithmetic: the one primitive every other package in this module builds
// on (slices, tubes, contractors, domains).
//
// An Interval is a closed real range [Lo, Hi]. Every arithmetic operation
// rounds its result outward (down for the lower bound, up for the upper
// bound via math.Nextafter) so that no operation can ever discard a
// feasible value — the soundness property the whole engine depends on.
// Division by an interval containing zero never fails: it widens to the
// unbounded interval (-Inf, +Inf) rather than panicking (see
// Interval.Div). Elementary functions never fail outside their domain
// either: Sqrt and Log keep only the part of the input inside their
// domain and return the empty interval when nothing is left.
//
// The empty interval is the canonical value with Lo = +Inf and Hi = -Inf;
// every operation is defined on it and propagates emptiness outward,
// matching the tube-level "empty slice empties the whole tube" rule
// described by the tube package.
package interval
