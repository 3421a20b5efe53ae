// Package tube implements Tube, a piecewise-constant interval-valued
// enclosure of an unknown real-valued signal over a closed time domain:
// an ordered, non-empty chain of slice.Slice whose time domains tile
// the tube's domain without gap or overlap.
//
// Tube supports sampling (inserting a new slice boundary), point and
// interval-time evaluation, inversion, integration, elementwise
// arithmetic against a constant, a trajectory.Trajectory, or another
// Tube, inflation, bisection, and an optional synthesis tree (see
// synthesis.go) caching subtree hulls and primitive-integral offsets for
// O(log n) range queries.
//
// Every mutator intersects or otherwise narrows rather than assigns
// outright — except the elementwise arithmetic family (AddAssign and
// friends), which by definition replaces each slice's enclosure with the
// result of the operation, Inflate, which widens every slice and gate,
// and RemoveGate, which merges two slices into their hull.
package tube
