// Package slice implements Slice, one time-interval cell of a tube.Tube:
// a time domain, a codomain enclosure over its open interior, and two
// boundary Gates shared with its neighbours.
//
// A Gate is modelled as a single heap-allocated value referenced by both
// of the slices on either side of it, rather than as two copies kept in
// sync — so neighbouring slices sharing a boundary stay coherent by
// construction, with no propagation step to remember.
package slice
