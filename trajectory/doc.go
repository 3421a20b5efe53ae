// Package trajectory implements Trajectory, a single point-valued
// reference signal over a time domain — either tabulated (a finite map of
// instants to values, linearly interpolated between them) or symbolic (a
// function of t).
//
// Trajectory is the "exact" counterpart to tube.Tube's interval
// enclosure: it states the soundness property under test (for every
// trajectory satisfying every registered constraint exactly, each
// domain still contains its value) and seeds tubes from lower/upper
// bounding signals.
package trajectory
