// Package ctc implements the two tube-level contractors: Deriv enforces
// ẋ(t) ∈ v(t) by forward/backward sweep over a slice chain, and Eval
// enforces y ∈ x(t) ∧ ẋ ∈ v for interval t, y.
// Both are monotone (codomains and gates only shrink) and never fail:
// an inconsistent system manifests as an empty slice, which propagates
// through the whole tube via its shared gates.
package ctc
