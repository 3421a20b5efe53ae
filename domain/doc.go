// Package domain implements Domain, a tagged reference to a piece of
// user-owned storage bound into a network.Network: an interval scalar,
// an interval vector, a slice, a tube, or a tube vector. Equality between
// two Domain values is by identity of the referenced storage — not by
// its current value — because a Domain names a variable's location, and
// two separately-registered domains over equal-valued but distinct
// storage must stay distinct.
package domain
