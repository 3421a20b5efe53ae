// Package contractor implements Record, the tagged-union contractor
// entity bound into a network.Network: a reference to an external
// algebraic contractor, one of the tube-level contractors in package
// ctc, a same-typed equality constraint, or a symbolic component-link
// edge between a vector domain and its scalar components.
//
// Go has no sum types, so Record is a struct carrying a Kind tag plus
// exactly the fields that kind uses; Contract dispatches on the tag.
// Each kind's identity/equality check is independent and returns
// explicitly — one variant's comparison never falls through into the
// next the way a missing `break` in a C-style switch would let it.
package contractor
