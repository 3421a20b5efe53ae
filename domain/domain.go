package domain

import (
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/slice"
	"github.com/tubex-go/tubex/tube"
)

// Kind tags which storage a Domain references.
type Kind int

const (
	// KindScalar wraps a *interval.Interval.
	KindScalar Kind = iota
	// KindVector wraps a *interval.Vector.
	KindVector
	// KindSlice wraps a *slice.Slice.
	KindSlice
	// KindTube wraps a *tube.Tube.
	KindTube
	// KindTubeVector wraps a *[]*tube.Tube.
	KindTubeVector
)

// String renders k for diagnostics and dot export labels.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindSlice:
		return "slice"
	case KindTube:
		return "tube"
	case KindTubeVector:
		return "tube_vector"
	default:
		return "unknown"
	}
}

// Domain is a non-owning reference to user-visible storage, plus a
// snapshot of the last volume network.Network observed for it. The
// caller that owns the underlying storage must outlive the Domain.
type Domain struct {
	kind Kind
	ptr  any
	name string

	lastVolume float64
}

// NewScalar wraps an *interval.Interval.
func NewScalar(v *interval.Interval) *Domain { return &Domain{kind: KindScalar, ptr: v} }

// NewVector wraps an *interval.Vector.
func NewVector(v *interval.Vector) *Domain { return &Domain{kind: KindVector, ptr: v} }

// NewSlice wraps a *slice.Slice.
func NewSlice(s *slice.Slice) *Domain { return &Domain{kind: KindSlice, ptr: s} }

// NewTube wraps a *tube.Tube.
func NewTube(t *tube.Tube) *Domain { return &Domain{kind: KindTube, ptr: t} }

// NewTubeVector wraps a *[]*tube.Tube: a pointer to the slice header, so
// that two Domain values over the same backing vector compare equal by
// identity (a bare []*tube.Tube cannot be compared or used as a map key).
func NewTubeVector(v *[]*tube.Tube) *Domain { return &Domain{kind: KindTubeVector, ptr: v} }

// Kind reports which storage this Domain references.
func (d *Domain) Kind() Kind { return d.kind }

// Same reports whether d and other reference the same storage: identity
// equality, not a value comparison.
func (d *Domain) Same(other *Domain) bool {
	if other == nil {
		return false
	}
	return d.kind == other.kind && d.ptr == other.ptr
}

// ScalarPtr returns the wrapped *interval.Interval and true if d is a
// KindScalar domain, or (nil, false) otherwise.
func (d *Domain) ScalarPtr() (*interval.Interval, bool) {
	p, ok := d.ptr.(*interval.Interval)
	return p, ok
}

// VectorPtr returns the wrapped *interval.Vector and true if d is a
// KindVector domain, or (nil, false) otherwise.
func (d *Domain) VectorPtr() (*interval.Vector, bool) {
	p, ok := d.ptr.(*interval.Vector)
	return p, ok
}

// SlicePtr returns the wrapped *slice.Slice and true if d is a
// KindSlice domain, or (nil, false) otherwise.
func (d *Domain) SlicePtr() (*slice.Slice, bool) {
	p, ok := d.ptr.(*slice.Slice)
	return p, ok
}

// TubePtr returns the wrapped *tube.Tube and true if d is a KindTube
// domain, or (nil, false) otherwise.
func (d *Domain) TubePtr() (*tube.Tube, bool) {
	p, ok := d.ptr.(*tube.Tube)
	return p, ok
}

// TubeVectorPtr returns the wrapped *[]*tube.Tube and true if d is a
// KindTubeVector domain, or (nil, false) otherwise.
func (d *Domain) TubeVectorPtr() (*[]*tube.Tube, bool) {
	p, ok := d.ptr.(*[]*tube.Tube)
	return p, ok
}

// Name returns the display name set by SetName, or "" if none was set.
func (d *Domain) Name() string { return d.name }

// SetName assigns a display name, used by dot export.
func (d *Domain) SetName(name string) { d.name = name }

// Volume computes the current domain-volume metric:
// diameter for a scalar, sum of component diameters for a vector, sum
// of slice diameters weighted by slice time length for a tube (and the
// sum of that across a tube vector). A Slice domain uses its codomain's
// diameter, mirroring the scalar case.
func (d *Domain) Volume() float64 {
	switch d.kind {
	case KindScalar:
		return d.ptr.(*interval.Interval).Diam()
	case KindVector:
		return d.ptr.(*interval.Vector).Volume()
	case KindSlice:
		return d.ptr.(*slice.Slice).Codomain().Diam()
	case KindTube:
		return d.ptr.(*tube.Tube).Volume()
	case KindTubeVector:
		var total float64
		for _, t := range *d.ptr.(*[]*tube.Tube) {
			total += t.Volume()
		}
		return total
	default:
		return 0
	}
}

// Snapshot records the current volume, returning it for the caller to
// compare against after a contractor runs (network.Network's
// propagation loop does exactly this).
func (d *Domain) Snapshot() float64 {
	d.lastVolume = d.Volume()
	return d.lastVolume
}

// LastVolume returns the volume recorded by the most recent Snapshot.
func (d *Domain) LastVolume() float64 { return d.lastVolume }
