package contractor

import (
	"errors"
	"fmt"

	"github.com/tubex-go/tubex/domain"
	"github.com/tubex-go/tubex/interval"
)

// Sentinel errors returned by the New* constructors and Contract.
var (
	ErrArityMismatch           = errors.New("contractor: domain count does not match contractor arity")
	ErrDomainKindMismatch      = errors.New("contractor: domain kind does not match expected kind")
	ErrEqualityKindMismatch    = errors.New("contractor: equality operands must share a domain kind")
	ErrUnsupportedEqualityKind = errors.New("contractor: equality is not supported for this domain kind")
	ErrUnknownKind             = errors.New("contractor: record has an unrecognized kind")
)

// Kind tags which variant a Record holds.
type Kind int

const (
	// KindAlgebraic wraps an Algebraic contractor over scalar domains.
	KindAlgebraic Kind = iota
	// KindTubeLevel wraps a ctc.Deriv, ctc.Eval, or other
	// TubeLevelContractor.
	KindTubeLevel
	// KindEquality enforces two same-kind domains hold the same value.
	KindEquality
	// KindComponentLink enforces a vector domain's components equal a
	// matching set of scalar domains.
	KindComponentLink
)

// String renders k for diagnostics and dot export labels.
func (k Kind) String() string {
	switch k {
	case KindAlgebraic:
		return "algebraic"
	case KindTubeLevel:
		return "tube_level"
	case KindEquality:
		return "equality"
	case KindComponentLink:
		return "component_link"
	default:
		return "unknown"
	}
}

// Algebraic is a classical (non-tube) interval contractor acting
// in-place on a fixed-arity box.
type Algebraic interface {
	Contract(box interval.Vector) error
	Arity() int
}

// TubeLevelContractor is satisfied by ctc.Deriv and ctc.Eval: it
// contracts its own bound domains and reports whether anything shrank.
type TubeLevelContractor interface {
	Contract() (bool, error)
	Name() string
}

// Record is the tagged-union contractor entity a network.Network
// schedules: an Algebraic wrapper, a tube-level contractor, an equality
// link between two same-kind domains, or a component link between a
// vector domain and its scalar components. Go has no sum types, so
// Record carries a Kind tag plus only the fields that kind uses;
// Contract and Equal both dispatch on the tag with an explicit,
// independent return per case.
type Record struct {
	kind Kind

	alg     Algebraic
	domains []*domain.Domain

	tubeCtc TubeLevelContractor

	a, b *domain.Domain

	vector     *domain.Domain
	components []*domain.Domain
}

// NewAlgebraic binds alg to domains, which must number alg.Arity() and
// all be scalar domains (checked lazily, on first Contract).
func NewAlgebraic(alg Algebraic, domains ...*domain.Domain) (*Record, error) {
	if len(domains) != alg.Arity() {
		return nil, ErrArityMismatch
	}
	bound := make([]*domain.Domain, len(domains))
	copy(bound, domains)
	return &Record{kind: KindAlgebraic, alg: alg, domains: bound}, nil
}

// NewTubeLevel wraps a TubeLevelContractor (ctc.Deriv, ctc.Eval, ...).
func NewTubeLevel(c TubeLevelContractor) *Record {
	return &Record{kind: KindTubeLevel, tubeCtc: c}
}

// NewEquality binds a and b, which must be the same domain.Kind.
func NewEquality(a, b *domain.Domain) (*Record, error) {
	if a.Kind() != b.Kind() {
		return nil, ErrEqualityKindMismatch
	}
	return &Record{kind: KindEquality, a: a, b: b}, nil
}

// NewComponentLink binds vector (a KindVector domain) to components,
// one scalar domain per vector coordinate in index order.
func NewComponentLink(vector *domain.Domain, components ...*domain.Domain) *Record {
	bound := make([]*domain.Domain, len(components))
	copy(bound, components)
	return &Record{kind: KindComponentLink, vector: vector, components: bound}
}

// Kind reports which variant r holds.
func (r *Record) Kind() Kind { return r.kind }

// Domains returns the operand domains this Record touches, for
// network.Network's propagation bookkeeping. A KindTubeLevel record
// returns nil: its domains are registered separately by whoever calls
// network.Add, since TubeLevelContractor exposes no domain accessor.
func (r *Record) Domains() []*domain.Domain {
	switch r.kind {
	case KindAlgebraic:
		return r.domains
	case KindEquality:
		return []*domain.Domain{r.a, r.b}
	case KindComponentLink:
		out := make([]*domain.Domain, 0, len(r.components)+1)
		out = append(out, r.vector)
		out = append(out, r.components...)
		return out
	case KindTubeLevel:
		return nil
	default:
		return nil
	}
}

// Name returns a label for this record: the canonical LaTeX name for a
// tube-level contractor, "=" for equality, "" for a component link
// (anonymous/structural by nature), or alg's dynamic type for an
// algebraic contractor, which carries no Name method of its own.
func (r *Record) Name() string {
	switch r.kind {
	case KindAlgebraic:
		return fmt.Sprintf("%T", r.alg)
	case KindTubeLevel:
		return r.tubeCtc.Name()
	case KindEquality:
		return "="
	case KindComponentLink:
		return ""
	default:
		return ""
	}
}

// Equal reports whether r and other are the same contractor binding:
// same kind, same wrapped contractor identity, same operand domains
// (by domain.Domain.Same, i.e. by storage identity). Each case returns
// explicitly; none falls through into the next.
func (r *Record) Equal(other *Record) bool {
	if other == nil || r.kind != other.kind {
		return false
	}
	switch r.kind {
	case KindAlgebraic:
		if r.alg != other.alg || len(r.domains) != len(other.domains) {
			return false
		}
		for i := range r.domains {
			if !r.domains[i].Same(other.domains[i]) {
				return false
			}
		}
		return true
	case KindTubeLevel:
		return r.tubeCtc == other.tubeCtc
	case KindEquality:
		if r.a.Same(other.a) && r.b.Same(other.b) {
			return true
		}
		if r.a.Same(other.b) && r.b.Same(other.a) {
			return true
		}
		return false
	case KindComponentLink:
		if !r.vector.Same(other.vector) || len(r.components) != len(other.components) {
			return false
		}
		for i := range r.components {
			if !r.components[i].Same(other.components[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Contract executes the wrapped contractor once, dispatching on kind,
// and reports whether any bound domain's value shrank.
func (r *Record) Contract() (bool, error) {
	switch r.kind {
	case KindAlgebraic:
		return r.contractAlgebraic()
	case KindTubeLevel:
		return r.tubeCtc.Contract()
	case KindEquality:
		return r.contractEquality()
	case KindComponentLink:
		return r.contractComponentLink()
	default:
		return false, ErrUnknownKind
	}
}

func (r *Record) contractAlgebraic() (bool, error) {
	box := make(interval.Vector, len(r.domains))
	ptrs := make([]*interval.Interval, len(r.domains))
	for i, d := range r.domains {
		p, ok := d.ScalarPtr()
		if !ok {
			return false, ErrDomainKindMismatch
		}
		ptrs[i] = p
		box[i] = *p
	}
	before := box.Clone()
	if err := r.alg.Contract(box); err != nil {
		return false, err
	}
	shrunk := false
	for i, p := range ptrs {
		if !box[i].Equal(before[i]) {
			shrunk = true
		}
		*p = box[i]
	}
	return shrunk, nil
}

func (r *Record) contractEquality() (bool, error) {
	if pa, ok := r.a.ScalarPtr(); ok {
		pb, _ := r.b.ScalarPtr()
		m := pa.Meet(*pb)
		shrunk := !m.Equal(*pa) || !m.Equal(*pb)
		*pa, *pb = m, m
		return shrunk, nil
	}
	if va, ok := r.a.VectorPtr(); ok {
		vb, _ := r.b.VectorPtr()
		m := va.Meet(*vb)
		shrunk := !m.Equal(*va) || !m.Equal(*vb)
		*va, *vb = m, m
		return shrunk, nil
	}
	if ta, ok := r.a.TubePtr(); ok {
		tb, _ := r.b.TubePtr()
		beforeA, beforeB := r.a.Volume(), r.b.Volume()
		if err := ta.MeetTube(tb); err != nil {
			return false, err
		}
		if err := tb.MeetTube(ta); err != nil {
			return false, err
		}
		shrunk := r.a.Volume() != beforeA || r.b.Volume() != beforeB
		return shrunk, nil
	}
	return false, ErrUnsupportedEqualityKind
}

func (r *Record) contractComponentLink() (bool, error) {
	vp, ok := r.vector.VectorPtr()
	if !ok {
		return false, ErrDomainKindMismatch
	}
	if len(*vp) != len(r.components) {
		return false, ErrArityMismatch
	}
	shrunk := false
	for i, c := range r.components {
		cp, ok := c.ScalarPtr()
		if !ok {
			return false, ErrDomainKindMismatch
		}
		m := (*vp)[i].Meet(*cp)
		if !m.Equal((*vp)[i]) || !m.Equal(*cp) {
			shrunk = true
		}
		(*vp)[i] = m
		*cp = m
	}
	return shrunk, nil
}
