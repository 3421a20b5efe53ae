package network

import (
	"io"
	"sync"

	"github.com/tubex-go/tubex/contractor"
	"github.com/tubex-go/tubex/domain"
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/internal/depgraph"
	"github.com/tubex-go/tubex/internal/xlog"
	"github.com/tubex-go/tubex/tube"
)

// defaultFixedpointRatio is the minimum relative volume shrink a domain
// must see before the records sharing it are worth re-enqueuing.
const defaultFixedpointRatio = 0.005

// Network is a contraction network: a set of domain.Domain values and
// the contractor.Record entities bound over them, propagated to a
// fixed point by Contract. The zero value is not usable; construct
// with New.
type Network struct {
	mu sync.Mutex

	domains  []*domain.Domain
	names    map[*domain.Domain]string
	linked   map[*domain.Domain]bool
	records  []*contractor.Record
	touches  [][]*domain.Domain
	byDomain map[*domain.Domain][]int
	stack    []int
	inStack  []bool
	buffers  map[*tube.Tube]*dataBuffer

	fixedpointRatio float64
}

// dataBuffer accumulates AddData observations for one tube until a
// sample crosses into the next slice, at which point the just-completed
// slice is finalized. Samples outside the tube's domain go to overflow
// instead: they carry no slice to finalize yet, but are retained rather
// than discarded, in case a later sample confirms the bracket.
type dataBuffer struct {
	sliceIdx int // index of the slice currently being filled, -1 before the first sample
	samples  []dataSample
	overflow []dataSample
}

type dataSample struct {
	t, y float64
}

// New returns an empty Network with the default fixed-point ratio.
func New() *Network {
	return &Network{
		names:           make(map[*domain.Domain]string),
		linked:          make(map[*domain.Domain]bool),
		byDomain:        make(map[*domain.Domain][]int),
		buffers:         make(map[*tube.Tube]*dataBuffer),
		fixedpointRatio: defaultFixedpointRatio,
	}
}

// SetFixedpointRatio overrides the default relative-shrink threshold.
func (n *Network) SetFixedpointRatio(r float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fixedpointRatio = r
}

// SetName assigns d a display name used by WriteDot. d need not
// already be registered.
func (n *Network) SetName(d *domain.Domain, name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	canon := n.canonicalize(d)
	n.names[canon] = name
}

// canonicalize returns the registered *domain.Domain identical to d by
// storage identity (domain.Domain.Same), registering d as new if none
// matches. Callers must hold n.mu.
func (n *Network) canonicalize(d *domain.Domain) *domain.Domain {
	for _, existing := range n.domains {
		if existing.Same(d) {
			return existing
		}
	}
	n.domains = append(n.domains, d)
	n.byDomain[d] = nil
	return d
}

func (n *Network) domainLabel(d *domain.Domain) string {
	if name, ok := n.names[d]; ok && name != "" {
		return name
	}
	return d.Kind().String()
}

// NbDom returns the number of distinct registered domains.
func (n *Network) NbDom() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.domains)
}

// NbCtc returns the number of distinct registered contractor records.
func (n *Network) NbCtc() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.records)
}

// NbCtcInStack returns the number of records currently pending
// propagation.
func (n *Network) NbCtcInStack() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}

// Add registers rec as touching domains, deduplicating both by
// contractor identity (contractor.Record.Equal) over an identical
// domain set, and by domain storage identity. A newly seen KindVector
// domain automatically gets a contractor.NewComponentLink binding its
// components in index order, keeping a vector domain and its
// subvector/component views mutually consistent. Add pushes rec onto
// the propagation stack immediately: a freshly added contractor always
// gets its first chance to run.
func (n *Network) Add(rec *contractor.Record, domains ...*domain.Domain) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	canon := make([]*domain.Domain, len(domains))
	for i, d := range domains {
		canon[i] = n.canonicalize(d)
		if canon[i].Kind() == domain.KindVector {
			n.ensureComponentLinkLocked(canon[i])
		}
	}

	for i, existing := range n.records {
		if existing.Equal(rec) && sameDomainSet(n.touches[i], canon) {
			return i
		}
	}

	idx := n.addRecordLocked(rec, canon)
	xlog.Get().Debugf("network: added contractor %s over %d domain(s), stack depth %d", rec.Name(), len(canon), len(n.stack))
	return idx
}

func (n *Network) addRecordLocked(rec *contractor.Record, canon []*domain.Domain) int {
	idx := len(n.records)
	n.records = append(n.records, rec)
	n.touches = append(n.touches, canon)
	n.inStack = append(n.inStack, false)

	for _, d := range canon {
		n.byDomain[d] = append(n.byDomain[d], idx)
	}

	n.pushLocked(idx)
	return idx
}

func (n *Network) ensureComponentLinkLocked(vec *domain.Domain) {
	if n.linked[vec] {
		return
	}
	n.linked[vec] = true

	vp, ok := vec.VectorPtr()
	if !ok || len(*vp) == 0 {
		return
	}
	comps := make([]*domain.Domain, len(*vp))
	for i := range *vp {
		comps[i] = n.canonicalize(domain.NewScalar(&(*vp)[i]))
	}
	link := contractor.NewComponentLink(vec, comps...)
	n.addRecordLocked(link, append([]*domain.Domain{vec}, comps...))
}

func (n *Network) pushLocked(idx int) {
	if n.inStack[idx] {
		return
	}
	n.inStack[idx] = true
	n.stack = append(n.stack, idx)
}

// Subvector returns a domain.Domain over v's half-open [i, j) component
// range, aliasing the same backing storage as v. The returned domain is
// registered automatically the next time it is passed to Add.
func (n *Network) Subvector(v *domain.Domain, i, j int) (*domain.Domain, error) {
	vp, ok := v.VectorPtr()
	if !ok {
		return nil, domainKindError(v, domain.KindVector)
	}
	if i < 0 || j > len(*vp) || i > j {
		return nil, tube.ErrOutOfRange
	}
	sub := (*vp)[i:j]
	return domain.NewVector(&sub), nil
}

// AddData buffers the observation (t, y) for tu. Samples accumulate
// per slice; once a later sample's instant tiles a different slice
// than the ones buffered so far, the completed slice's buffer collapses
// to a tight codomain (the hull of its y values) and input/output gates
// (the first/last y value, when the first/last sample instant lands on
// that slice's boundary), and every contractor touching tu's registered
// tube domain is re-enqueued. Until a boundary is crossed, buffered
// samples have no visible effect.
//
// A sample strictly beyond tu's declared domain never errors. If it
// arrives before the last slice holds any buffered sample, it just
// waits in overflow for a wider tube. Once the last slice does hold
// buffered samples, the out-of-domain sample confirms that slice's
// bracket: it folds into the same hull-and-gate finalization an
// in-domain boundary crossing would trigger, then is discarded rather
// than retained twice.
func (n *Network) AddData(tu *tube.Tube, t float64, y float64) error {
	n.mu.Lock()
	buf, ok := n.buffers[tu]
	if !ok {
		buf = &dataBuffer{sliceIdx: -1}
		n.buffers[tu] = buf
	}

	if !tu.Domain().Contains(t) {
		if buf.sliceIdx == tu.NbSlices()-1 && len(buf.samples) > 0 {
			buf.samples = append(buf.samples, dataSample{t: t, y: y})
			n.finalizeBufferLocked(tu, buf)
			buf.samples = buf.samples[:0]
		} else {
			buf.overflow = append(buf.overflow, dataSample{t: t, y: y})
		}
		n.mu.Unlock()
		return nil
	}

	idx := tu.SliceIndexAt(t)
	if buf.sliceIdx != -1 && idx != buf.sliceIdx {
		n.finalizeBufferLocked(tu, buf)
		buf.samples = buf.samples[:0]
	}
	buf.sliceIdx = idx
	buf.samples = append(buf.samples, dataSample{t: t, y: y})
	n.mu.Unlock()
	return nil
}

// finalizeBufferLocked converts buf's accumulated samples into a tight
// codomain and gates on the slice they tile, then re-enqueues every
// record touching tu's registered domain.Domain, if any. Callers must
// hold n.mu.
func (n *Network) finalizeBufferLocked(tu *tube.Tube, buf *dataBuffer) {
	if len(buf.samples) == 0 {
		return
	}
	s := tu.SliceByIndex(buf.sliceIdx)
	td := s.TDomain()

	lo, hi := buf.samples[0].y, buf.samples[0].y
	for _, sample := range buf.samples[1:] {
		lo = minF(lo, sample.y)
		hi = maxF(hi, sample.y)
	}
	s.SetEnvelope(interval.New(lo, hi))

	first, last := buf.samples[0], buf.samples[len(buf.samples)-1]
	if first.t <= td.Lb() {
		s.SetInputGate(interval.New(first.y, first.y))
	}
	if last.t >= td.Ub() {
		s.SetOutputGate(interval.New(last.y, last.y))
	}

	tu.RefreshSynthesis()

	for _, d := range n.domains {
		if d.Kind() != domain.KindTube {
			continue
		}
		if p, _ := d.TubePtr(); p == tu {
			for _, j := range n.byDomain[d] {
				n.pushLocked(j)
			}
		}
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// TriggerAllContractors pushes every registered record back onto the
// propagation stack, e.g. after an external mutation Contract wasn't
// told about.
func (n *Network) TriggerAllContractors() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for idx := range n.records {
		n.pushLocked(idx)
	}
}

// Contract drains the propagation stack to a fixed point: pop a
// record, run it, and for every domain it touches whose volume shrank
// by at least FixedpointRatio relative to its pre-run volume, re-push
// every other record touching that domain. It returns the first error
// any record's Contract returns.
func (n *Network) Contract() error {
	logger := xlog.Get()
	for {
		n.mu.Lock()
		if len(n.stack) == 0 {
			n.mu.Unlock()
			return nil
		}
		idx := n.stack[0]
		n.stack = n.stack[1:]
		n.inStack[idx] = false
		rec := n.records[idx]
		touched := n.touches[idx]
		n.mu.Unlock()

		befores := make([]float64, len(touched))
		for i, d := range touched {
			befores[i] = d.Snapshot()
		}

		shrunk, err := rec.Contract()
		if err != nil {
			return err
		}
		if !shrunk {
			continue
		}
		logger.Debugf("network: %s shrank %d domain(s)", rec.Name(), len(touched))

		n.mu.Lock()
		for i, d := range touched {
			v0 := befores[i]
			if v0 <= 0 {
				continue
			}
			v1 := d.Volume()
			ratio := (v0 - v1) / v0
			if ratio < n.fixedpointRatio {
				continue
			}
			logger.Debugf("network: domain %s crossed fixed-point ratio (%.4f >= %.4f), re-enqueuing dependents", n.domainLabel(d), ratio, n.fixedpointRatio)
			for _, j := range n.byDomain[d] {
				if j != idx {
					n.pushLocked(j)
				}
			}
		}
		n.mu.Unlock()
	}
}

// WriteDot renders the current contractor/domain dependency graph as
// Graphviz dot.
func (n *Network) WriteDot(w io.Writer) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	g := depgraph.New()
	domID := make(map[*domain.Domain]int, len(n.domains))
	for _, d := range n.domains {
		domID[d] = g.AddDomain(n.domainLabel(d))
	}
	for i, rec := range n.records {
		ctcID := g.AddContractor(rec.Name())
		for _, d := range n.touches[i] {
			g.Link(ctcID, domID[d])
		}
	}
	_, err := g.WriteTo(w)
	return err
}

func sameDomainSet(a, b []*domain.Domain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

func domainKindError(d *domain.Domain, want domain.Kind) error {
	return &kindMismatchError{got: d.Kind(), want: want}
}

type kindMismatchError struct {
	got, want domain.Kind
}

func (e *kindMismatchError) Error() string {
	return "network: expected domain kind " + e.want.String() + ", got " + e.got.String()
}
