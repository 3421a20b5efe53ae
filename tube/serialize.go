package tube

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/trajectory"
)

// binary tube format: magic "TUBE", version:u16, n_slices:u32,
// t0:f64, tf:f64, then n slice blocks (lb,ub:f64 for codomain), then n+1
// gate blocks (lb,ub:f64), then an optional trailing trajectory block
// (n_points:u32, then (t,y):f64 pairs). Empty intervals encode as
// (+Inf, -Inf). Little-endian throughout.
const (
	serializeMagic   = "TUBE"
	serializeVersion = uint16(1)
)

// ErrBadMagic indicates the byte stream does not start with the tube
// format's magic header.
var ErrBadMagic = errors.New("tube: not a tube serialization stream (bad magic)")

// ErrUnsupportedVersion indicates a tube stream whose version this
// package does not know how to decode.
var ErrUnsupportedVersion = errors.New("tube: unsupported serialization version")

// WriteTo serializes tu to w in the binary tube format. It satisfies
// io.WriterTo.
func (tu *Tube) WriteTo(w io.Writer) (int64, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(serializeMagic)
	binary.Write(buf, binary.LittleEndian, serializeVersion)
	binary.Write(buf, binary.LittleEndian, uint32(tu.n))
	binary.Write(buf, binary.LittleEndian, tu.domain.Lb())
	binary.Write(buf, binary.LittleEndian, tu.domain.Ub())

	for s := tu.head; s != nil; s = s.Next() {
		writeInterval(buf, s.Codomain())
	}
	if tu.head != nil {
		writeInterval(buf, tu.head.InputGate())
		for s := tu.head; s != nil; s = s.Next() {
			writeInterval(buf, s.OutputGate())
		}
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// WriteTrajectoryTo serializes tu followed by the trailing tabulated
// trajectory block tr describes (the optional trailing trajectory).
func (tu *Tube) WriteTrajectoryTo(w io.Writer, tr *trajectory.Trajectory) (int64, error) {
	n1, err := tu.WriteTo(w)
	if err != nil {
		return n1, err
	}

	buf := new(bytes.Buffer)
	times := tr.SampledTimes()
	binary.Write(buf, binary.LittleEndian, uint32(len(times)))
	for _, t := range times {
		binary.Write(buf, binary.LittleEndian, t)
		binary.Write(buf, binary.LittleEndian, tr.At(t))
	}
	n2, err := w.Write(buf.Bytes())
	return n1 + int64(n2), err
}

func writeInterval(buf *bytes.Buffer, v interval.Interval) {
	if v.IsEmpty() {
		binary.Write(buf, binary.LittleEndian, math.Inf(1))
		binary.Write(buf, binary.LittleEndian, math.Inf(-1))
		return
	}
	binary.Write(buf, binary.LittleEndian, v.Lb())
	binary.Write(buf, binary.LittleEndian, v.Ub())
}

func readInterval(r io.Reader) (interval.Interval, error) {
	var lo, hi float64
	if err := binary.Read(r, binary.LittleEndian, &lo); err != nil {
		return interval.Empty(), err
	}
	if err := binary.Read(r, binary.LittleEndian, &hi); err != nil {
		return interval.Empty(), err
	}
	if math.IsInf(lo, 1) && math.IsInf(hi, -1) {
		return interval.Empty(), nil
	}
	return interval.New(lo, hi), nil
}

// ReadFrom decodes a Tube from r in the binary tube format, replacing
// tu's contents. It satisfies io.ReaderFrom.
func (tu *Tube) ReadFrom(r io.Reader) (int64, error) {
	counter := &countingReader{r: r}

	magic := make([]byte, 4)
	if _, err := io.ReadFull(counter, magic); err != nil {
		return counter.n, err
	}
	if string(magic) != serializeMagic {
		return counter.n, ErrBadMagic
	}

	var version uint16
	if err := binary.Read(counter, binary.LittleEndian, &version); err != nil {
		return counter.n, err
	}
	if version != serializeVersion {
		return counter.n, ErrUnsupportedVersion
	}

	var nSlices uint32
	if err := binary.Read(counter, binary.LittleEndian, &nSlices); err != nil {
		return counter.n, err
	}
	var t0, tf float64
	if err := binary.Read(counter, binary.LittleEndian, &t0); err != nil {
		return counter.n, err
	}
	if err := binary.Read(counter, binary.LittleEndian, &tf); err != nil {
		return counter.n, err
	}

	n := int(nSlices)
	codomains := make([]interval.Interval, n)
	for i := range codomains {
		v, err := readInterval(counter)
		if err != nil {
			return counter.n, err
		}
		codomains[i] = v
	}
	gateValues := make([]interval.Interval, n+1)
	for i := range gateValues {
		v, err := readInterval(counter)
		if err != nil {
			return counter.n, err
		}
		gateValues[i] = v
	}

	if tf <= t0 || n < 1 {
		return counter.n, ErrInvalidDomain
	}
	bounds := make([]float64, n+1)
	step := (tf - t0) / float64(n)
	for i := 0; i < n; i++ {
		bounds[i] = t0 + float64(i)*step
	}
	bounds[n] = tf

	decoded := &Tube{domain: interval.New(t0, tf)}
	decoded.buildChain(bounds, func(i int, _ interval.Interval) interval.Interval { return codomains[i] })
	i := 0
	decoded.head.InputGatePtr().Replace(gateValues[0])
	for s := decoded.head; s != nil; s = s.Next() {
		s.OutputGatePtr().Replace(gateValues[i+1])
		i++
	}

	*tu = *decoded
	return counter.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
