package network_test

import (
	"testing"

	"github.com/tubex-go/tubex/contractor"
	"github.com/tubex-go/tubex/domain"
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/network"
)

// chainCtc enforces a[i] = a[i+1] + 1 over a 2-wide box, the link in a
// chain of scalars used to exercise repeated re-enqueueing.
type chainCtc struct{}

func (chainCtc) Arity() int { return 2 }

func (chainCtc) Contract(box interval.Vector) error {
	a, b := box[0], box[1]
	box[0] = a.Meet(b.AddScalar(1))
	box[1] = b.Meet(a.AddScalar(-1))
	return nil
}

// BenchmarkContract_Chain measures propagation throughput over a chain
// of N scalars linked pairwise, each initially wide enough to require
// several re-enqueue passes before reaching its fixed point.
func BenchmarkContract_Chain(b *testing.B) {
	const chainLen = 50

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		vals := make([]interval.Interval, chainLen)
		for j := range vals {
			vals[j] = interval.New(-1000, 1000)
		}
		vals[chainLen-1] = interval.New(0, 0)

		n := network.New()
		for j := 0; j < chainLen-1; j++ {
			da := domain.NewScalar(&vals[j])
			db := domain.NewScalar(&vals[j+1])
			rec, err := contractor.NewAlgebraic(chainCtc{}, da, db)
			if err != nil {
				b.Fatal(err)
			}
			n.Add(rec, da, db)
		}
		b.StartTimer()

		if err := n.Contract(); err != nil {
			b.Fatal(err)
		}
	}
}
