package network_test

import (
	"fmt"

	"github.com/tubex-go/tubex/contractor"
	"github.com/tubex-go/tubex/domain"
	"github.com/tubex-go/tubex/interval"
	"github.com/tubex-go/tubex/network"
)

// addCtc enforces a + b = c over a 3-wide box.
type addCtc struct{}

func (addCtc) Arity() int { return 3 }

func (addCtc) Contract(box interval.Vector) error {
	a, b, c := box[0], box[1], box[2]
	box[2] = c.Meet(a.Add(b))
	box[0] = a.Meet(box[2].Sub(b))
	box[1] = b.Meet(box[2].Sub(a))
	return nil
}

// ExampleNetwork_Contract registers a single algebraic contractor and
// drains the propagation queue until nothing more can shrink.
func ExampleNetwork_Contract() {
	a := interval.New(1, 1)
	b := interval.New(2, 2)
	c := interval.New(-100, 100)

	da, db, dc := domain.NewScalar(&a), domain.NewScalar(&b), domain.NewScalar(&c)

	n := network.New()
	rec, err := contractor.NewAlgebraic(addCtc{}, da, db, dc)
	if err != nil {
		fmt.Println(err)
		return
	}
	n.Add(rec, da, db, dc)

	if err := n.Contract(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: [3,3]
}
