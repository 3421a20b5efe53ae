package interval_test

import (
	"fmt"

	"github.com/tubex-go/tubex/interval"
)

// ExampleInterval_Meet shows how two overlapping intervals contract to
// their shared range.
func ExampleInterval_Meet() {
	a := interval.New(0, 5)
	b := interval.New(3, 10)
	fmt.Println(a.Meet(b))
	// Output: [3,5]
}

// ExampleInterval_Div shows division by an interval straddling zero
// widening the result to the whole real line.
func ExampleInterval_Div() {
	a := interval.New(1, 1)
	b := interval.New(-1, 1)
	fmt.Println(a.Div(b))
	// Output: [-oo,+oo]
}
