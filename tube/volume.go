package tube

// Volume returns the sum of each slice's codomain diameter weighted by
// its time-domain length — the tube-domain volume metric used by
// network.Network to judge contraction ratio.
func (tu *Tube) Volume() float64 {
	var total float64
	for s := tu.head; s != nil; s = s.Next() {
		total += s.TDomain().Diam() * s.Codomain().Diam()
	}
	return total
}
