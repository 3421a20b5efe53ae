package tube

import "github.com/tubex-go/tubex/interval"

// Invert returns the smallest interval T ⊆ search such that, for every
// slice whose codomain meets y, that slice's t_domain ∩ search is
// contained in T. It returns the empty interval if no slice's codomain
// meets y within search.
func (tu *Tube) Invert(y, search interval.Interval) interval.Interval {
	result := interval.Empty()
	for s := tu.head; s != nil; s = s.Next() {
		td := s.TDomain().Meet(search)
		if td.IsEmpty() {
			continue
		}
		if s.Codomain().Intersects(y) {
			result = result.Hull(td)
		}
	}
	return result
}

// InvertSet returns every maximal connected component of the set
// described by Invert, rather than their single enclosing hull. Two
// qualifying slices merge into one component only when their t_domains
// overlap over more than a single instant; since slices tile the tube
// without overlap, adjacent qualifying slices that merely touch at a shared
// boundary stay distinct components: three slices all meeting y still
// yield three separate pre-images, not one.
func (tu *Tube) InvertSet(y, search interval.Interval) []interval.Interval {
	var components []interval.Interval
	var current interval.Interval = interval.Empty()

	for s := tu.head; s != nil; s = s.Next() {
		td := s.TDomain().Meet(search)
		if td.IsEmpty() || !s.Codomain().Intersects(y) {
			if !current.IsEmpty() {
				components = append(components, current)
				current = interval.Empty()
			}
			continue
		}
		if !current.IsEmpty() && current.Ub() > td.Lb() {
			current = current.Hull(td)
		} else {
			if !current.IsEmpty() {
				components = append(components, current)
			}
			current = td
		}
	}
	if !current.IsEmpty() {
		components = append(components, current)
	}
	return components
}
