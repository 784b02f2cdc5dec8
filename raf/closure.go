package raf

import "github.com/katalvlaran/chemnet/chem"

// Closure computes the smallest superset S of seed such that for every
// reaction in reactions, if all its reactives are in S then all its
// products are in S.
//
// Full passes over reactions are repeated until a pass adds nothing.
// Termination follows from monotonic growth of S inside the finite
// universe of seed ∪ all products.
//
// Complexity: O(passes · |reactions| · avg(|reactives| + |products|)),
// passes bounded by the number of addable expressions plus one.
func Closure(seed []chem.Expression, reactions []chem.Reaction) chem.ExprSet {
	s := chem.NewExprSet(seed...)
	for updated := true; updated; {
		updated = false
		for _, r := range reactions {
			if !anyProductMissing(s, r.Products) {
				continue
			}
			if !allIn(s, r.Reactives) {
				continue
			}
			for _, p := range r.Products {
				s.Add(p)
			}
			updated = true
		}
	}

	return s
}

// anyProductMissing reports whether at least one product is outside s.
func anyProductMissing(s chem.ExprSet, products []chem.Expression) bool {
	for _, p := range products {
		if !s.Has(p) {
			return true
		}
	}

	return false
}

// allIn reports whether every expression is a member of s
// (vacuously true for an empty slice).
func allIn(s chem.ExprSet, exprs []chem.Expression) bool {
	for _, e := range exprs {
		if !s.Has(e) {
			return false
		}
	}

	return true
}
