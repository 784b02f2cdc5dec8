package raf

import (
	"github.com/katalvlaran/chemnet/chem"
	"github.com/katalvlaran/chemnet/rgraph"
)

// Compute returns the stabilized RAF set of g's reducing reactions,
// given the food expressions, ordered by reaction key.
//
// Starting from all reducing reactions, a candidate is kept through each
// pruning round iff:
//
//   - every reactive is in the food closure or among the candidates'
//     products ("all reactives producible"; vacuously true with zero
//     reactives), and
//   - at least one product is consumed by some candidate and is not in
//     the food closure ("non-trivial product"; never true with zero
//     products).
//
// Rounds repeat until the candidate set is unchanged. An empty reducing
// set yields an empty RAF. The only error is ErrGraphNil.
func Compute(g *rgraph.ReactionGraph, food []chem.Expression, opts ...Option) ([]chem.Reaction, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	reductions := g.ReducingReactions()
	foodClosure := Closure(food, reductions)

	raf := chem.NewReactionSet(reductions...)
	for {
		allReactives := make(chem.ExprSet)
		allProducts := make(chem.ExprSet)
		for _, r := range raf {
			for _, x := range r.Reactives {
				allReactives.Add(x)
			}
			for _, p := range r.Products {
				allProducts.Add(p)
			}
		}

		next := make(chem.ReactionSet, len(raf))
		for key, r := range raf {
			if reactivesProducible(r, foodClosure, allProducts) &&
				productNonTrivial(r, foodClosure, allReactives) {
				next[key] = r
			}
		}
		if next.Equal(raf) {
			break
		}
		raf = next
	}

	result := raf.Sorted()
	reportConsistency(o, result, chem.NewExprSet(food...))

	return result, nil
}

// reactivesProducible reports whether every reactive of r is in the food
// closure or produced by the candidate set.
func reactivesProducible(r chem.Reaction, foodClosure, allProducts chem.ExprSet) bool {
	for _, x := range r.Reactives {
		if !foodClosure.Has(x) && !allProducts.Has(x) {
			return false
		}
	}

	return true
}

// productNonTrivial reports whether some product of r is consumed by the
// candidate set without being plain food.
func productNonTrivial(r chem.Reaction, foodClosure, allReactives chem.ExprSet) bool {
	for _, p := range r.Products {
		if allReactives.Has(p) && !foodClosure.Has(p) {
			return true
		}
	}

	return false
}

// reportConsistency checks, after the fixed point, that each reactive of
// each member is food or produced by some member, logging the outcome.
// A violation is a diagnostic only; the result stands.
func reportConsistency(o Options, result []chem.Reaction, food chem.ExprSet) {
	for _, r := range result {
	reactives:
		for _, p := range r.Reactives {
			if food.Has(p) {
				o.Logger.Debug("reactive in food set", "expr", p.String())
				continue
			}
			for _, r2 := range result {
				for _, prod := range r2.Products {
					if prod == p {
						o.Logger.Info("reactive generated within RAF",
							"expr", p.String(), "by", r2.String())
						continue reactives
					}
				}
			}
			o.Logger.Error("reactive not generated by RAF", "expr", p.String(), "reaction", r.String())
		}
	}
}
