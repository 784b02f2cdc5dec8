// Package rgraph: plain-text reporting helpers.
package rgraph

import (
	"fmt"
	"io"
	"sort"
)

// WriteInOrder writes every reducing reaction to w, one per line in
// chemical notation, sorted ascending by (total reactive+product size,
// total reactive size, total product size); remaining ties order by
// reaction key. A pure presentation helper.
func (g *ReactionGraph) WriteInOrder(w io.Writer) error {
	reactions := g.ReducingReactions()
	sort.SliceStable(reactions, func(i, j int) bool {
		ri, rj := reactions[i], reactions[j]
		ti := ri.ReactivesLen() + ri.ProductsLen()
		tj := rj.ReactivesLen() + rj.ProductsLen()
		if ti != tj {
			return ti < tj
		}
		if ri.ReactivesLen() != rj.ReactivesLen() {
			return ri.ReactivesLen() < rj.ReactivesLen()
		}
		if ri.ProductsLen() != rj.ProductsLen() {
			return ri.ProductsLen() < rj.ProductsLen()
		}

		return ri.Key() < rj.Key()
	})
	for _, r := range reactions {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("rgraph: write report: %w", err)
		}
	}

	return nil
}
