// Package rgraph: in-place structural mutators.
package rgraph

import "github.com/katalvlaran/chemnet/chem"

// RemoveFoodEdges deletes, for every reducing reaction with more than
// one reactive, the edge from its shortest reactive into the reaction.
// The shortest reactive stands in for "is food"; ties keep the earliest
// occurrence. Only the edge is removed, never the expression node.
// Complexity: O(V + Σ|reactives|).
func (g *ReactionGraph) RemoveFoodEdges() {
	for id, rec := range g.nodes {
		if rec.kind != KindReaction || rec.reaction.Type != chem.TypeReduce {
			continue
		}
		reactives := rec.reaction.Reactives
		if len(reactives) <= 1 {
			continue
		}
		food := reactives[0]
		for _, reactive := range reactives[1:] {
			if reactive.Len() < food.Len() {
				food = reactive
			}
		}
		g.removeEdge(ExpressionID(food), id)
	}
}

// RemoveSelfLoop deletes every reaction node whose reactive multiset
// equals its product multiset (no-op reactions), with all incident
// edges. Complexity: O(V + E).
func (g *ReactionGraph) RemoveSelfLoop() {
	var doomed []string
	for id, rec := range g.nodes {
		if rec.kind == KindReaction && rec.reaction.SelfLoop() {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		g.removeNode(id)
	}
}

// TrimShortFormulae deletes every expression node of structural size at
// most maxLen, with all incident edges. Complexity: O(V + E).
func (g *ReactionGraph) TrimShortFormulae(maxLen int) {
	var doomed []string
	for id, rec := range g.nodes {
		if rec.kind == KindExpression && rec.expr.Len() <= maxLen {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		g.removeNode(id)
	}
}
