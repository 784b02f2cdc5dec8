// Package rgraph: pure subgraph filters.
//
// Every filter returns a brand-new ReactionGraph: retained node records
// are copied and adjacency is rebuilt, so the derived graph shares no
// mutable state with its source. An empty predicate match yields an
// empty graph, never an error.
package rgraph

import "github.com/katalvlaran/chemnet/chem"

// nodeInduced builds the induced subgraph on the nodes accepted by keep:
// retained nodes plus every edge whose both endpoints are retained.
// Complexity: O(V + E).
func (g *ReactionGraph) nodeInduced(keep func(id string, rec *node) bool) *ReactionGraph {
	out := New()
	for id, rec := range g.nodes {
		if keep(id, rec) {
			out.nodes[id] = rec.clone()
		}
	}
	for from, tos := range g.succ {
		if _, ok := out.nodes[from]; !ok {
			continue
		}
		for to, substrate := range tos {
			if _, ok := out.nodes[to]; ok {
				out.setEdge(from, to, substrate)
			}
		}
	}

	return out
}

// MinimallyReoccurring returns the subgraph keeping every expression
// node and every reaction node observed at least minOccurrences times.
func (g *ReactionGraph) MinimallyReoccurring(minOccurrences int) *ReactionGraph {
	return g.nodeInduced(func(_ string, rec *node) bool {
		return rec.kind == KindExpression || rec.occurrences >= minOccurrences
	})
}

// ReductionSubgraph returns the subgraph keeping every expression node
// and every reaction node of type chem.TypeReduce.
func (g *ReactionGraph) ReductionSubgraph() *ReactionGraph {
	return g.nodeInduced(func(_ string, rec *node) bool {
		return rec.kind == KindExpression || rec.reaction.Type == chem.TypeReduce
	})
}

// LongerFormulae returns the subgraph keeping every reaction node and
// every expression node of structural size at least minLength.
func (g *ReactionGraph) LongerFormulae(minLength int) *ReactionGraph {
	return g.nodeInduced(func(_ string, rec *node) bool {
		return rec.kind != KindExpression || rec.expr.Len() >= minLength
	})
}

// WithoutSubstrates returns the edge-induced subgraph on non-substrate
// edges: only edges with a false substrate flag survive, together with
// their endpoints. Nodes left without any surviving edge are dropped.
func (g *ReactionGraph) WithoutSubstrates() *ReactionGraph {
	out := New()
	for from, tos := range g.succ {
		for to, substrate := range tos {
			if substrate {
				continue
			}
			if _, ok := out.nodes[from]; !ok {
				out.nodes[from] = g.nodes[from].clone()
			}
			if _, ok := out.nodes[to]; !ok {
				out.nodes[to] = g.nodes[to].clone()
			}
			out.setEdge(from, to, false)
		}
	}

	return out
}

// FromReactions returns the induced subgraph on the union of the given
// reactions' nodes and all expression nodes of the graph — not just the
// given reactions' neighbors. Reactions absent from the graph are
// ignored.
func (g *ReactionGraph) FromReactions(reactions []chem.Reaction) *ReactionGraph {
	wanted := make(map[string]struct{}, len(reactions))
	for _, r := range reactions {
		wanted[ReactionID(r)] = struct{}{}
	}

	return g.nodeInduced(func(id string, rec *node) bool {
		if rec.kind == KindExpression {
			return true
		}
		_, ok := wanted[id]

		return ok
	})
}
