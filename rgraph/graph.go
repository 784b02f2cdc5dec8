// Package rgraph: ReactionGraph construction, mutation, and queries.
//
// Adjacency is stored as two mirrored nested maps,
// succ[from][to] = substrate and pred[to][from] = substrate, giving
// constant-time edge existence, insertion, deletion, and substrate-flag
// overwrite, plus O(deg) successor/predecessor enumeration.
package rgraph

import (
	"sort"

	"github.com/katalvlaran/chemnet/chem"
)

// ReactionGraph is the directed bipartite reaction/expression graph.
// The zero value is not usable; construct with New.
type ReactionGraph struct {
	nodes map[string]*node

	// succ[from][to] and pred[to][from] both hold the edge's substrate
	// flag; they are kept strictly in sync.
	succ map[string]map[string]bool
	pred map[string]map[string]bool
}

// New creates an empty ReactionGraph. Complexity: O(1).
func New() *ReactionGraph {
	g := &ReactionGraph{}
	g.Reset()

	return g
}

// Reset discards all nodes and edges, returning g to the empty state.
func (g *ReactionGraph) Reset() {
	g.nodes = make(map[string]*node)
	g.succ = make(map[string]map[string]bool)
	g.pred = make(map[string]map[string]bool)
}

// AddReaction inserts r and its incident edges atomically.
//
// A value-equal reaction already present only has its occurrence counter
// incremented; topology is unchanged. Expression nodes are created on
// demand for every reactive and product. Edges are keyed by endpoint
// pair: when a reactive occurs several times, the last occurrence's
// substrate flag is the one that survives structurally.
//
// Returns a chem validation error for a malformed reaction; the graph is
// untouched in that case. Complexity: O(|reactives| + |products|).
func (g *ReactionGraph) AddReaction(r chem.Reaction) error {
	if err := r.Validate(); err != nil {
		return err
	}

	rid := ReactionID(r)
	rec, ok := g.nodes[rid]
	if !ok {
		rec = &node{kind: KindReaction, reaction: r}
		g.nodes[rid] = rec
	}
	rec.occurrences++

	substrate, hasSubstrate := r.SubstrateExpr()
	for _, reactive := range r.Reactives {
		g.ensureExpression(reactive)
		g.setEdge(ExpressionID(reactive), rid, hasSubstrate && reactive == substrate)
	}
	for _, p := range r.Products {
		g.ensureExpression(p)
		g.setEdge(rid, ExpressionID(p), false)
	}

	return nil
}

// ensureExpression inserts an expression node for e if absent.
func (g *ReactionGraph) ensureExpression(e chem.Expression) {
	id := ExpressionID(e)
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = &node{kind: KindExpression, expr: e}
	}
}

// setEdge inserts or overwrites the edge from→to with the given
// substrate flag, mirroring it into the predecessor index.
func (g *ReactionGraph) setEdge(from, to string, substrate bool) {
	if g.succ[from] == nil {
		g.succ[from] = make(map[string]bool)
	}
	g.succ[from][to] = substrate
	if g.pred[to] == nil {
		g.pred[to] = make(map[string]bool)
	}
	g.pred[to][from] = substrate
}

// removeEdge deletes the edge from→to if present.
func (g *ReactionGraph) removeEdge(from, to string) {
	if m := g.succ[from]; m != nil {
		delete(m, to)
		if len(m) == 0 {
			delete(g.succ, from)
		}
	}
	if m := g.pred[to]; m != nil {
		delete(m, from)
		if len(m) == 0 {
			delete(g.pred, to)
		}
	}
}

// removeNode deletes id and every incident edge.
func (g *ReactionGraph) removeNode(id string) {
	for to := range g.succ[id] {
		if m := g.pred[to]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(g.pred, to)
			}
		}
	}
	delete(g.succ, id)
	for from := range g.pred[id] {
		if m := g.succ[from]; m != nil {
			delete(m, id)
			if len(m) == 0 {
				delete(g.succ, from)
			}
		}
	}
	delete(g.pred, id)
	delete(g.nodes, id)
}

// Size returns the total number of nodes (both kinds). O(1).
func (g *ReactionGraph) Size() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edges. O(V).
func (g *ReactionGraph) EdgeCount() int {
	n := 0
	for _, m := range g.succ {
		n += len(m)
	}

	return n
}

// HasNode reports whether a node with the given ID exists. O(1).
func (g *ReactionGraph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether the edge from→to exists. O(1).
func (g *ReactionGraph) HasEdge(from, to string) bool {
	_, ok := g.succ[from][to]
	return ok
}

// KindOf returns the node kind of id, or ErrNodeNotFound.
func (g *ReactionGraph) KindOf(id string) (NodeKind, error) {
	rec, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return rec.kind, nil
}

// SubstrateEdge returns the substrate flag of the edge from→to, or
// ErrEdgeNotFound.
func (g *ReactionGraph) SubstrateEdge(from, to string) (bool, error) {
	flag, ok := g.succ[from][to]
	if !ok {
		return false, ErrEdgeNotFound
	}

	return flag, nil
}

// Occurrences returns how many times a value-equal reaction has been
// submitted via AddReaction; 0 when the reaction is absent. O(1).
func (g *ReactionGraph) Occurrences(r chem.Reaction) int {
	rec, ok := g.nodes[ReactionID(r)]
	if !ok || rec.kind != KindReaction {
		return 0
	}

	return rec.occurrences
}

// ReactionAt returns the reaction stored at node id.
// Returns ErrNodeNotFound when id is absent or not a reaction node.
func (g *ReactionGraph) ReactionAt(id string) (chem.Reaction, error) {
	rec, ok := g.nodes[id]
	if !ok || rec.kind != KindReaction {
		return chem.Reaction{}, ErrNodeNotFound
	}

	return rec.reaction, nil
}

// ExpressionAt returns the expression stored at node id.
// Returns ErrNodeNotFound when id is absent or not an expression node.
func (g *ReactionGraph) ExpressionAt(id string) (chem.Expression, error) {
	rec, ok := g.nodes[id]
	if !ok || rec.kind != KindExpression {
		return "", ErrNodeNotFound
	}

	return rec.expr, nil
}

// Nodes returns all node IDs in sorted order. O(V·logV).
func (g *ReactionGraph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Expressions returns every expression in the graph, sorted. O(V·logV).
func (g *ReactionGraph) Expressions() []chem.Expression {
	out := make([]chem.Expression, 0, len(g.nodes))
	for _, rec := range g.nodes {
		if rec.kind == KindExpression {
			out = append(out, rec.expr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ExpressionSet returns every expression in the graph as a set.
func (g *ReactionGraph) ExpressionSet() chem.ExprSet {
	s := make(chem.ExprSet, len(g.nodes))
	for _, rec := range g.nodes {
		if rec.kind == KindExpression {
			s.Add(rec.expr)
		}
	}

	return s
}

// ReducingReactions returns every reaction node of type chem.TypeReduce,
// ordered by reaction key. O(V·logV).
func (g *ReactionGraph) ReducingReactions() []chem.Reaction {
	s := make(chem.ReactionSet)
	for _, rec := range g.nodes {
		if rec.kind == KindReaction && rec.reaction.Type == chem.TypeReduce {
			s.Add(rec.reaction)
		}
	}

	return s.Sorted()
}

// FilterReducing keeps, from the given node IDs, those that are reducing
// reaction nodes of this graph, ordered by reaction key. Unknown IDs and
// expression nodes are dropped silently.
func (g *ReactionGraph) FilterReducing(ids []string) []chem.Reaction {
	s := make(chem.ReactionSet)
	for _, id := range ids {
		rec, ok := g.nodes[id]
		if ok && rec.kind == KindReaction && rec.reaction.Type == chem.TypeReduce {
			s.Add(rec.reaction)
		}
	}

	return s.Sorted()
}

// Successors returns the sorted IDs of nodes reachable from id by one
// edge, or ErrNodeNotFound.
func (g *ReactionGraph) Successors(id string) ([]string, error) {
	return g.adjacent(id, g.succ)
}

// Predecessors returns the sorted IDs of nodes with an edge into id, or
// ErrNodeNotFound.
func (g *ReactionGraph) Predecessors(id string) ([]string, error) {
	return g.adjacent(id, g.pred)
}

func (g *ReactionGraph) adjacent(id string, index map[string]map[string]bool) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, 0, len(index[id]))
	for other := range index[id] {
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}
