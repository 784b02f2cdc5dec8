package rgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemnet/chem"
	"github.com/katalvlaran/chemnet/rgraph"
)

// buildSample assembles a small two-reaction network:
//
//	r1: A + B => C   (submitted twice)
//	r2: C => A       (submitted once)
func buildSample(t *testing.T) (*rgraph.ReactionGraph, chem.Reaction, chem.Reaction) {
	t.Helper()
	g := rgraph.New()
	r1 := reduce([]chem.Expression{"A", "B"}, []chem.Expression{"C"})
	r2 := reduce([]chem.Expression{"C"}, []chem.Expression{"A"})
	require.NoError(t, g.AddReaction(r1))
	require.NoError(t, g.AddReaction(r1))
	require.NoError(t, g.AddReaction(r2))

	return g, r1, r2
}

func TestMinimallyReoccurring(t *testing.T) {
	g, r1, r2 := buildSample(t)
	sub := g.MinimallyReoccurring(2)

	assert.Equal(t, 2, g.Occurrences(r1))
	assert.Equal(t, 2, sub.Occurrences(r1), "occurrence counters are preserved on retained nodes")
	assert.Equal(t, 0, sub.Occurrences(r2))
	// All three expressions stay.
	assert.Equal(t, []chem.Expression{"A", "B", "C"}, sub.Expressions())
}

func TestReductionSubgraph(t *testing.T) {
	g := rgraph.New()
	r1 := reduce([]chem.Expression{"A"}, []chem.Expression{"B"})
	r2 := chem.Reaction{Type: "condense", Reactives: []chem.Expression{"B"}, Products: []chem.Expression{"C"}, Substrate: 0}
	require.NoError(t, g.AddReaction(r1))
	require.NoError(t, g.AddReaction(r2))

	sub := g.ReductionSubgraph()
	assert.True(t, sub.HasNode(rgraph.ReactionID(r1)))
	assert.False(t, sub.HasNode(rgraph.ReactionID(r2)))
	// Expression nodes always survive a reaction-predicate filter.
	assert.Equal(t, []chem.Expression{"A", "B", "C"}, sub.Expressions())
}

func TestLongerFormulae(t *testing.T) {
	g := rgraph.New()
	r := reduce([]chem.Expression{"SII", "K"}, []chem.Expression{"SK"})
	require.NoError(t, g.AddReaction(r))

	sub := g.LongerFormulae(2)
	assert.Equal(t, []chem.Expression{"SII", "SK"}, sub.Expressions())
	assert.True(t, sub.HasNode(rgraph.ReactionID(r)))
	// The edge from the dropped reactive is gone with its node.
	assert.False(t, sub.HasEdge("K", rgraph.ReactionID(r)))
	assert.True(t, sub.HasEdge("SII", rgraph.ReactionID(r)))
}

func TestWithoutSubstrates(t *testing.T) {
	g, r1, _ := buildSample(t)
	sub := g.WithoutSubstrates()

	r1id := rgraph.ReactionID(r1)
	// A is r1's substrate: that edge is gone.
	assert.False(t, sub.HasEdge("A", r1id))
	assert.True(t, sub.HasEdge("B", r1id))
	assert.True(t, sub.HasEdge(r1id, "C"))

	// Edge-induced: a node kept only by a substrate edge disappears.
	g2 := rgraph.New()
	lone := reduce([]chem.Expression{"X"}, nil) // no products: only the substrate edge exists
	require.NoError(t, g2.AddReaction(lone))
	sub2 := g2.WithoutSubstrates()
	assert.Equal(t, 0, sub2.Size(), "nodes with no surviving edge are dropped")
}

func TestFromReactions(t *testing.T) {
	g, r1, r2 := buildSample(t)
	sub := g.FromReactions([]chem.Reaction{r1})

	assert.True(t, sub.HasNode(rgraph.ReactionID(r1)))
	assert.False(t, sub.HasNode(rgraph.ReactionID(r2)))
	// All expressions of the source graph are kept, neighbors or not.
	assert.Equal(t, []chem.Expression{"A", "B", "C"}, sub.Expressions())
	// Edges into the dropped reaction are gone.
	preds, err := sub.Predecessors(rgraph.ExpressionID("A"))
	require.NoError(t, err)
	assert.Empty(t, preds, "A was only produced by r2")
}

// Filters yield structurally independent snapshots: mutating the copy
// must not leak into the source.
func TestFilters_SnapshotIndependence(t *testing.T) {
	g, r1, _ := buildSample(t)
	sub := g.ReductionSubgraph()

	sub.TrimShortFormulae(1)
	assert.Equal(t, 0, len(sub.Expressions()))
	assert.Equal(t, []chem.Expression{"A", "B", "C"}, g.Expressions(), "source graph must be untouched")

	require.NoError(t, sub.AddReaction(reduce([]chem.Expression{"Z"}, []chem.Expression{"W"})))
	assert.False(t, g.HasNode("Z"))
	assert.Equal(t, 2, g.Occurrences(r1))
}

func TestFilters_EmptyMatchYieldsEmptyGraph(t *testing.T) {
	g, _, _ := buildSample(t)
	sub := g.MinimallyReoccurring(100).LongerFormulae(100)
	assert.Equal(t, 0, sub.Size())
	assert.Equal(t, 0, sub.EdgeCount())
}
