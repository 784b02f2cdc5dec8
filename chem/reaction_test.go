package chem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chemnet/chem"
)

func TestReaction_Validate(t *testing.T) {
	ok := chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"A", "B"},
		Products:  []chem.Expression{"C"},
		Substrate: 0,
	}
	assert.NoError(t, ok.Validate())

	assert.ErrorIs(t, chem.Reaction{
		Reactives: []chem.Expression{"A"},
	}.Validate(), chem.ErrEmptyReactionType)

	assert.ErrorIs(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"A"},
		Substrate: 1,
	}.Validate(), chem.ErrBadSubstrate)

	// No reactives: only NoSubstrate is legal.
	assert.NoError(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Products:  []chem.Expression{"A"},
		Substrate: chem.NoSubstrate,
	}.Validate())
	assert.ErrorIs(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Products:  []chem.Expression{"A"},
		Substrate: 0,
	}.Validate(), chem.ErrBadSubstrate)
}

func TestReaction_KeyCollapsesValueEquality(t *testing.T) {
	r1 := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"A", "B"}, Products: []chem.Expression{"C"}, Substrate: 0}
	r2 := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"A", "B"}, Products: []chem.Expression{"C"}, Substrate: 0}
	assert.Equal(t, r1.Key(), r2.Key())

	// A different substrate index is a different reaction.
	r3 := r1
	r3.Substrate = 1
	assert.NotEqual(t, r1.Key(), r3.Key())

	// Reactive order matters.
	r4 := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"B", "A"}, Products: []chem.Expression{"C"}, Substrate: 0}
	assert.NotEqual(t, r1.Key(), r4.Key())
}

func TestReaction_SubstrateExpr(t *testing.T) {
	r := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"A", "B"}, Products: []chem.Expression{"C"}, Substrate: 1}
	expr, ok := r.SubstrateExpr()
	assert.True(t, ok)
	assert.Equal(t, chem.Expression("B"), expr)

	empty := chem.Reaction{Type: chem.TypeReduce, Substrate: chem.NoSubstrate}
	_, ok = empty.SubstrateExpr()
	assert.False(t, ok)
}

func TestReaction_SelfLoop(t *testing.T) {
	assert.True(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"A", "B"},
		Products:  []chem.Expression{"B", "A"},
		Substrate: 0,
	}.SelfLoop())

	assert.False(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"A", "B"},
		Products:  []chem.Expression{"A", "A"},
		Substrate: 0,
	}.SelfLoop())

	assert.False(t, chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"A"},
		Products:  []chem.Expression{"A", "A"},
		Substrate: 0,
	}.SelfLoop())
}

func TestReaction_Lengths(t *testing.T) {
	r := chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: []chem.Expression{"SII", "K"},
		Products:  []chem.Expression{"SII(SII)"},
		Substrate: 0,
	}
	assert.Equal(t, 4, r.ReactivesLen())
	assert.Equal(t, 6, r.ProductsLen())
	assert.Equal(t, "SII + K => SII(SII)", r.String())
}

func TestSets_SortedAndEqual(t *testing.T) {
	s := chem.NewExprSet("B", "A", "B")
	assert.Equal(t, []chem.Expression{"A", "B"}, s.Sorted())
	assert.True(t, s.Equal(chem.NewExprSet("A", "B")))
	assert.False(t, s.Equal(chem.NewExprSet("A")))

	clone := s.Clone()
	clone.Add("C")
	assert.False(t, s.Has("C"), "Clone must be independent")

	r1 := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"A"}, Products: []chem.Expression{"B"}, Substrate: 0}
	r2 := chem.Reaction{Type: chem.TypeReduce, Reactives: []chem.Expression{"B"}, Products: []chem.Expression{"A"}, Substrate: 0}
	rs := chem.NewReactionSet(r2, r1, r1)
	assert.Len(t, rs, 2)
	assert.True(t, rs.Has(r1))
	assert.True(t, rs.Equal(chem.NewReactionSet(r1, r2)))
}
