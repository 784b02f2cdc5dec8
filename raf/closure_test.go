package raf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chemnet/chem"
	"github.com/katalvlaran/chemnet/raf"
)

func reduce(reactives []chem.Expression, products []chem.Expression) chem.Reaction {
	sub := 0
	if len(reactives) == 0 {
		sub = chem.NoSubstrate
	}
	return chem.Reaction{
		Type:      chem.TypeReduce,
		Reactives: reactives,
		Products:  products,
		Substrate: sub,
	}
}

func TestClosure_Basic(t *testing.T) {
	rs := []chem.Reaction{
		reduce([]chem.Expression{"A", "B"}, []chem.Expression{"C"}),
		reduce([]chem.Expression{"C"}, []chem.Expression{"D"}),
	}
	got := raf.Closure([]chem.Expression{"A", "B"}, rs)
	assert.True(t, got.Equal(chem.NewExprSet("A", "B", "C", "D")))
}

func TestClosure_ChainsAcrossPasses(t *testing.T) {
	// Reaction order forces a second pass: D's producer precedes C's.
	rs := []chem.Reaction{
		reduce([]chem.Expression{"C"}, []chem.Expression{"D"}),
		reduce([]chem.Expression{"A"}, []chem.Expression{"C"}),
	}
	got := raf.Closure([]chem.Expression{"A"}, rs)
	assert.True(t, got.Equal(chem.NewExprSet("A", "C", "D")))
}

func TestClosure_SupersetOfSeed(t *testing.T) {
	got := raf.Closure([]chem.Expression{"X", "Y"}, nil)
	assert.True(t, got.Equal(chem.NewExprSet("X", "Y")))
}

func TestClosure_Idempotent(t *testing.T) {
	rs := []chem.Reaction{
		reduce([]chem.Expression{"A"}, []chem.Expression{"B"}),
		reduce([]chem.Expression{"B"}, []chem.Expression{"C"}),
	}
	once := raf.Closure([]chem.Expression{"A"}, rs)
	twice := raf.Closure(once.Sorted(), rs)
	assert.True(t, once.Equal(twice))
}

func TestClosure_UnsatisfiedReactivesAddNothing(t *testing.T) {
	rs := []chem.Reaction{
		reduce([]chem.Expression{"A", "Z"}, []chem.Expression{"C"}),
	}
	got := raf.Closure([]chem.Expression{"A"}, rs)
	assert.True(t, got.Equal(chem.NewExprSet("A")))
}

// An empty "all reactives" quantifier is vacuously satisfied: the
// products of a zero-reactive reaction always enter the closure.
func TestClosure_ZeroReactives(t *testing.T) {
	rs := []chem.Reaction{
		reduce(nil, []chem.Expression{"C"}),
	}
	got := raf.Closure(nil, rs)
	assert.True(t, got.Equal(chem.NewExprSet("C")))
}
