package rgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemnet/chem"
	"github.com/katalvlaran/chemnet/rgraph"
)

func TestSCC_AcyclicAllSingletons(t *testing.T) {
	g := rgraph.New()
	require.NoError(t, g.AddReaction(reduce([]chem.Expression{"A"}, []chem.Expression{"B"})))

	comps := g.StronglyConnectedComponents()
	assert.Len(t, comps, 3)
	for _, comp := range comps {
		assert.Len(t, comp, 1)
	}
}

// The minimal autocatalytic loop A+B → r1 → C → r2 → A puts r1, C, r2
// and A into one component; B feeds in from outside it.
func TestSCC_AutocatalyticLoop(t *testing.T) {
	g := rgraph.New()
	r1 := reduce([]chem.Expression{"A", "B"}, []chem.Expression{"C"})
	r2 := reduce([]chem.Expression{"C"}, []chem.Expression{"A"})
	require.NoError(t, g.AddReaction(r1))
	require.NoError(t, g.AddReaction(r2))

	comps := g.StronglyConnectedComponents()

	var cycle []string
	singletons := 0
	for _, comp := range comps {
		if len(comp) > 1 {
			require.Nil(t, cycle, "expected exactly one non-trivial component")
			cycle = comp
		} else {
			singletons++
		}
	}
	want := []string{"A", "C", rgraph.ReactionID(r1), rgraph.ReactionID(r2)}
	// Component members come out sorted.
	assert.ElementsMatch(t, want, cycle)
	assert.Equal(t, 1, singletons, "B alone stays outside the loop")
}
