package pool

import (
	"sort"

	"github.com/katalvlaran/chemnet/chem"
)

// Pool is a multiset of expressions. The zero value is not usable;
// construct with New.
type Pool struct {
	counts map[chem.Expression]int
	size   int
}

// New creates an empty Pool holding the given initial molecules.
func New(molecules ...chem.Expression) *Pool {
	p := &Pool{counts: make(map[chem.Expression]int, len(molecules))}
	for _, m := range molecules {
		p.Add(m)
	}

	return p
}

// Add inserts one occurrence of e.
func (p *Pool) Add(e chem.Expression) {
	p.counts[e]++
	p.size++
}

// Remove deletes one occurrence of e, reporting whether one was present.
func (p *Pool) Remove(e chem.Expression) bool {
	if p.counts[e] == 0 {
		return false
	}
	p.counts[e]--
	if p.counts[e] == 0 {
		delete(p.counts, e)
	}
	p.size--

	return true
}

// Count returns the number of occurrences of e.
func (p *Pool) Count(e chem.Expression) int {
	return p.counts[e]
}

// Len returns the total number of molecules, repeats included.
func (p *Pool) Len() int {
	return p.size
}

// Distinct returns the number of distinct species present.
func (p *Pool) Distinct() int {
	return len(p.counts)
}

// Sorted returns the distinct species in lexicographic order.
func (p *Pool) Sorted() []chem.Expression {
	out := make([]chem.Expression, 0, len(p.counts))
	for e := range p.counts {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
