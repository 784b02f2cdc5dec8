package chem

// Expression is a chemical species written as a combinator term, e.g.
// "SII(SII)". The zero value is the empty species.
//
// Expression is a comparable value type: it can be used directly as a
// map key, and two expressions are equal iff their texts are equal.
type Expression string

// groupingRune reports whether r is structural punctuation rather than
// an atom of the term.
func groupingRune(r rune) bool {
	return r == '(' || r == ')'
}

// Atoms returns the constituent single-atom species of e, in order of
// appearance. Grouping parentheses carry no matter and are skipped.
// Complexity: O(len(e)).
func (e Expression) Atoms() []Expression {
	atoms := make([]Expression, 0, len(e))
	for _, r := range e {
		if groupingRune(r) {
			continue
		}
		atoms = append(atoms, Expression(r))
	}

	return atoms
}

// Len returns the structural size of e: the number of atoms it contains,
// grouping parentheses excluded. Complexity: O(len(e)).
func (e Expression) Len() int {
	n := 0
	for _, r := range e {
		if !groupingRune(r) {
			n++
		}
	}

	return n
}

// String returns the term text.
func (e Expression) String() string {
	return string(e)
}
