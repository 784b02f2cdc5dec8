package chem

import "sort"

// ExprSet is an unordered set of expressions with sorted enumeration.
type ExprSet map[Expression]struct{}

// NewExprSet builds an ExprSet from exprs.
func NewExprSet(exprs ...Expression) ExprSet {
	s := make(ExprSet, len(exprs))
	for _, e := range exprs {
		s[e] = struct{}{}
	}

	return s
}

// Add inserts e into s.
func (s ExprSet) Add(e Expression) { s[e] = struct{}{} }

// Has reports whether e is a member of s.
func (s ExprSet) Has(e Expression) bool {
	_, ok := s[e]
	return ok
}

// Clone returns an independent copy of s.
func (s ExprSet) Clone() ExprSet {
	out := make(ExprSet, len(s))
	for e := range s {
		out[e] = struct{}{}
	}

	return out
}

// Union inserts every member of other into s and returns s.
func (s ExprSet) Union(other ExprSet) ExprSet {
	for e := range other {
		s[e] = struct{}{}
	}

	return s
}

// Equal reports whether s and other contain the same expressions.
func (s ExprSet) Equal(other ExprSet) bool {
	if len(s) != len(other) {
		return false
	}
	for e := range s {
		if _, ok := other[e]; !ok {
			return false
		}
	}

	return true
}

// Sorted returns the members of s in lexicographic order.
func (s ExprSet) Sorted() []Expression {
	out := make([]Expression, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ReactionSet is an unordered set of reactions keyed by Reaction.Key,
// with sorted enumeration.
type ReactionSet map[string]Reaction

// NewReactionSet builds a ReactionSet from rs.
func NewReactionSet(rs ...Reaction) ReactionSet {
	s := make(ReactionSet, len(rs))
	for _, r := range rs {
		s[r.Key()] = r
	}

	return s
}

// Add inserts r into s.
func (s ReactionSet) Add(r Reaction) { s[r.Key()] = r }

// Has reports whether a value-equal reaction is a member of s.
func (s ReactionSet) Has(r Reaction) bool {
	_, ok := s[r.Key()]
	return ok
}

// Equal reports whether s and other contain the same reactions.
func (s ReactionSet) Equal(other ReactionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}

	return true
}

// Sorted returns the members of s ordered by Key.
func (s ReactionSet) Sorted() []Reaction {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Reaction, 0, len(keys))
	for _, k := range keys {
		out = append(out, s[k])
	}

	return out
}
