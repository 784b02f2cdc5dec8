package chem

import (
	"errors"
	"strconv"
	"strings"
)

// TypeReduce is the reaction category produced by combinator reduction.
// The RAF machinery only considers reactions of this type.
const TypeReduce = "reduce"

// NoSubstrate marks a reaction without a designated substrate reactive
// (legal only when the reaction has no reactives at all).
const NoSubstrate = -1

// Sentinel errors for reaction validation.
var (
	// ErrEmptyReactionType indicates a Reaction with an empty Type tag.
	ErrEmptyReactionType = errors.New("chem: reaction type is empty")

	// ErrBadSubstrate indicates a Substrate index outside Reactives.
	ErrBadSubstrate = errors.New("chem: substrate index out of range")
)

// Reaction is a value type describing one rewrite of reactive species
// into product species.
//
// Reactives and Products are ordered and may contain repeats. Substrate
// indexes the distinguished "main input" reactive; set it to NoSubstrate
// for a reaction with no reactives.
type Reaction struct {
	// Type is the reaction category tag, e.g. TypeReduce.
	Type string

	// Reactives are the consumed species, in order, repeats allowed.
	Reactives []Expression

	// Products are the produced species, in order, repeats allowed.
	Products []Expression

	// Substrate is the index of the designated reactive in Reactives,
	// or NoSubstrate when Reactives is empty.
	Substrate int
}

// Validate checks the structural well-formedness of r.
// Returns ErrEmptyReactionType or ErrBadSubstrate.
func (r Reaction) Validate() error {
	if r.Type == "" {
		return ErrEmptyReactionType
	}
	if len(r.Reactives) == 0 {
		if r.Substrate != NoSubstrate {
			return ErrBadSubstrate
		}
		return nil
	}
	if r.Substrate < 0 || r.Substrate >= len(r.Reactives) {
		return ErrBadSubstrate
	}

	return nil
}

// SubstrateExpr returns the designated substrate reactive.
// ok is false when the reaction has no reactives.
func (r Reaction) SubstrateExpr() (expr Expression, ok bool) {
	if r.Substrate < 0 || r.Substrate >= len(r.Reactives) {
		return "", false
	}

	return r.Reactives[r.Substrate], true
}

// Key returns the canonical identity of r. Value-equal reactions (same
// Type, same ordered Reactives, same Substrate index, same ordered
// Products) share a Key and collapse to a single graph node.
func (r Reaction) Key() string {
	var b strings.Builder
	b.WriteString(r.Type)
	b.WriteByte('|')
	writeExprs(&b, r.Reactives)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(r.Substrate))
	b.WriteByte('|')
	writeExprs(&b, r.Products)

	return b.String()
}

// String renders r in chemical notation, e.g. "A + B => C".
func (r Reaction) String() string {
	var b strings.Builder
	writeExprs(&b, r.Reactives)
	b.WriteString(" => ")
	writeExprs(&b, r.Products)

	return b.String()
}

// writeExprs joins exprs with " + " into b.
func writeExprs(b *strings.Builder, exprs []Expression) {
	for i, e := range exprs {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(string(e))
	}
}

// ReactivesLen returns the summed structural size of all reactives.
func (r Reaction) ReactivesLen() int {
	return totalLen(r.Reactives)
}

// ProductsLen returns the summed structural size of all products.
func (r Reaction) ProductsLen() int {
	return totalLen(r.Products)
}

func totalLen(exprs []Expression) int {
	n := 0
	for _, e := range exprs {
		n += e.Len()
	}

	return n
}

// SelfLoop reports whether r rewrites its inputs into themselves: the
// reactive multiset equals the product multiset. Such reactions change
// nothing in the network and are pruned by RemoveSelfLoop.
func (r Reaction) SelfLoop() bool {
	if len(r.Reactives) != len(r.Products) {
		return false
	}
	counts := make(map[Expression]int, len(r.Reactives))
	for _, e := range r.Reactives {
		counts[e]++
	}
	for _, e := range r.Products {
		counts[e]--
		if counts[e] < 0 {
			return false
		}
	}

	return true
}
