// Package rgraph: node kinds, records, and sentinel errors for the
// ReactionGraph defined in graph.go.
package rgraph

import (
	"errors"

	"github.com/katalvlaran/chemnet/chem"
)

// Sentinel errors for graph queries.
var (
	// ErrNodeNotFound indicates a query referenced a non-existent node.
	ErrNodeNotFound = errors.New("rgraph: node not found")

	// ErrEdgeNotFound indicates a query referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("rgraph: edge not found")
)

// NodeKind distinguishes the two sides of the bipartite graph.
type NodeKind uint8

const (
	// KindExpression marks a chemical-species node.
	KindExpression NodeKind = iota

	// KindReaction marks a reaction node.
	KindReaction
)

// String returns the kind name.
func (k NodeKind) String() string {
	if k == KindReaction {
		return "reaction"
	}

	return "expression"
}

// node is the per-node record. Exactly one of expr/reaction is
// meaningful, selected by kind. occurrences is the only mutable numeric
// state in the graph and is used for reaction nodes only.
type node struct {
	kind        NodeKind
	expr        chem.Expression
	reaction    chem.Reaction
	occurrences int
}

// clone returns an independent copy of n.
func (n *node) clone() *node {
	c := *n
	return &c
}

// ExpressionID returns the graph node ID of expression e.
func ExpressionID(e chem.Expression) string {
	return string(e)
}

// ReactionID returns the graph node ID of reaction r.
func ReactionID(r chem.Reaction) string {
	return r.Key()
}
