// Package chem defines the value models of a combinatory reaction
// network: Expression (a chemical species written as a combinator term)
// and Reaction (a typed rewrite of reactive species into product
// species), plus small deterministic set helpers built on them.
//
// What
//
//   - Expression: an immutable, comparable term such as "SII(SII)".
//     Atoms() yields its constituent single-combinator species and Len()
//     its structural size (atom count, grouping parentheses excluded).
//   - Reaction: ordered reactives, ordered products, a category Type and
//     a designated substrate reactive. Key() produces a canonical string
//     identity so that value-equal reactions collapse to one graph node.
//   - ExprSet / ReactionSet: map-backed sets with sorted, reproducible
//     enumeration, used throughout the solver and the graph layer.
//
// Why
//
//	The reaction graph deduplicates nodes by value, not by reference.
//	Stable structural equality and hashing therefore live here, once,
//	instead of being scattered through the graph bookkeeping.
//
// Identity
//
//	Two Expressions are equal iff their texts are equal. Two Reactions
//	are equal iff Type, Reactives (in order), Substrate index and
//	Products (in order) are all equal; Key() encodes exactly that.
package chem
