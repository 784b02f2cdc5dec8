// Package raf computes reflexively autocatalytic, food-generated (RAF)
// reaction sets over a rgraph.ReactionGraph, plus the supporting
// food-set closure and the cycle-depth ("RAF level") estimator.
//
// What
//
//   - Closure(seed, reactions): the smallest superset S of seed such that
//     any reaction whose reactives are all in S also has all its products
//     in S. A plain fixed point: full passes over the reactions until a
//     pass adds nothing.
//   - Compute(g, food): prunes the graph's reducing reactions to the
//     maximal subset in which every reactive is either food-closure
//     derived or produced within the subset, and every member contributes
//     a non-food product that some member actually consumes. The second
//     clause departs from the textbook RAF definition on purpose: it
//     drops trivial reactions that merely decompose food back into food.
//   - MaxCycleLength(g): per-node shortest cycle via BFS, global maximum
//     L over per-node minima, reported as (L+1)/2 — in a bipartite
//     reaction/expression graph a cycle alternates node kinds, so halving
//     counts reaction "rounds". 0 when the graph is acyclic.
//
// Termination
//
//	Both fixed points are guaranteed to terminate: the closure set grows
//	monotonically inside a finite universe, and the candidate RAF set
//	shrinks monotonically from a finite start.
//
// Degenerate inputs
//
//	Empty food sets, empty reaction sets, and reactions with zero
//	reactives or zero products are all well-defined: an empty "all"
//	quantifier is vacuously true for reactive producibility, and a
//	reaction with no products can never satisfy the contribution clause,
//	so it never survives.
//
// Diagnostics
//
//	The solver never fails. Self-consistency of the final set (every
//	reactive food-supplied or produced by another member) is checked
//	after the fixed point and reported through an injected *slog.Logger
//	(WithLogger); violations never alter the result. The default sink
//	discards everything, so the package holds no process-wide state.
package raf
