// Package rgraph provides the ReactionGraph: a directed bipartite graph
// of reaction nodes and expression nodes with per-node occurrence
// counting, substrate-flagged edges, induced-subgraph filters,
// structural mutators, and Tarjan SCC decomposition.
//
// What
//
//   - Nodes are keyed by canonical string IDs: an expression node's ID is
//     its term text, and a reaction node's ID is chem.Reaction.Key().
//     Re-adding a value-equal reaction therefore never duplicates nodes;
//     it only increments the node's occurrence counter.
//   - Edges run reactive→reaction and reaction→product, keyed by their
//     endpoint pair. Each edge carries a substrate flag, true only on the
//     edge from a reaction's designated substrate reactive.
//   - Filters (MinimallyReoccurring, ReductionSubgraph, LongerFormulae,
//     WithoutSubstrates, FromReactions) are pure: each returns a fresh
//     ReactionGraph holding its own copies of records, sharing no mutable
//     state with the source.
//   - Mutators (RemoveFoodEdges, RemoveSelfLoop, TrimShortFormulae) edit
//     the graph in place.
//
// Invariants
//
//   - Bipartite: no edge ever connects two nodes of the same kind.
//     AddReaction is the only way nodes and edges enter the graph, and it
//     only creates expression↔reaction edges.
//   - Occurrences is monotonically non-decreasing and equals the number
//     of times a value-equal reaction has been submitted.
//
// Determinism
//
//	Every slice-returning query (Nodes, Expressions, ReducingReactions,
//	Successors, Predecessors, SCC members) is sorted, so analyses are
//	fully reproducible run to run.
//
// Concurrency
//
//	A ReactionGraph is a single-owner, in-memory analysis structure; it
//	performs no internal locking. Concurrent readers must each take an
//	independent snapshot via one of the filters.
//
// Errors
//
//	ErrNodeNotFound - a query referenced a node absent from the graph.
//	ErrEdgeNotFound - a query referenced an edge absent from the graph.
package rgraph
