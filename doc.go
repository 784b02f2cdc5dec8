// Package chemnet models chemical reaction networks over symbolic
// expressions (combinator terms) and computes their reflexively
// autocatalytic and food-generated (RAF) subsets — the machinery behind
// origin-of-life style self-sustaining network experiments.
//
// 🚀 What is chemnet?
//
//	An in-memory analysis toolkit that brings together:
//		• Value models: immutable Expression and Reaction types with
//		  structural identity (chem/)
//		• Reaction graph: a directed bipartite reaction/expression graph
//		  with occurrence counting, induced-subgraph filters, structural
//		  mutators, and Tarjan SCC decomposition (rgraph/)
//		• RAF analysis: food-set closure, the RAF fixed-point solver, and
//		  the cycle-depth ("RAF level") estimator (raf/)
//		• Pool feeding: periodic food replenishment for expression pools
//		  driven by a simulation tick counter (pool/)
//		• A scenario driver: YAML scenarios, structured logs, Prometheus
//		  metrics and a watch mode (cmd/chemnet)
//
// ✨ Why choose chemnet?
//
//   - Deterministic – every query returns sorted, reproducible output
//   - Snapshot filters – derived subgraphs never share state with their source
//   - Well-defined degenerate semantics – empty food sets, empty reaction
//     sets and zero-reactive reactions never panic or error
//   - Pure Go core – the analysis packages depend only on the standard library
//
// Quick ASCII example (a minimal autocatalytic loop over food {A}):
//
//	    A ──┐             ┌──> X
//	    X ──┴─> r1 ──> Y ──> r2
//
//	r1 consumes the food molecule A plus the intermediate X and produces
//	Y; r2 turns Y back into X. Neither X nor Y is derivable from food
//	alone, yet each is produced by the other's reaction, so both
//	reactions survive the RAF fixed point; the X→r1→Y→r2 cycle yields
//	RAF level 2.
//
//	go get github.com/katalvlaran/chemnet
package chemnet
