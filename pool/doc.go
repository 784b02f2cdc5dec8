// Package pool models an expression population as a multiset and
// provides the Feeder, a periodic food-replenishment policy driven by a
// caller-supplied simulation tick counter.
//
// The pool is entirely decoupled from the reaction graph: the feeder
// mutates only the population it is handed, never any graph state.
// Every Period ticks it removes each food molecule's constituent atoms
// from the pool (the raw matter the molecule is assembled from) and
// re-adds the assembled molecule, keeping the food supply topped up as
// the simulation consumes it.
package pool
