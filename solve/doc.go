// Package solve decides compiled artifacts with the gini SAT solver.
//
// Colorable decides whether a graph produced by the graph package admits a
// proper 3-coloring in which each basis node takes its own color. Satisfy
// decides whether the restrictions of an atom.Root can hold together and, if
// so, renders its output actions under a satisfying assignment. The two
// agree on every program the pipeline compiles, which is what the tests of
// the encoder rely on.
package solve
