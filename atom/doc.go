// Package atom provides the boolean intermediate representation that the
// rewrite engine simplifies and the graph encoder lowers.
//
// # Overview
//
// A program is an atom Root: a table of numbered definitions and an ordered
// list of value actions. A definition binds a variable ID to a Tree. An
// action is either a restriction, asserting that a Tree evaluates to a given
// boolean, or an output, which carries a format and expressions for the
// caller to print once a solution is known.
//
// # Trees
//
// Like the nodes of a document IR, a Tree is a recursive tagged union whose
// fields are populated according to its Kind:
//
//   - SeedKind: an input bound to an external label (True, False, or Null
//     for unknown). Seeds have identity: two seeds are equal only when they
//     are the same seed.
//   - MarkerKind: a transient wrapper protecting Args[0] from a program wide
//     substitution. Markers never reach the graph encoder.
//   - VariableKind: a reference to Definitions[ID].
//   - ConstKind: the boolean Value.
//   - NotKind: negation of Args[0].
//   - OrKind: disjunction of Args, compared and hashed as a set.
//
// Trees are immutable once built. Passes construct new trees and freely share
// subtrees between definitions.
//
// # Identifiers
//
// IDs are handed out by Root.Define in increasing order and are never reused.
// A definition may only reference IDs other than its own; the rewrite engine
// treats a self reference as an invariant violation.
//
// # Comparison and Hashing
//
//	Equal(a, b)        // structural, Or operands as sets
//	t.Hash()           // order independent over Or operands
//	Compare(a, b)      // canonical order used to sort Or operands
//	NewTable[V]()      // structural map keyed by trees
package atom
