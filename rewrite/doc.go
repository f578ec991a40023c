// Package rewrite simplifies an atom.Root into the normal form the graph
// encoder accepts.
//
// Every pass reports whether it changed the program; the caller repeats the
// passes until none does. A typical light tier is
//
//	for {
//		changed := false
//		for RemoveLinks(r) {
//			changed = true
//		}
//		if SimplifyRoot(r, sink) {
//			changed = true
//		}
//		if !changed {
//			break
//		}
//	}
//
// optionally followed by InlineAll, OutlineCommon and another light tier.
// Finalize must run last: it strips the markers left by Force and splits
// wide disjunctions into binary ones.
package rewrite
