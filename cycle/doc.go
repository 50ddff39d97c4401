// Package cycle turns a spanning tree and its odd edges into a fundamental
// cycle basis: one closed walk per odd edge.
//
// Each odd edge (u, v) closes exactly one cycle against the tree: the edge
// itself plus the two tree paths from u and v to their lowest common
// ancestor. Extract rebuilds parent and depth lookups from the spanning
// record, lifts the deeper endpoint until both are level, then lifts both
// until they meet:
//
//	        r              odd edge (d, e)
//	       / \
//	      a   b            lca(d, e) = r
//	     /     \
//	    d ----- e          cycle: d -> a -> r -> b -> e -> d
//
// The meeting point never depends on the walk reaching the root.
//
// Cycle helpers: Len (edges), Vertices, Edges, OddEdge, and Canonical, which
// picks the minimal rotation over both orientations (Booth's algorithm) so
// cycles over the same ring compare equal. SortCanonical orders a basis for
// stable output.
//
// Errors:
//
//	ErrInvalidSpanningState - record and odd edges come from different passes.
package cycle
