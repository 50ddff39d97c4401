// Package reach answers the first grid question: is the network one connected
// component?
//
// What
//
//   - Cloud runs a breadth-first pass from a root vertex over a core.Adjacency
//     and returns a Result with:
//   - Visited: discovery order (root first)
//   - Cloud:   every vertex NOT reached from root, ascending
//   - An empty cloud means the grid is connected from root.
//   - Components splits the whole vertex set into connected components.
//
// The traversal uses an explicit FIFO queue and a set for visited membership,
// so each reachable vertex is expanded exactly once regardless of multi-edges
// or self-loops.
//
// Usage
//
//	res, err := reach.Cloud(adj, 14319)
//	if err != nil {
//	    // ErrAdjacencyNil, ErrUnknownRoot, ctx.Err(), or a wrapped hook error
//	}
//	if !res.Connected() {
//	    fmt.Println("cloud:", res.Cloud)
//	}
//
// Options
//
//   - WithContext(ctx):  abort on cancellation.
//   - WithOnVisit(fn):   hook per expanded vertex; returning an error aborts.
//
// Complexity: O(V + E) time, O(V) memory.
package reach
