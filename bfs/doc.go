// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// Arcs are followed in their direction only. WithMinCapacity restricts the
// search to arcs that can carry flow, which makes BFS a cheap reachability
// check before a flow problem is handed to a solver.
//
// Options:
//
//	WithContext(ctx)    - cancellation, checked once per dequeued vertex.
//	WithOnVisit(fn)     - callback per visited vertex; an error aborts the search.
//	WithMaxDepth(d)     - do not expand beyond depth d (0 = unlimited).
//	WithMinCapacity(c)  - skip arcs with capacity < c.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
