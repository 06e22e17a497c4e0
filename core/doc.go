// Package core provides a thread-safe, in-memory directed network: vertices
// joined by arcs that each carry a cost and a capacity. It is the substrate
// for the shortest-path (dijkstra) and min-cost-flow (flow) packages.
//
// The Graph G = (V,A) supports:
//
//   - Directed arcs only; an undirected street is modeled as two opposite arcs.
//   - Per-arc Cost (int64, may be any sign) and Capacity (int64, ≥ 0).
//   - Optional parallel arcs (WithMultiEdges) and self-loops (WithLoops).
//   - An optional Label per arc (WithEdgeLabel), e.g. the street name.
//   - Deterministic iteration: Vertices() sorted by ID, Edges() and
//     Neighbors() in insertion order.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel arcs between the same ordered endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	AddVertex(id string) error                                   // O(1)
//	HasVertex(id string) bool                                    // O(1)
//	AddEdge(from, to string, cost, capacity int64, opts ...EdgeOption) (string, error) // O(1)
//	HasEdge(from, to string) bool                                // O(1)
//	GetEdge(id string) (*Edge, error)                            // O(1)
//	Neighbors(id string) ([]*Edge, error)                        // O(d log d)
//	Vertices() []string                                          // O(V log V)
//	Edges() []*Edge                                              // O(E log E)
//	VertexCount(), EdgeCount() int                               // O(1)
//	Clone() *Graph                                               // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing arc
//	ErrNegativeCapacity    – arc capacity below zero
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel arc when multi-edges disabled
package core
