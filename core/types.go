// File: types.go
// Role: Graph, Vertex and Edge types, sentinel errors, options and NewGraph.
// Concurrency:
//   - Separate sync.RWMutex locks (muVert for vertices, muEdgeAdj for edges and
//     adjacency), so graphs may be read from several goroutines at once.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCapacity indicates an arc was given a capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed arc From→To with a per-unit Cost and a Capacity.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the tail vertex ID.
	From string

	// To is the head vertex ID.
	To string

	// Cost is the price of sending one unit of flow along the arc.
	Cost int64

	// Capacity is the upper bound on flow along the arc.
	Capacity int64

	// Label is an optional caller tag, e.g. the street the arc belongs to.
	Label string

	seq uint64 // insertion order
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel arcs between the same ordered endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeLabel attaches a label to the new arc.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// Graph is the core in-memory directed network.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// When both are needed, muVert is always acquired first.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	allowMulti bool // allow parallel arcs
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default parallel arcs and loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
