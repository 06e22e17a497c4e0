// Package core: Graph method implementations.
//
// Adjacency is stored as a nested map: adjacencyList[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and lookup of arcs.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates a directed arc from→to with the given cost and capacity and
// returns its unique Edge.ID. Missing endpoints are added implicitly.
//
// Returns ErrEmptyVertexID, ErrNegativeCapacity, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, cost, capacity int64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if capacity < 0 {
		return "", fmt.Errorf("%w: %s→%s capacity=%d", ErrNegativeCapacity, from, to, capacity)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Parallel-arc check
	if !g.allowMulti {
		if inner, ok := g.adjacencyList[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Construct and store
	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: edgeID(seq), From: from, To: to, Cost: cost, Capacity: capacity, seq: seq}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][e.ID] = struct{}{}

	return e.ID, nil
}

// HasEdge reports true if at least one arc from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the arc with the given ID. The returned *Edge is read-only by convention.
// Complexity: O(1).
func (g *Graph) GetEdge(id string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Neighbors returns the outgoing arcs of vertex id in insertion order.
// Complexity: O(d log d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all arcs in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the Graph: configuration, vertices, arcs and
// adjacency. Vertex Metadata maps are shared. The edge-ID sequence carries
// over so later AddEdge calls on the clone never collide.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := &Graph{
		allowMulti:    g.allowMulti,
		allowLoops:    g.allowLoops,
		vertices:      make(map[string]*Vertex, len(g.vertices)),
		edges:         make(map[string]*Edge, len(g.edges)),
		adjacencyList: make(map[string]map[string]map[string]struct{}, len(g.adjacencyList)),
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	for eid, e := range g.edges {
		cp := *e
		clone.edges[eid] = &cp
		if clone.adjacencyList[e.From][e.To] == nil {
			clone.adjacencyList[e.From][e.To] = make(map[string]struct{})
		}
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
	}

	return clone
}

func edgeID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
