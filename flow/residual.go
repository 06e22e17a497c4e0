package flow

import (
	"fmt"

	"github.com/katalvlaran/floodflow/core"
)

// rArc is one direction of a residual pair. Arcs are stored in pairs so that
// arcs[i^1] is the reverse of arcs[i]; a forward arc starts with its full
// capacity and its reverse with zero.
type rArc struct {
	from, to int
	cap      int64
	cost     int64
}

// residual is an index-based residual network with a super source and a
// super sink attached to the supply and demand vertices.
type residual struct {
	names    []string
	adj      [][]int // vertex → residual arc indices
	arcs     []rArc
	edges    []*core.Edge // input arcs, forward arc of edges[k] is arcs[2k]
	source   int
	sink     int
	required int64 // Σ positive demand
}

// buildResidual validates g and demands and constructs the residual network.
//
// Steps:
//  1. Reject nil graphs, unknown demand vertices and unbalanced demands.
//  2. Index vertices in sorted order, append super source S and super sink T.
//  3. Add one residual pair per input arc (self-loops get a pair with zero
//     capacity so indices stay aligned with edges).
//  4. Add S→v (capacity −d) for every supply and v→T (capacity d) for every demand.
//
// Complexity: O(V log V + E).
func buildResidual(g *core.Graph, demands Demands) (*residual, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	for v := range demands {
		if !g.HasVertex(v) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
		}
	}
	if s := demands.Sum(); s != 0 {
		return nil, fmt.Errorf("%w: sum=%d", ErrUnbalanced, s)
	}

	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	r := &residual{
		names: append(vertices, "⊤source", "⊤sink"),
		adj:   make([][]int, len(vertices)+2),
		edges: g.Edges(),
	}
	for i, v := range vertices {
		index[v] = i
	}
	r.source, r.sink = len(vertices), len(vertices)+1

	for _, e := range r.edges {
		capacity := e.Capacity
		if e.From == e.To {
			capacity = 0
		}
		r.addPair(index[e.From], index[e.To], capacity, e.Cost)
	}
	for _, v := range vertices {
		switch d := demands[v]; {
		case d < 0:
			r.addPair(r.source, index[v], -d, 0)
		case d > 0:
			r.addPair(index[v], r.sink, d, 0)
			r.required += d
		}
	}

	return r, nil
}

func (r *residual) addPair(u, v int, capacity, cost int64) {
	id := len(r.arcs)
	r.arcs = append(r.arcs, rArc{from: u, to: v, cap: capacity, cost: cost}, rArc{from: v, to: u, cap: 0, cost: -cost})
	r.adj[u] = append(r.adj[u], id)
	r.adj[v] = append(r.adj[v], id+1)
}

// push moves delta units along residual arc i.
func (r *residual) push(i int, delta int64) {
	r.arcs[i].cap -= delta
	r.arcs[i^1].cap += delta
}

// assignment reads the flow of every input arc off its reverse residual arc.
func (r *residual) assignment() (*Assignment, int64) {
	flows := make([]int64, len(r.edges))
	var cost int64
	for k, e := range r.edges {
		flows[k] = r.arcs[2*k+1].cap
		cost += flows[k] * e.Cost
	}

	return newAssignment(r.edges, flows), cost
}
