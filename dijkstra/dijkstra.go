package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/floodflow/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g,
// measuring each arc by its Cost.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if not reachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise);
//     prev[v] == u means the shortest path to v goes through u, "" if none.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
//
// Steps:
//  1. Apply options and validate inputs.
//  2. Pre-scan all arcs and fail fast on a negative cost.
//  3. Lazy-decrease-key main loop: pop the closest vertex, finalize, relax.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Pre-scan for negative costs
	for _, e := range g.Edges() {
		if e.Cost < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Cost)
		}
	}

	// 3) Run
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, V)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the vertex sequence source→…→target from a predecessor map.
// Returns nil if target is unreachable.
func PathTo(prev map[string]string, source, target string) []string {
	if source == target {
		return []string{source}
	}
	if prev[target] == "" {
		return nil
	}
	var path []string
	for cur := target; cur != ""; cur = prev[cur] {
		path = append([]string{cur}, path...)
		if cur == source {
			return path
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets dist[v] = Unreachable for all v and seeds the heap with Source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized vertex and relaxes its arcs.
// It stops when the heap is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every head of an arc leaving u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		if e.Cost >= r.options.InfEdgeThreshold || e.Capacity < r.options.MinCapacity {
			continue
		}
		newDist := r.dist[u] + e.Cost
		if newDist > r.options.MaxDistance || newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id so
// that equal-cost paths are resolved the same way on every run.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
