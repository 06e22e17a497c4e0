package flow

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/floodflow/core"
)

const inf = int64(math.MaxInt64 / 4)

// SuccessiveShortestPaths is the default Solver. It repeatedly augments along
// a cheapest super-source→super-sink path in the residual network.
var SuccessiveShortestPaths Solver = SolverFunc(successiveShortestPaths)

// successiveShortestPaths computes a minimum-cost flow meeting demands.
//
// Steps:
//  1. Build the residual network with super source S and super sink T.
//  2. Bellman-Ford from S for initial potentials, so negative arc costs are
//     allowed as long as no negative cycle is reachable (ErrNegativeCycle).
//  3. Until all demand is met:
//     a. Check for cancellation.
//     b. Dijkstra on reduced costs c(u,v) + π(u) − π(v) ≥ 0.
//     c. If T is unreachable, the problem is infeasible (ErrInfeasible).
//     d. Update potentials, push the bottleneck along the path.
//  4. Read the per-arc flow off the reverse residual arcs.
//
// Complexity:
//
//	Time:   O(F · (E + V) log V) with F the number of augmentations.
//	Memory: O(V + E).
func successiveShortestPaths(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error) {
	opts.normalize()
	ctx := opts.Ctx

	r, err := buildResidual(g, demands)
	if err != nil {
		return nil, err
	}

	pot, err := r.bellmanFordPotentials()
	if err != nil {
		return nil, err
	}

	var sent int64
	for sent < r.required {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		dist, prevArc := r.reducedDijkstra(pot)
		if dist[r.sink] >= inf {
			return nil, fmt.Errorf("%w: %d of %d units routed", ErrInfeasible, sent, r.required)
		}
		for v := range pot {
			if dist[v] < inf {
				pot[v] += dist[v]
			}
		}

		// Bottleneck along T ← … ← S.
		delta := r.required - sent
		for v := r.sink; v != r.source; v = r.arcs[prevArc[v]].from {
			if c := r.arcs[prevArc[v]].cap; c < delta {
				delta = c
			}
		}
		for v := r.sink; v != r.source; v = r.arcs[prevArc[v]].from {
			r.push(prevArc[v], delta)
		}
		sent += delta
		if opts.Verbose {
			fmt.Printf("ssp: pushed %d at unit cost %d, total %d/%d\n", delta, pot[r.sink]-pot[r.source], sent, r.required)
		}
	}

	a, cost := r.assignment()

	return &Result{Assignment: a, Cost: cost}, nil
}

// bellmanFordPotentials returns shortest distances from S over arcs with
// positive residual capacity. Vertices S cannot reach get potential 0; they
// stay unreachable for the whole run.
func (r *residual) bellmanFordPotentials() ([]int64, error) {
	n := len(r.names)
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[r.source] = 0

	for round := 0; round < n; round++ {
		changed := false
		for _, a := range r.arcs {
			if a.cap <= 0 || dist[a.from] >= inf {
				continue
			}
			if nd := dist[a.from] + a.cost; nd < dist[a.to] {
				dist[a.to] = nd
				changed = true
			}
		}
		if !changed {
			for v := range dist {
				if dist[v] >= inf {
					dist[v] = 0
				}
			}
			return dist, nil
		}
	}

	return nil, ErrNegativeCycle
}

// reducedDijkstra runs Dijkstra from S on reduced costs. It returns the
// reduced distances and, for each reached vertex, the residual arc used to
// enter it.
func (r *residual) reducedDijkstra(pot []int64) ([]int64, []int) {
	n := len(r.names)
	dist := make([]int64, n)
	prevArc := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = inf
		prevArc[i] = -1
	}
	dist[r.source] = 0

	pq := &indexPQ{}
	heap.Push(pq, pqItem{v: r.source, dist: 0})
	for pq.Len() > 0 {
		it := heap.Pop(pq).(pqItem)
		if done[it.v] {
			continue
		}
		done[it.v] = true
		for _, i := range r.adj[it.v] {
			a := r.arcs[i]
			if a.cap <= 0 {
				continue
			}
			nd := dist[it.v] + a.cost + pot[a.from] - pot[a.to]
			if nd < dist[a.to] {
				dist[a.to] = nd
				prevArc[a.to] = i
				heap.Push(pq, pqItem{v: a.to, dist: nd})
			}
		}
	}

	return dist, prevArc
}

type pqItem struct {
	v    int
	dist int64
}

// indexPQ is a min-heap by dist, ties broken by vertex index.
type indexPQ []pqItem

func (pq indexPQ) Len() int { return len(pq) }

func (pq indexPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v
}

func (pq indexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *indexPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *indexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
