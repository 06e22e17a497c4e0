package flow

import (
	"fmt"

	"github.com/katalvlaran/floodflow/core"
)

// CycleCanceling is an alternative Solver: it first finds any feasible flow,
// then removes negative-cost residual cycles until none remain. Unlike
// SuccessiveShortestPaths it tolerates negative-cost cycles in the input.
var CycleCanceling Solver = SolverFunc(cycleCanceling)

// cycleCanceling computes a minimum-cost flow meeting demands.
//
// Steps:
//  1. Build the residual network with super source S and super sink T.
//  2. Dinic max-flow S→T; if it falls short of the total demand → ErrInfeasible.
//  3. Until Bellman-Ford finds no negative cycle:
//     a. Check for cancellation.
//     b. Push the cycle's bottleneck capacity around it.
//  4. Read the per-arc flow off the reverse residual arcs.
//
// Optimality follows from the negative-cycle criterion: a feasible flow is
// minimum-cost iff its residual network has no negative-cost cycle.
//
// Complexity:
//
//	Time:   O(V · E · C) cancellations bounded by the total cost range C.
//	Memory: O(V + E).
func cycleCanceling(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error) {
	opts.normalize()
	ctx := opts.Ctx

	r, err := buildResidual(g, demands)
	if err != nil {
		return nil, err
	}

	sent, err := r.dinic(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	if sent < r.required {
		return nil, fmt.Errorf("%w: %d of %d units routed", ErrInfeasible, sent, r.required)
	}

	for {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		cycle := r.negativeCycle()
		if cycle == nil {
			break
		}
		delta := inf
		var gain int64
		for _, id := range cycle {
			if c := r.arcs[id].cap; c < delta {
				delta = c
			}
			gain += r.arcs[id].cost
		}
		for _, id := range cycle {
			r.push(id, delta)
		}
		if opts.Verbose {
			fmt.Printf("cycle-canceling: %d units around %d arcs, cost %d\n", delta, len(cycle), delta*gain)
		}
	}

	a, cost := r.assignment()

	return &Result{Assignment: a, Cost: cost}, nil
}

// negativeCycle returns the residual arc indices of some negative-cost cycle
// with positive capacity, or nil. Bellman-Ford starts from every vertex at
// distance 0; a relaxation in round V proves a cycle, which is recovered by
// walking predecessors V times and then around the loop.
func (r *residual) negativeCycle() []int {
	n := len(r.names)
	dist := make([]int64, n)
	pred := make([]int, n)
	for i := range pred {
		pred[i] = -1
	}

	last := -1
	for round := 0; round < n; round++ {
		last = -1
		for id, a := range r.arcs {
			if a.cap <= 0 {
				continue
			}
			if nd := dist[a.from] + a.cost; nd < dist[a.to] {
				dist[a.to] = nd
				pred[a.to] = id
				last = a.to
			}
		}
		if last < 0 {
			return nil
		}
	}

	v := last
	for i := 0; i < n; i++ {
		v = r.arcs[pred[v]].from
	}
	var cycle []int
	for u := v; ; {
		id := pred[u]
		cycle = append([]int{id}, cycle...)
		u = r.arcs[id].from
		if u == v {
			break
		}
	}

	return cycle
}
