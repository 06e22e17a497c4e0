package flow

import (
	"context"
	"fmt"
)

// dinic pushes as much flow as possible from S to T in the residual network
// using Dinic's algorithm (level graph + blocking flows), ignoring costs. It
// is the feasibility phase of CycleCanceling.
//
// Steps:
//  1. Repeat until T is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS from S over arcs with positive residual capacity to build levels (O(V + E)).
//     c. If T is unreachable, stop.
//     d. DFS-based blocking flow with per-vertex arc iterators.
//  2. Return the total flow pushed.
//
// Complexity:
//
//	Time:   O(V² · E) in general; far less on the near-unit networks used here.
//	Memory: O(V) for level and iterator slices plus recursion depth.
func (r *residual) dinic(ctx context.Context, verbose bool) (int64, error) {
	n := len(r.names)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		// BFS levels
		level := make([]int, n)
		for i := range level {
			level[i] = -1
		}
		level[r.source] = 0
		queue := []int{r.source}
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, id := range r.adj[u] {
				a := r.arcs[id]
				if a.cap > 0 && level[a.to] < 0 {
					level[a.to] = level[u] + 1
					queue = append(queue, a.to)
				}
			}
		}
		if level[r.sink] < 0 {
			return total, nil
		}

		// Blocking flow
		iter := make([]int, n)
		for {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			pushed := r.dinicPush(level, iter, r.source, inf)
			if pushed == 0 {
				break
			}
			total += pushed
			if verbose {
				fmt.Printf("dinic: pushed %d, total %d\n", pushed, total)
			}
		}
	}
}

// dinicPush recursively pushes flow along the level graph from u and returns
// the amount actually sent.
func (r *residual) dinicPush(level, iter []int, u int, available int64) int64 {
	if u == r.sink {
		return available
	}
	for ; iter[u] < len(r.adj[u]); iter[u]++ {
		id := r.adj[u][iter[u]]
		a := r.arcs[id]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		if pushed := r.dinicPush(level, iter, a.to, send); pushed > 0 {
			r.push(id, pushed)
			return pushed
		}
	}

	return 0
}
