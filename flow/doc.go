// Package flow implements minimum-cost flow on networks represented by
// *core.Graph: given a per-vertex demand (negative = supply), find a flow on
// every arc that meets all demands exactly, respects 0 ≤ flow ≤ capacity and
// minimizes Σ cost·flow.
//
// The algorithms offered are:
//
//	SuccessiveShortestPaths (default)
//	  Method: super source/sink, Bellman-Ford initial potentials, then
//	          Dijkstra on reduced costs; augment along cheapest paths.
//	  Time:   O(F · (V + E) log V), F = number of augmentations.
//	  Requires no negative-cost cycle (ErrNegativeCycle otherwise).
//
//	CycleCanceling
//	  Method: Dinic max-flow for feasibility, then cancel negative residual
//	          cycles found by Bellman-Ford.
//	  Time:   O(V · E) per cancellation.
//	  Handles negative-cost cycles.
//
// Both satisfy the Solver interface, so callers can swap algorithms without
// touching the rest of their code:
//
//	type Solver interface {
//	    Solve(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error)
//	}
//
// # Results
//
// A Result holds the total Cost and an Assignment with one ArcFlow per arc of
// the input graph, in the graph's edge order. Costs, capacities, demands and
// flows are integral (int64), so results are exact and deterministic.
//
// # Verification
//
//	Verify(g, demands, res)           - capacity, conservation and cost bookkeeping.
//	ShortestPathCost(g, demands)      - Σ demand·dist lower bound for single-source problems.
//	VerifyOptimal(g, demands, res)    - both of the above.
//
// # Errors
//
//	ErrNilGraph      - nil graph.
//	ErrUnknownVertex - a demand names a vertex not in the graph.
//	ErrUnbalanced    - demands do not sum to zero.
//	ErrInfeasible    - capacities cannot carry the demand.
//	ErrNegativeCycle - SuccessiveShortestPaths met a negative-cost cycle.
//	ErrConservation, ErrCapacity, ErrCostMismatch - verification failures.
//	context.Canceled / context.DeadlineExceeded  - if opts.Ctx is done.
package flow
