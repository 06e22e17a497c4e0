package flow

import (
	"fmt"

	"github.com/katalvlaran/floodflow/core"
	"github.com/katalvlaran/floodflow/dijkstra"
)

// Verify checks that res is a valid solution of (g, demands):
//   - 0 ≤ flow ≤ capacity on every arc (EdgeError wrapping ErrCapacity);
//   - inflow − outflow = demand at every vertex (VertexError wrapping ErrConservation);
//   - res.Cost equals Σ cost·flow (ErrCostMismatch).
//
// Verify does not prove optimality; see ShortestPathCost for single-source problems.
// Complexity: O(V · E).
func Verify(g *core.Graph, demands Demands, res *Result) error {
	if g == nil {
		return ErrNilGraph
	}
	if res == nil || res.Assignment == nil {
		return fmt.Errorf("%w: empty result", ErrConservation)
	}

	var cost int64
	for _, e := range g.Edges() {
		f := res.Assignment.EdgeFlow(e.ID)
		if f < 0 || f > e.Capacity {
			return EdgeError{From: e.From, To: e.To, Flow: f, Cap: e.Capacity}
		}
		cost += f * e.Cost
	}
	for _, v := range g.Vertices() {
		if in := res.Assignment.NetInflow(v); in != demands[v] {
			return VertexError{Vertex: v, Demand: demands[v], NetInflow: in, Err: ErrConservation}
		}
	}
	if cost != res.Cost {
		return fmt.Errorf("%w: reported %d, arcs sum to %d", ErrCostMismatch, res.Cost, cost)
	}

	return nil
}

// ShortestPathCost returns the optimal cost of a single-source problem when
// capacities do not bind: Σ demand(v) · dist(source, v), with distances from
// dijkstra over arcs of positive capacity. Any feasible flow costs at least
// this much, so a solver result with equal cost is optimal.
//
// Returns ErrNotSingleSource unless exactly one vertex has negative demand,
// and ErrInfeasible if a vertex with positive demand is unreachable.
func ShortestPathCost(g *core.Graph, demands Demands) (int64, error) {
	suppliers := demands.Suppliers()
	if len(suppliers) != 1 {
		return 0, fmt.Errorf("%w: %d suppliers", ErrNotSingleSource, len(suppliers))
	}
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(suppliers[0]), dijkstra.WithMinCapacity(1))
	if err != nil {
		return 0, err
	}

	var total int64
	for v, d := range demands {
		if d <= 0 {
			continue
		}
		if dist[v] == dijkstra.Unreachable {
			return 0, fmt.Errorf("%w: %q unreachable from %q", ErrInfeasible, v, suppliers[0])
		}
		total += d * dist[v]
	}

	return total, nil
}

// VerifyOptimal runs Verify and, for single-source problems, additionally
// requires res.Cost to equal ShortestPathCost. It is meant for networks whose
// capacities exceed the total supply, where that bound is exact.
func VerifyOptimal(g *core.Graph, demands Demands, res *Result) error {
	if err := Verify(g, demands, res); err != nil {
		return err
	}
	bound, err := ShortestPathCost(g, demands)
	if err != nil {
		return err
	}
	if res.Cost != bound {
		return fmt.Errorf("%w: cost %d, shortest-path bound %d", ErrCostMismatch, res.Cost, bound)
	}

	return nil
}
