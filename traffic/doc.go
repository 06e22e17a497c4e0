// Package traffic estimates per-street traffic on the district network.
//
// For every populated area a min-cost flow problem is built in which that
// area supplies all other areas in proportion to their demand weight. The
// solved flows are normalized into traffic units, summed per street over all
// sources, scaled on floodable streets when flooding is active, and rounded.
//
//	states, scenario
//	   │
//	   ├─ Weighting ─────────────── weight per area
//	   ├─ BuildProblem (per source) ─ graph + demands
//	   ├─ flow.Solver ────────────── arc flows
//	   ├─ Normalize ──────────────── Contribution
//	   ├─ Aggregate ──────────────── AggregatedFlow
//	   ├─ ScaleFlooded
//	   └─ Ordered ────────────────── []int, street order
//
// Engine wires the steps together:
//
//	eng, err := traffic.NewEngine(config.Default(), traffic.WithWorkers(4))
//	res, err := eng.Compute(ctx, []int{0, 0, 2, 1, 0, 1, 1, 0, 0, 2, 0, 1}, 2)
//	fmt.Println(res) // [a, b, ...]
//
// Only at scenario level 2 (flooding with communication) do floodable
// streets cost more than 1; at level 1 they are priced normally and only
// their aggregated flow is multiplied by the flooded street density.
//
// Errors:
//
//	ErrConfig   - bad area states, scenario level or parameters; nothing is solved.
//	ErrInternal - a problem was infeasible or failed verification.
package traffic
