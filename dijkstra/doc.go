// Package dijkstra computes single-source shortest path distances over the
// arcs of a core.Graph, using Edge.Cost as the length of each arc.
//
// Overview:
//
//   - Classic Dijkstra with a lazy-decrease-key min-heap, O((V + E) log V).
//   - Costs must be non-negative; a negative cost is rejected up front.
//   - Optional predecessor map for path reconstruction (WithReturnPath).
//   - Optional distance cap (WithMaxDistance) and "impassable" cost threshold
//     (WithInfEdgeThreshold).
//   - Optional capacity filter (WithMinCapacity): arcs whose capacity is below
//     the threshold are ignored, so saturated or disabled arcs drop out.
//
// Within floodflow this package is the independent yardstick for the flow
// solvers: when capacities never bind, the optimal cost of a single-source
// transportation problem equals Σ demand(v) · dist(source, v).
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("C1"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["R7"], prev["R7"])
package dijkstra
