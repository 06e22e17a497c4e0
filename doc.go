// Package floodflow estimates street traffic in a small flood-prone district.
//
// The district is a fixed network of 12 areas (commercial C1..C5, residential
// R1..R7) joined by 13 two-way streets. Given the population state of every
// area and a flooding scenario, floodflow:
//
//	topology/  - the fixed areas, streets and floodable set
//	traffic/   - demand weighting, per-source min-cost problems, normalization,
//	             aggregation, flood scaling and the Engine that runs them
//	flow/      - min-cost flow solvers (successive shortest paths, cycle
//	             canceling) and result verification
//	core/      - directed multigraph with per-arc cost and capacity
//	dijkstra/  - shortest paths used for potentials and optimality bounds
//	bfs/       - capacity-aware reachability
//	dimacs/    - DIMACS min-cost flow import/export
//	layout/    - area coordinates and GeoJSON rendering of a result
//	config/    - parameters (viper) and scenario files (YAML)
//	logger/    - zap logger construction
//	concurrent/ - generic worker pool used to solve sources in parallel
//
// The command-line front end lives in cmd/floodflow.
package floodflow
