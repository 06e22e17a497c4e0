package traffic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/floodflow/bfs"
	"github.com/katalvlaran/floodflow/core"
	"github.com/katalvlaran/floodflow/flow"
	"github.com/katalvlaran/floodflow/topology"
)

// DefaultCapacity is the per-arc capacity; it exceeds any aggregate flow the
// district can produce, so solutions are driven by cost alone.
const DefaultCapacity int64 = 1000

// ArcPolicy fixes how streets turn into arcs for one scenario.
type ArcPolicy struct {
	// Communication prices floodable streets at Avoidance instead of 1.
	Communication bool
	Avoidance     int64
	Capacity      int64
}

// ErrUnreachable indicates an area with positive demand that no arc path
// from the source can reach.
var ErrUnreachable = errors.New("traffic: demand area unreachable from source")

// Problem is the min-cost flow instance for one populated source area.
type Problem struct {
	Source      string
	TotalDemand int64 // Σ weight of every other area
	Graph       *core.Graph
	Demands     flow.Demands
}

// BuildProblem constructs the flow problem in which source supplies every
// other area with its weight.
//
// Steps:
//  1. Sum the weights of all areas except source into TotalDemand.
//  2. Give each other area demand = weight and source demand = −TotalDemand.
//  3. For every street add two opposite arcs labeled with the street ID,
//     with cost 1, or policy.Avoidance on floodable streets when
//     policy.Communication is set.
//
// Returns topology.ErrUnknownArea if source or a weighting entry is not an area.
func BuildProblem(source string, weighting map[string]int64, policy ArcPolicy) (*Problem, error) {
	if _, ok := topology.AreaByID(source); !ok {
		return nil, fmt.Errorf("%w: source %q", topology.ErrUnknownArea, source)
	}
	for id := range weighting {
		if _, ok := topology.AreaByID(id); !ok {
			return nil, fmt.Errorf("%w: weighting entry %q", topology.ErrUnknownArea, id)
		}
	}
	if policy.Capacity == 0 {
		policy.Capacity = DefaultCapacity
	}
	if policy.Avoidance == 0 {
		policy.Avoidance = 1
	}

	p := &Problem{
		Source:  source,
		Graph:   core.NewGraph(),
		Demands: make(flow.Demands, topology.AreaCount),
	}
	for _, id := range topology.AreaIDs() {
		if err := p.Graph.AddVertex(id); err != nil {
			return nil, err
		}
		if id == source {
			continue
		}
		p.Demands[id] = weighting[id]
		p.TotalDemand += weighting[id]
	}
	p.Demands[source] = -p.TotalDemand

	for _, s := range topology.Streets() {
		cost := int64(1)
		if policy.Communication && s.Floodable {
			cost = policy.Avoidance
		}
		if _, err := p.Graph.AddEdge(s.Pair.A, s.Pair.B, cost, policy.Capacity, core.WithEdgeLabel(s.ID)); err != nil {
			return nil, err
		}
		if _, err := p.Graph.AddEdge(s.Pair.B, s.Pair.A, cost, policy.Capacity, core.WithEdgeLabel(s.ID)); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// CheckReachable verifies that every area with positive demand can be
// reached from the source over arcs with positive capacity. A failure means
// the problem is infeasible regardless of the solver.
func (p *Problem) CheckReachable() error {
	res, err := bfs.BFS(p.Graph, p.Source, bfs.WithMinCapacity(1))
	if err != nil {
		return err
	}
	for _, id := range p.Graph.Vertices() {
		if p.Demands[id] > 0 && !res.Reached(id) {
			return fmt.Errorf("%w: %s from %s", ErrUnreachable, id, p.Source)
		}
	}

	return nil
}
