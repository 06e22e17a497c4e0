package flow

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/floodflow/core"
)

// Sentinel errors returned by the min-cost-flow solvers and Verify.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrUnbalanced indicates the node demands do not sum to zero.
	ErrUnbalanced = errors.New("flow: demands do not sum to zero")

	// ErrUnknownVertex indicates a demand entry names a vertex missing from the graph.
	ErrUnknownVertex = errors.New("flow: demand on unknown vertex")

	// ErrInfeasible indicates no flow satisfies the demands within the arc capacities.
	ErrInfeasible = errors.New("flow: no feasible flow satisfies the demands")

	// ErrNegativeCycle indicates the solver met a negative-cost cycle it cannot handle.
	ErrNegativeCycle = errors.New("flow: negative-cost cycle in residual network")

	// ErrConservation indicates an assignment violates inflow − outflow = demand.
	ErrConservation = errors.New("flow: conservation violated")

	// ErrCapacity indicates an assignment puts flow outside [0, capacity] on an arc.
	ErrCapacity = errors.New("flow: capacity bound violated")

	// ErrCostMismatch indicates a reported cost differs from Σ cost·flow, or is not optimal.
	ErrCostMismatch = errors.New("flow: cost mismatch")

	// ErrNotSingleSource indicates a lower bound was requested for a problem
	// that does not have exactly one supply vertex.
	ErrNotSingleSource = errors.New("flow: problem does not have exactly one supply vertex")
)

// VertexError reports a per-vertex verification failure.
type VertexError struct {
	Vertex    string
	Demand    int64
	NetInflow int64
	Err       error
}

func (e VertexError) Error() string {
	return fmt.Sprintf("%v at %q: net inflow %d, demand %d", e.Err, e.Vertex, e.NetInflow, e.Demand)
}

func (e VertexError) Unwrap() error { return e.Err }

// EdgeError reports a per-arc verification failure.
type EdgeError struct {
	From, To string
	Flow     int64
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("%v on edge %q→%q: flow %d, capacity %d", ErrCapacity, e.From, e.To, e.Flow, e.Cap)
}

func (e EdgeError) Unwrap() error { return ErrCapacity }

// FlowOptions configures all min-cost-flow solvers.
//   - Ctx: checked between augmentations and cycle cancellations.
//   - Verbose: if true, logs each augmentation via fmt.Printf.
type FlowOptions struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultOptions returns production-safe defaults: background context, quiet.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background()}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Demands maps vertex ID to required net inflow. A negative value is a
// supply; vertices not listed have demand zero.
type Demands map[string]int64

// Sum returns Σ demand; a solvable problem has Sum() == 0.
func (d Demands) Sum() int64 {
	var s int64
	for _, v := range d {
		s += v
	}

	return s
}

// Suppliers returns the vertices with negative demand, sorted.
func (d Demands) Suppliers() []string {
	var out []string
	for v, x := range d {
		if x < 0 {
			out = append(out, v)
		}
	}
	sort.Strings(out)

	return out
}

// ArcFlow is the flow on one arc of the input graph.
type ArcFlow struct {
	EdgeID string
	From   string
	To     string
	Label  string
	Flow   int64
}

// Assignment is a flow value for every arc of the graph it was solved on.
type Assignment struct {
	arcs   []ArcFlow
	byEdge map[string]int
}

func newAssignment(edges []*core.Edge, flows []int64) *Assignment {
	a := &Assignment{
		arcs:   make([]ArcFlow, len(edges)),
		byEdge: make(map[string]int, len(edges)),
	}
	for i, e := range edges {
		a.arcs[i] = ArcFlow{EdgeID: e.ID, From: e.From, To: e.To, Label: e.Label, Flow: flows[i]}
		a.byEdge[e.ID] = i
	}

	return a
}

// Arcs returns the per-arc flows in the graph's edge order.
func (a *Assignment) Arcs() []ArcFlow {
	out := make([]ArcFlow, len(a.arcs))
	copy(out, a.arcs)

	return out
}

// EdgeFlow returns the flow on the arc with the given edge ID.
func (a *Assignment) EdgeFlow(edgeID string) int64 {
	if i, ok := a.byEdge[edgeID]; ok {
		return a.arcs[i].Flow
	}

	return 0
}

// Flow returns the total flow on all arcs from→to.
func (a *Assignment) Flow(from, to string) int64 {
	var f int64
	for _, af := range a.arcs {
		if af.From == from && af.To == to {
			f += af.Flow
		}
	}

	return f
}

// NetInflow returns Σ inflow − Σ outflow at vertex v.
func (a *Assignment) NetInflow(v string) int64 {
	var f int64
	for _, af := range a.arcs {
		if af.To == v {
			f += af.Flow
		}
		if af.From == v {
			f -= af.Flow
		}
	}

	return f
}

// Result is the output of a Solver.
type Result struct {
	Assignment *Assignment
	Cost       int64
}

// Solver computes a minimum-cost flow on g meeting demands exactly.
// Implementations must return ErrInfeasible (possibly wrapped) when no
// feasible flow exists and must not mutate g.
type Solver interface {
	Solve(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error)

// Solve calls f.
func (f SolverFunc) Solve(g *core.Graph, demands Demands, opts FlowOptions) (*Result, error) {
	return f(g, demands, opts)
}
