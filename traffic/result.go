package traffic

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/floodflow/topology"
)

// ProblemSummary describes one solved source problem.
type ProblemSummary struct {
	Source      string
	State       topology.State
	TotalDemand int64
	Cost        int64
}

// AreaView is an area with its state in a Result.
type AreaView struct {
	topology.Area
	State topology.State
}

// StreetView is a street with its final flow in a Result.
type StreetView struct {
	topology.Street
	Flow    float64
	Rounded int
}

// Result is the outcome of one computation: area states, per-street flows
// after flood scaling, and per-source summaries. It is read-only.
type Result struct {
	scenario topology.Scenario
	states   topology.States
	raw      AggregatedFlow
	flows    AggregatedFlow
	problems []ProblemSummary
}

// Scenario returns the flooding scenario the result was computed for.
func (r *Result) Scenario() topology.Scenario { return r.scenario }

// AreaState returns the state of area id.
func (r *Result) AreaState(id string) (topology.State, bool) {
	if _, ok := topology.AreaByID(id); !ok {
		return topology.Unpopulated, false
	}

	return r.states[id], true
}

// StreetFlow returns the final (scaled, unrounded) flow of a street by name.
func (r *Result) StreetFlow(id string) (float64, bool) {
	return r.flows.Street(id)
}

// Flows returns the rounded flow of every street in declaration order.
func (r *Result) Flows() []int {
	return r.flows.Ordered()
}

// Aggregated returns a copy of the final per-street flows.
func (r *Result) Aggregated() AggregatedFlow {
	return r.flows.Clone()
}

// Unscaled returns a copy of the per-street flows before flood scaling.
func (r *Result) Unscaled() AggregatedFlow {
	return r.raw.Clone()
}

// Areas lists every area with its state, in declaration order.
func (r *Result) Areas() []AreaView {
	areas := topology.Areas()
	out := make([]AreaView, len(areas))
	for i, a := range areas {
		out[i] = AreaView{Area: a, State: r.states[a.ID]}
	}

	return out
}

// Streets lists every street with its flow, in declaration order.
func (r *Result) Streets() []StreetView {
	streets := topology.Streets()
	rounded := r.flows.Ordered()
	out := make([]StreetView, len(streets))
	for i, s := range streets {
		out[i] = StreetView{Street: s, Flow: r.flows[s.Pair], Rounded: rounded[i]}
	}

	return out
}

// Problems returns one summary per populated area, in declaration order.
func (r *Result) Problems() []ProblemSummary {
	out := make([]ProblemSummary, len(r.problems))
	copy(out, r.problems)

	return out
}

// String formats the ordered flows as "[a, b, ...]".
func (r *Result) String() string {
	flows := r.Flows()
	parts := make([]string, len(flows))
	for i, f := range flows {
		parts[i] = strconv.Itoa(f)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
