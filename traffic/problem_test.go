package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/core"
	"github.com/katalvlaran/floodflow/flow"
	"github.com/katalvlaran/floodflow/topology"
	"github.com/katalvlaran/floodflow/traffic"
)

func uniformWeighting(w int64) map[string]int64 {
	out := make(map[string]int64, topology.AreaCount)
	for _, id := range topology.AreaIDs() {
		out[id] = w
	}
	return out
}

func TestBuildProblem_Shape(t *testing.T) {
	weighting := traffic.Weighting(topology.States{}, traffic.WeightsFrom(config.Default()))
	p, err := traffic.BuildProblem("C1", weighting, traffic.ArcPolicy{})
	require.NoError(t, err)

	assert.Equal(t, "C1", p.Source)
	assert.EqualValues(t, 15, p.TotalDemand)
	assert.EqualValues(t, -15, p.Demands["C1"])
	assert.EqualValues(t, 0, p.Demands.Sum())
	assert.Equal(t, topology.AreaCount, p.Graph.VertexCount())
	assert.Equal(t, 2*topology.StreetCount, p.Graph.EdgeCount())

	for _, e := range p.Graph.Edges() {
		assert.EqualValues(t, 1, e.Cost)
		assert.Equal(t, traffic.DefaultCapacity, e.Capacity)
		s, ok := topology.StreetByID(e.Label)
		require.True(t, ok)
		assert.Equal(t, s.Pair, topology.NewPair(e.From, e.To))
	}
}

func TestBuildProblem_Avoidance(t *testing.T) {
	for _, comm := range []bool{false, true} {
		p, err := traffic.BuildProblem("R1", uniformWeighting(1), traffic.ArcPolicy{Communication: comm, Avoidance: 3, Capacity: 50})
		require.NoError(t, err)
		for _, e := range p.Graph.Edges() {
			s, _ := topology.StreetByID(e.Label)
			want := int64(1)
			if comm && s.Floodable {
				want = 3
			}
			assert.Equal(t, want, e.Cost, "street %s communication=%v", s.ID, comm)
			assert.EqualValues(t, 50, e.Capacity)
		}
	}
}

func TestBuildProblem_UnknownArea(t *testing.T) {
	_, err := traffic.BuildProblem("X9", uniformWeighting(1), traffic.ArcPolicy{})
	assert.ErrorIs(t, err, topology.ErrUnknownArea)

	w := uniformWeighting(1)
	w["Z1"] = 3
	_, err = traffic.BuildProblem("C1", w, traffic.ArcPolicy{})
	assert.ErrorIs(t, err, topology.ErrUnknownArea)
}

// A single residential source with all other weights 1 emits exactly its
// rate, and every sink receives its weight.
func TestSingleResidentialSource(t *testing.T) {
	p, err := traffic.BuildProblem("R1", uniformWeighting(1), traffic.ArcPolicy{})
	require.NoError(t, err)
	assert.EqualValues(t, 11, p.TotalDemand)

	res, err := flow.SuccessiveShortestPaths.Solve(p.Graph, p.Demands, flow.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, flow.VerifyOptimal(p.Graph, p.Demands, res))
	for _, id := range topology.AreaIDs() {
		if id != "R1" {
			assert.EqualValues(t, 1, res.Assignment.NetInflow(id), id)
		}
	}

	c := traffic.Normalize(p, res.Assignment, topology.Populated, traffic.Rates{PerCommercialArea: 100, PerResidentialArea: 200, TransitFactor: 0.5})
	assert.InDelta(t, 200, c.NetOutflow("R1"), 1e-9)

	c = traffic.Normalize(p, res.Assignment, topology.PopulatedWithTransit, traffic.Rates{PerCommercialArea: 100, PerResidentialArea: 200, TransitFactor: 0.5})
	assert.InDelta(t, 100, c.NetOutflow("R1"), 1e-9)
}

func TestNormalize_ZeroDemand(t *testing.T) {
	p, err := traffic.BuildProblem("C1", uniformWeighting(0), traffic.ArcPolicy{})
	require.NoError(t, err)
	res, err := flow.SuccessiveShortestPaths.Solve(p.Graph, p.Demands, flow.DefaultOptions())
	require.NoError(t, err)

	c := traffic.Normalize(p, res.Assignment, topology.Populated, traffic.RatesFrom(config.Default()))
	assert.Equal(t, "C1", c.Source)
	assert.Empty(t, c.Flows)
}

func TestCheckReachable(t *testing.T) {
	p, err := traffic.BuildProblem("R7", uniformWeighting(1), traffic.ArcPolicy{})
	require.NoError(t, err)
	require.NoError(t, p.CheckReachable())

	g := core.NewGraph()
	_, _ = g.AddEdge("C1", "C2", 1, 10)
	_, _ = g.AddEdge("C2", "C3", 1, 0)
	broken := &traffic.Problem{Source: "C1", TotalDemand: 2, Graph: g, Demands: flow.Demands{"C1": -2, "C2": 1, "C3": 1}}
	assert.ErrorIs(t, broken.CheckReachable(), traffic.ErrUnreachable)
}
