package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodflow/topology"
	"github.com/katalvlaran/floodflow/traffic"
)

func contribution(src string, flows ...traffic.DirectedFlow) traffic.Contribution {
	return traffic.Contribution{Source: src, Flows: flows}
}

func TestAggregate_MergesBothDirections(t *testing.T) {
	agg := traffic.Aggregate(
		contribution("C1", traffic.DirectedFlow{From: "C1", To: "C2", Value: 10}),
		contribution("C2", traffic.DirectedFlow{From: "C2", To: "C1", Value: 2.5}),
	)

	v, ok := agg.Street("street1")
	require.True(t, ok)
	assert.Equal(t, 12.5, v)
	assert.Len(t, agg, topology.StreetCount)

	v, ok = agg.Street("street13")
	require.True(t, ok)
	assert.Zero(t, v)

	_, ok = agg.Street("street99")
	assert.False(t, ok)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := contribution("C1", traffic.DirectedFlow{From: "C1", To: "C2", Value: 1.1}, traffic.DirectedFlow{From: "C3", To: "C4", Value: 0.7})
	b := contribution("R5", traffic.DirectedFlow{From: "R5", To: "C4", Value: 3.3}, traffic.DirectedFlow{From: "C4", To: "C3", Value: 0.2})
	c := contribution("R7", traffic.DirectedFlow{From: "R7", To: "R6", Value: 5.9}, traffic.DirectedFlow{From: "C2", To: "C1", Value: 0.01})

	abc := traffic.Aggregate(a, b, c)
	for _, perm := range [][]traffic.Contribution{{a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a}} {
		got := traffic.Aggregate(perm...)
		require.Len(t, got, len(abc))
		for k, v := range abc {
			assert.InDelta(t, v, got[k], 1e-12, k.String())
		}
	}
}

func TestScaleFlooded(t *testing.T) {
	agg := traffic.NewAggregatedFlow()
	for _, s := range topology.Streets() {
		agg[s.Pair] = 10
	}

	same := agg.ScaleFlooded(topology.NoFlooding, 2)
	assert.Equal(t, agg, same)

	for _, sc := range []topology.Scenario{topology.Flooding, topology.FloodingWithCommunication} {
		scaled := agg.ScaleFlooded(sc, 2)
		for _, s := range topology.Streets() {
			want := 10.0
			if s.Floodable {
				want = 20
			}
			assert.Equal(t, want, scaled[s.Pair], s.ID)
			assert.Equal(t, 10.0, agg[s.Pair], "input must stay unchanged")
		}
	}
}

func TestOrdered_RoundsHalfToEven(t *testing.T) {
	agg := traffic.NewAggregatedFlow()
	streets := topology.Streets()
	values := []float64{0.5, 1.5, 2.5, 86.666, 99.49, 3.5}
	for i, v := range values {
		agg[streets[i].Pair] = v
	}

	got := agg.Ordered()
	require.Len(t, got, topology.StreetCount)
	assert.Equal(t, []int{0, 2, 2, 87, 99, 4}, got[:len(values)])
	for _, v := range got[len(values):] {
		assert.Zero(t, v)
	}
}
