package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/topology"
	"github.com/katalvlaran/floodflow/traffic"
)

func TestWeight(t *testing.T) {
	w := traffic.WeightsFrom(config.Default())
	c1, _ := topology.AreaByID("C1")
	r1, _ := topology.AreaByID("R1")

	assert.EqualValues(t, 2, traffic.Weight(c1, topology.Unpopulated, w))
	assert.EqualValues(t, 4, traffic.Weight(c1, topology.Populated, w))
	assert.EqualValues(t, 4, traffic.Weight(c1, topology.PopulatedWithTransit, w))
	assert.EqualValues(t, 1, traffic.Weight(r1, topology.Unpopulated, w))
	assert.EqualValues(t, 2, traffic.Weight(r1, topology.Populated, w))
	assert.EqualValues(t, 2, traffic.Weight(r1, topology.PopulatedWithTransit, w))
}

func TestWeighting_CoversAllAreas(t *testing.T) {
	w := traffic.WeightsFrom(config.Default())
	got := traffic.Weighting(topology.States{"C2": topology.Populated, "R7": topology.PopulatedWithTransit}, w)

	assert.Len(t, got, topology.AreaCount)
	assert.EqualValues(t, 4, got["C2"])
	assert.EqualValues(t, 2, got["C1"])
	assert.EqualValues(t, 2, got["R7"])
	assert.EqualValues(t, 1, got["R1"])
}

func TestRates_Factor(t *testing.T) {
	r := traffic.RatesFrom(config.Default())
	c1, _ := topology.AreaByID("C1")
	r1, _ := topology.AreaByID("R1")

	assert.Equal(t, 100.0, r.Factor(c1, topology.Populated))
	assert.Equal(t, 50.0, r.Factor(c1, topology.PopulatedWithTransit))
	assert.Equal(t, 200.0, r.Factor(r1, topology.Populated))
	assert.Equal(t, 100.0, r.Factor(r1, topology.PopulatedWithTransit))
}
