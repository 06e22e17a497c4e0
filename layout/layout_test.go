package layout_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/layout"
	"github.com/katalvlaran/floodflow/topology"
	"github.com/katalvlaran/floodflow/traffic"
)

func compute(t *testing.T) *traffic.Result {
	t.Helper()
	eng, err := traffic.NewEngine(config.Default())
	require.NoError(t, err)
	res, err := eng.Compute(context.Background(), []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0}, 2)
	require.NoError(t, err)
	return res
}

func TestPositions_CoverAllAreas(t *testing.T) {
	for _, id := range topology.AreaIDs() {
		_, ok := layout.Position(id)
		assert.True(t, ok, id)
	}
	_, ok := layout.Position("X1")
	assert.False(t, ok)

	b := layout.Bounds()
	assert.Equal(t, orb.Point{-1, 0}, b.Min)
	assert.Equal(t, orb.Point{2, 3}, b.Max)
}

func TestFeatureCollection(t *testing.T) {
	res := compute(t)
	fc := layout.FeatureCollection(res)
	require.Len(t, fc.Features, topology.AreaCount+topology.StreetCount)

	c1 := fc.Features[0]
	assert.Equal(t, "C1", c1.ID)
	assert.Equal(t, orb.Point{-1, 3}, c1.Geometry)
	assert.Equal(t, 1, c1.Properties["state"])
	assert.Equal(t, "commercial", c1.Properties["category"])

	flows := res.Flows()
	for i, f := range fc.Features[topology.AreaCount:] {
		s := topology.Streets()[i]
		assert.Equal(t, s.ID, f.Properties["name"])
		assert.Equal(t, s.Floodable, f.Properties["floodable"])
		assert.Equal(t, flows[i], f.Properties["flow"])
		ls, ok := f.Geometry.(orb.LineString)
		require.True(t, ok)
		assert.Len(t, ls, 2)
	}
	assert.Equal(t, "Flooding + Communication", fc.ExtraMembers["scenario"])
}

func TestWriteGeoJSON_RoundTrip(t *testing.T) {
	res := compute(t)
	path := filepath.Join(t.TempDir(), "flows.geojson")
	require.NoError(t, layout.WriteGeoJSON(path, res))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, topology.AreaCount+topology.StreetCount)

	street1 := fc.Features[topology.AreaCount]
	assert.Equal(t, "street1", street1.Properties.MustString("name"))
	assert.Equal(t, float64(res.Flows()[0]), street1.Properties.MustFloat64("flow"))
}

func TestWriteGeoJSON_BadPath(t *testing.T) {
	err := layout.WriteGeoJSON(filepath.Join(t.TempDir(), "missing", "x.json"), compute(t))
	assert.Error(t, err)
}
