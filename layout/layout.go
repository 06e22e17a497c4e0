// Package layout places the district's areas on a plane and exports a
// computed Result as GeoJSON: areas become Point features carrying their
// state, streets become LineString features carrying their flow.
//
// Coordinates are abstract map units, top left to bottom right, matching
// the drawing in package topology.
package layout

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"

	"github.com/katalvlaran/floodflow/topology"
	"github.com/katalvlaran/floodflow/traffic"
)

var positions = map[string]orb.Point{
	"C1": {-1, 3},
	"C2": {0, 3},
	"C3": {0, 2},
	"C4": {0, 1},
	"C5": {0.66, 1},
	"R1": {1, 2},
	"R2": {2, 2},
	"R3": {1.33, 1},
	"R4": {2, 1},
	"R5": {0, 0},
	"R6": {1, 0},
	"R7": {2, 0},
}

// Position returns the map position of an area.
func Position(id string) (orb.Point, bool) {
	p, ok := positions[id]
	return p, ok
}

// StreetLine returns the straight segment drawn for a street.
func StreetLine(s topology.Street) orb.LineString {
	return orb.LineString{positions[s.Pair.A], positions[s.Pair.B]}
}

// Bounds returns the bounding box of all areas.
func Bounds() orb.Bound {
	mp := make(orb.MultiPoint, 0, len(positions))
	for _, id := range topology.AreaIDs() {
		mp = append(mp, positions[id])
	}

	return mp.Bound()
}

// FeatureCollection renders r as GeoJSON features: one Point per area
// (properties id, category, state) followed by one LineString per street
// (properties name, floodable, flow, length), both in declaration order.
func FeatureCollection(r *traffic.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, a := range r.Areas() {
		f := geojson.NewFeature(positions[a.ID])
		f.ID = a.ID
		f.Properties["id"] = a.ID
		f.Properties["category"] = a.Category.String()
		f.Properties["state"] = int(a.State)
		fc.Append(f)
	}
	for _, s := range r.Streets() {
		line := StreetLine(s.Street)
		f := geojson.NewFeature(line)
		f.ID = s.ID
		f.Properties["name"] = s.ID
		f.Properties["floodable"] = s.Floodable
		f.Properties["flow"] = s.Rounded
		f.Properties["length"] = planar.Length(line)
		fc.Append(f)
	}
	fc.ExtraMembers = geojson.Properties{"scenario": r.Scenario().String()}

	return fc
}

// MarshalGeoJSON encodes FeatureCollection(r).
func MarshalGeoJSON(r *traffic.Result) ([]byte, error) {
	b, err := FeatureCollection(r).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "layout: marshal feature collection")
	}

	return b, nil
}

// WriteGeoJSON writes MarshalGeoJSON(r) to path.
func WriteGeoJSON(path string, r *traffic.Result) error {
	b, err := MarshalGeoJSON(r)
	if err != nil {
		return err
	}

	return errors.Wrapf(os.WriteFile(path, b, 0o644), "layout: write %s", path)
}
