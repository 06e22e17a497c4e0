package traffic

import "github.com/katalvlaran/floodflow/topology"

// ScaleFlooded returns a copy of f in which, if the scenario involves
// flooding, every floodable street's flow is multiplied by density.
// f itself is not modified.
func (f AggregatedFlow) ScaleFlooded(scenario topology.Scenario, density float64) AggregatedFlow {
	out := f.Clone()
	if !scenario.Flooded() {
		return out
	}
	for _, s := range topology.Streets() {
		if s.Floodable {
			out[s.Pair] *= density
		}
	}

	return out
}
