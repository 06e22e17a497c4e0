package traffic

import (
	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/topology"
)

// Weights is the demand weight table: how strongly an area attracts traffic
// as a destination, by category and whether it is populated.
type Weights struct {
	CommercialUnpopulated  int64
	CommercialPopulated    int64
	ResidentialUnpopulated int64
	ResidentialPopulated   int64
}

// WeightsFrom extracts the weight table from p.
func WeightsFrom(p config.Parameters) Weights {
	return Weights{
		CommercialUnpopulated:  p.WeightCommercialUnpopulated,
		CommercialPopulated:    p.WeightCommercialPopulated,
		ResidentialUnpopulated: p.WeightResidentialUnpopulated,
		ResidentialPopulated:   p.WeightResidentialPopulated,
	}
}

// Weight returns the demand weight of area in the given state.
// Populated and PopulatedWithTransit share the populated weight: transit
// lowers the trips an area emits, not how many it attracts.
func Weight(area topology.Area, state topology.State, w Weights) int64 {
	if area.Category == topology.Commercial {
		if state.IsPopulated() {
			return w.CommercialPopulated
		}
		return w.CommercialUnpopulated
	}
	if state.IsPopulated() {
		return w.ResidentialPopulated
	}

	return w.ResidentialUnpopulated
}

// Weighting returns the weight of every area for one run. Areas missing
// from states count as Unpopulated.
func Weighting(states topology.States, w Weights) map[string]int64 {
	out := make(map[string]int64, topology.AreaCount)
	for _, a := range topology.Areas() {
		out[a.ID] = Weight(a, states[a.ID], w)
	}

	return out
}
