package traffic

import (
	"github.com/katalvlaran/floodflow/config"
	"github.com/katalvlaran/floodflow/flow"
	"github.com/katalvlaran/floodflow/topology"
)

// Rates converts abstract weight units into traffic units.
type Rates struct {
	PerCommercialArea  float64
	PerResidentialArea float64
	// TransitFactor scales the outflow of areas with public transport.
	TransitFactor float64
}

// RatesFrom extracts the rates from p.
func RatesFrom(p config.Parameters) Rates {
	return Rates{
		PerCommercialArea:  p.FlowPerCommercialArea,
		PerResidentialArea: p.FlowPerResidentialArea,
		TransitFactor:      p.PublicTransportFactor,
	}
}

// Factor is the total traffic a source area in the given state emits.
func (r Rates) Factor(area topology.Area, state topology.State) float64 {
	factor := r.PerResidentialArea
	if area.Category == topology.Commercial {
		factor = r.PerCommercialArea
	}
	if state == topology.PopulatedWithTransit {
		factor *= r.TransitFactor
	}

	return factor
}

// DirectedFlow is normalized traffic on one arc.
type DirectedFlow struct {
	From, To string
	Street   string
	Value    float64
}

// Contribution is the normalized traffic one source adds to the network.
type Contribution struct {
	Source string
	Flows  []DirectedFlow
}

// Normalize scales every arc flow of a solved problem by
// Factor(source, state) / TotalDemand. A problem with TotalDemand 0
// contributes nothing.
func Normalize(p *Problem, a *flow.Assignment, state topology.State, r Rates) Contribution {
	c := Contribution{Source: p.Source}
	if p.TotalDemand == 0 || a == nil {
		return c
	}

	area, _ := topology.AreaByID(p.Source)
	scale := r.Factor(area, state) / float64(p.TotalDemand)
	arcs := a.Arcs()
	c.Flows = make([]DirectedFlow, 0, len(arcs))
	for _, af := range arcs {
		c.Flows = append(c.Flows, DirectedFlow{
			From:   af.From,
			To:     af.To,
			Street: af.Label,
			Value:  float64(af.Flow) * scale,
		})
	}

	return c
}

// NetOutflow returns Σ outflow − Σ inflow at id.
func (c Contribution) NetOutflow(id string) float64 {
	var v float64
	for _, f := range c.Flows {
		if f.From == id {
			v += f.Value
		}
		if f.To == id {
			v -= f.Value
		}
	}

	return v
}
