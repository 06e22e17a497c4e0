package traffic

import (
	"math"

	"github.com/katalvlaran/floodflow/topology"
)

// AggregatedFlow is the total traffic per street, keyed by the street's
// canonical area pair. Both directions of a street share one bucket.
type AggregatedFlow map[topology.Pair]float64

// NewAggregatedFlow returns a mapping with every street at 0.
func NewAggregatedFlow() AggregatedFlow {
	f := make(AggregatedFlow, topology.StreetCount)
	for _, s := range topology.Streets() {
		f[s.Pair] = 0
	}

	return f
}

// Aggregate sums contributions into a fresh AggregatedFlow, in argument order.
func Aggregate(contributions ...Contribution) AggregatedFlow {
	f := NewAggregatedFlow()
	for _, c := range contributions {
		f.Add(c)
	}

	return f
}

// Add accumulates one contribution in place.
func (f AggregatedFlow) Add(c Contribution) {
	for _, d := range c.Flows {
		f[topology.NewPair(d.From, d.To)] += d.Value
	}
}

// Clone returns an independent copy.
func (f AggregatedFlow) Clone() AggregatedFlow {
	out := make(AggregatedFlow, len(f))
	for k, v := range f {
		out[k] = v
	}

	return out
}

// Street returns the flow on the named street.
func (f AggregatedFlow) Street(id string) (float64, bool) {
	s, ok := topology.StreetByID(id)
	if !ok {
		return 0, false
	}

	return f[s.Pair], true
}

// Ordered rounds every street's flow to the nearest integer, halves to
// even, in street declaration order.
func (f AggregatedFlow) Ordered() []int {
	streets := topology.Streets()
	out := make([]int, len(streets))
	for i, s := range streets {
		out[i] = int(math.RoundToEven(f[s.Pair]))
	}

	return out
}
