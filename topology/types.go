package topology

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for topology lookups and input parsing.
var (
	// ErrUnknownArea indicates an identifier that is not one of the fixed areas.
	ErrUnknownArea = errors.New("topology: unknown area")

	// ErrInvalidState indicates an area state outside {0,1,2}.
	ErrInvalidState = errors.New("topology: invalid area state")

	// ErrInvalidScenario indicates a scenario level outside {0,1,2}.
	ErrInvalidScenario = errors.New("topology: invalid scenario level")

	// ErrWrongAreaCount indicates a state vector with the wrong number of entries.
	ErrWrongAreaCount = errors.New("topology: wrong number of area states")

	// ErrBadTopology indicates the static area/street tables are inconsistent.
	ErrBadTopology = errors.New("topology: inconsistent network tables")
)

// Category is the fixed type of an area.
type Category int

const (
	// Commercial areas attract more traffic and emit flow_per_commercial_area.
	Commercial Category = iota
	// Residential areas emit flow_per_residential_area.
	Residential
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case Commercial:
		return "commercial"
	case Residential:
		return "residential"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// CategoryOf derives the category from the identifier convention.
func CategoryOf(id string) Category {
	if strings.HasPrefix(id, "C") {
		return Commercial
	}

	return Residential
}

// State is the per-run population state of an area.
type State int

const (
	// Unpopulated areas only act as destinations.
	Unpopulated State = iota
	// Populated areas generate traffic.
	Populated
	// PopulatedWithTransit areas generate traffic scaled by the public transport factor.
	PopulatedWithTransit
)

// ParseState converts the numeric CLI encoding into a State.
func ParseState(v int) (State, error) {
	s := State(v)
	if s < Unpopulated || s > PopulatedWithTransit {
		return 0, fmt.Errorf("%w: %d", ErrInvalidState, v)
	}

	return s, nil
}

// IsPopulated reports whether the area generates traffic.
func (s State) IsPopulated() bool { return s != Unpopulated }

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unpopulated:
		return "unpopulated"
	case Populated:
		return "populated"
	case PopulatedWithTransit:
		return "public transport"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Scenario is the flooding level of a run.
type Scenario int

const (
	// NoFlooding leaves every street untouched.
	NoFlooding Scenario = iota
	// Flooding scales floodable streets after aggregation.
	Flooding
	// FloodingWithCommunication additionally makes drivers avoid floodable streets.
	FloodingWithCommunication
)

// ParseScenario converts the numeric CLI encoding into a Scenario.
func ParseScenario(v int) (Scenario, error) {
	s := Scenario(v)
	if s < NoFlooding || s > FloodingWithCommunication {
		return 0, fmt.Errorf("%w: %d", ErrInvalidScenario, v)
	}

	return s, nil
}

// Flooded reports whether any flooding is active.
func (s Scenario) Flooded() bool { return s >= Flooding }

// Communication reports whether drivers are warned about flooded streets.
func (s Scenario) Communication() bool { return s == FloodingWithCommunication }

// String returns the label used on plots.
func (s Scenario) String() string {
	switch s {
	case NoFlooding:
		return "No flooding"
	case Flooding:
		return "Flooding"
	case FloodingWithCommunication:
		return "Flooding + Communication"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// Area is a node of the district graph.
type Area struct {
	ID       string
	Category Category
}

// Pair is an unordered pair of area IDs in canonical order (A <= B).
type Pair struct {
	A, B string
}

// NewPair builds the canonical pair for two area IDs.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Contains reports whether id is one of the endpoints.
func (p Pair) Contains(id string) bool { return p.A == id || p.B == id }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (p Pair) Other(id string) string {
	switch id {
	case p.A:
		return p.B
	case p.B:
		return p.A
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (p Pair) String() string { return p.A + "-" + p.B }

// Street is an undirected edge between two areas.
type Street struct {
	ID        string
	Pair      Pair
	Floodable bool
}
