package topology

import "fmt"

// AreaCount and StreetCount are the fixed sizes of the network.
const (
	AreaCount   = 12
	StreetCount = 13
)

// areaIDs lists the areas top left to bottom right; this is the order of
// state vectors on the command line.
var areaIDs = [AreaCount]string{
	"C1", "C2", "C3", "C4", "C5",
	"R1", "R2", "R3", "R4", "R5", "R6", "R7",
}

var streets = [StreetCount]Street{
	{ID: "street1", Pair: NewPair("C1", "C2")},
	{ID: "street2", Pair: NewPair("C2", "C3")},
	{ID: "street3", Pair: NewPair("C3", "R1")},
	{ID: "street4", Pair: NewPair("R1", "R2")},
	{ID: "street5", Pair: NewPair("C3", "C4"), Floodable: true},
	{ID: "street6", Pair: NewPair("R2", "R4")},
	{ID: "street7", Pair: NewPair("C4", "C5"), Floodable: true},
	{ID: "street8", Pair: NewPair("C5", "R3")},
	{ID: "street9", Pair: NewPair("R3", "R4")},
	{ID: "street10", Pair: NewPair("C4", "R5"), Floodable: true},
	{ID: "street11", Pair: NewPair("R4", "R7")},
	{ID: "street12", Pair: NewPair("R5", "R6")},
	{ID: "street13", Pair: NewPair("R6", "R7")},
}

var (
	areaIndex   = make(map[string]int, AreaCount)
	streetIndex = make(map[Pair]int, StreetCount)
)

func init() {
	for i, id := range areaIDs {
		areaIndex[id] = i
	}
	for i, s := range streets {
		streetIndex[s.Pair] = i
	}
}

// Areas returns all areas in declaration order.
func Areas() []Area {
	out := make([]Area, 0, AreaCount)
	for _, id := range areaIDs {
		out = append(out, Area{ID: id, Category: CategoryOf(id)})
	}

	return out
}

// AreaIDs returns the area identifiers in declaration order.
func AreaIDs() []string {
	out := make([]string, AreaCount)
	copy(out, areaIDs[:])

	return out
}

// AreaByID looks up an area by identifier.
func AreaByID(id string) (Area, bool) {
	if _, ok := areaIndex[id]; !ok {
		return Area{}, false
	}

	return Area{ID: id, Category: CategoryOf(id)}, true
}

// AreaIndex returns the declaration index of id, or -1.
func AreaIndex(id string) int {
	if i, ok := areaIndex[id]; ok {
		return i
	}

	return -1
}

// Streets returns all streets in declaration order.
func Streets() []Street {
	out := make([]Street, StreetCount)
	copy(out, streets[:])

	return out
}

// StreetByPair looks up the street joining the two areas of p.
func StreetByPair(p Pair) (Street, bool) {
	i, ok := streetIndex[p]
	if !ok {
		return Street{}, false
	}

	return streets[i], true
}

// StreetByID looks up a street by its name.
func StreetByID(id string) (Street, bool) {
	for _, s := range streets {
		if s.ID == id {
			return s, true
		}
	}

	return Street{}, false
}

// States maps area ID to its state for one run.
type States map[string]State

// ParseStates converts a 12-entry numeric vector (declaration order) into States.
func ParseStates(values []int) (States, error) {
	if len(values) != AreaCount {
		return nil, fmt.Errorf("%w: requires %d area states, provided %d", ErrWrongAreaCount, AreaCount, len(values))
	}
	out := make(States, AreaCount)
	for i, v := range values {
		s, err := ParseState(v)
		if err != nil {
			return nil, fmt.Errorf("area %s (position %d): %w", areaIDs[i], i+1, err)
		}
		out[areaIDs[i]] = s
	}

	return out, nil
}

// Validate checks the structural invariants of the static tables: every
// street joins two distinct known areas and no two streets share a pair.
func Validate() error {
	if len(areaIndex) != AreaCount {
		return fmt.Errorf("%w: duplicate area identifiers", ErrBadTopology)
	}
	seen := make(map[Pair]string, StreetCount)
	for _, s := range streets {
		if s.Pair.A == s.Pair.B {
			return fmt.Errorf("%w: %s is a loop on %s", ErrBadTopology, s.ID, s.Pair.A)
		}
		for _, id := range []string{s.Pair.A, s.Pair.B} {
			if _, ok := areaIndex[id]; !ok {
				return fmt.Errorf("%w: %s references %q: %w", ErrBadTopology, s.ID, id, ErrUnknownArea)
			}
		}
		if prev, dup := seen[s.Pair]; dup {
			return fmt.Errorf("%w: %s duplicates %s", ErrBadTopology, s.ID, prev)
		}
		seen[s.Pair] = s.ID
	}

	return nil
}
