// Package topology defines the fixed road network of the district: twelve
// areas joined by thirteen streets, three of which are prone to flooding.
//
//	C1 - C2
//	     |
//	     C3 --- R1 ---- R2
//	     ~              |
//	     C4 ~ C5 - R3 - R4
//	     ~              |
//	     R5 --- R6 ---- R7
//
// (~ marks a floodable street.)
//
// Areas whose identifier starts with "C" are Commercial, all others are
// Residential. The per-run State of an area (Unpopulated, Populated,
// PopulatedWithTransit) and the flooding Scenario are supplied by callers.
//
// Streets are keyed by Pair, an unordered pair of area IDs stored in
// canonical (sorted) order, so Pair values are comparable and safe to use
// as map keys regardless of the direction a caller looks at a street from.
//
// The tables are immutable: Areas() and Streets() return fresh copies in
// declaration order, and that order is the order of every ordered output.
//
// Errors:
//
//	ErrUnknownArea     - an identifier outside the fixed area table.
//	ErrInvalidState    - an area state outside {0,1,2}.
//	ErrInvalidScenario - a scenario level outside {0,1,2}.
//	ErrWrongAreaCount  - a state vector whose length is not 12.
//	ErrBadTopology     - the static tables violate a structural invariant.
package topology
