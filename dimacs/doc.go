// Package dimacs reads and writes min-cost flow problems in the DIMACS
// format, so per-source traffic problems can be handed to external solvers
// or checked against them.
//
// A file consists of:
//
//  1. Comment lines: c TEXT
//  2. Problem line:  p min NODES ARCS
//  3. Node lines:    n ID FLOW      (FLOW is supply; demand is negative)
//  4. Arc lines:     a SRC DST LOW CAP COST
//
// Node IDs run from 1 to NODES. Write numbers the vertices of a core.Graph
// in sorted order and records the mapping in "c node ID NAME" comments,
// which Read uses to restore the original names.
//
// See http://lpsolve.sourceforge.net/5.5/DIMACS_mcf.htm.
package dimacs
