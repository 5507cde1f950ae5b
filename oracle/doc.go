// Package oracle implements ConnectionOracle: deciding whether a side has
// actually connected its two edges, or is guaranteed to be able to (a
// "virtual" connection via Hex bridges), using a bilateral flood fill
// grown from both edges at once.
//
// The flood-fill shape grows a frontier by one layer of same-owner
// neighbors per step until no progress is made — the usual
// connected-components approach, adapted from an explicit
// visited-array/queue BFS over grid coordinates to a CellSet-algebra
// formulation: each step is a handful of Neighbors/Intersect/Union calls
// rather than a per-cell queue, since the frontier is already a bitset.
package oracle
