// Package cellset specializes fixedbitset.Set to Hex board geometry: a
// CellSet<S> is a FixedBitset<S·S> plus the edge masks (Top, Bottom, Left,
// Right, Universe) and the Hex adjacency operator (Neighbors) that every
// higher layer — Board, ConnectionOracle, Pattern — is expressed in terms
// of.
//
// Cells are indexed 0..S·S-1 in row-major order: cell (row r, column c) is
// r*S + c. S ranges over [1, 13].
//
// Edge masks are computed once per board size and cached (see geometryFor):
// a runtime lazy-init with a guard, since Go has no compile-time const
// evaluation for the repeat-block recursion behind them. The guard is a
// mutex-protected map keyed by size, the same compute-once-reuse-often
// shape as a precomputed per-geometry neighbor-offset table.
package cellset
