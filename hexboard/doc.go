// Package hexboard implements Board<S>: the game state — the cells owned
// by the vertical player (X), the cells owned by the horizontal player
// (O), and whose turn it is — plus the operations that mutate and
// observe it.
//
// Board is a small value type (two cellset.Set values, a Player, and a
// size) with no shared state: Play returns a new Board rather than
// mutating the receiver, the same copy-by-value contract cellset.Set and
// fixedbitset.Set already provide. Validated state mutation sits behind
// a handful of methods with sentinel errors, the same shape a generic
// adjacency-map graph type would use, adapted here to Board's narrower,
// bitset-backed state.
package hexboard
