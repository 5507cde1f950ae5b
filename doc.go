// Package hexlath is a solver for the board game Hex: given a partially
// played position on an N×N board (1 ≤ N ≤ 13), it decides whether the
// side to move has a forced win and, if so, produces a minimal proof —
// a tree of moves and virtual-connection sub-patterns.
//
// Everything is organized under per-concern subpackages:
//
//	bitops/      — scalar 64-bit bit-scan, popcount, range-mask primitives
//	fixedbitset/ — up to 256-bit fixed-capacity set with algebra and shifts
//	cellset/     — FixedBitset specialised with Hex board adjacency
//	hexboard/    — game state: owned cells per player, side to move
//	oracle/      — real / virtual edge-to-edge connection via flood fill
//	pattern/     — proof witnesses (Threat/Fork), cost, minimisation
//	solver/      — the recursive minimax search tying it all together
//	hexfmt/      — textual board parsing, state strings, rendering
//	cmd/hexdemo/ — a small CLI front end
//
// The solver itself is a pure, total function of a Board: no opening
// book, no persistence, no concurrency, no networking. A Board is a
// small, freely copyable value type, as are CellSet and FixedBitset, so
// the recursive calls of a Search never share board state; the only
// state they share is the move-shuffle RNG.
package hexlath
