package hexboard

import "github.com/katalvlaran/hexlath/cellset"

// Player identifies a side in a Hex game. The zero value, Unset, is never
// a valid Board.Player() result; it exists so oracle can use Player as
// a "match any side" wildcard in its testFor parameters
// without a separate bool.
type Player int

const (
	// Unset is the zero value; not a valid to-move or owner value on a
	// constructed Board.
	Unset Player = iota
	// X is the vertical player: wins by connecting the top edge to the
	// bottom edge.
	X
	// O is the horizontal player: wins by connecting the left edge to
	// the right edge.
	O
)

// String renders p as "X", "O", or "-" for any other value.
func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Opponent returns the other player for X and O, and Unset otherwise.
func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Unset
	}
}

func validPlayer(p Player) bool {
	return p == X || p == O
}

// Board is a Hex position: the cells X owns, the cells O owns, and whose
// turn it is to move. Board is a small value type — copying a Board
// copies its two cellset.Set fields by value, the same contract
// cellset.Set and fixedbitset.Set already provide — so callers pass it
// and receive updated copies from Play rather than mutating in place.
type Board struct {
	size   int
	vert   cellset.Set // cells owned by X
	horz   cellset.Set // cells owned by O
	toMove Player
}

// Size returns the board's side length S.
func (b Board) Size() int { return b.size }

// Player returns whose turn it is to move.
func (b Board) Player() Player { return b.toMove }

// VerticalCells returns the cells owned by X.
func (b Board) VerticalCells() cellset.Set { return b.vert }

// HorizontalCells returns the cells owned by O.
func (b Board) HorizontalCells() cellset.Set { return b.horz }

// Occupied returns the union of both players' cells.
func (b Board) Occupied() cellset.Set { return b.vert.Union(b.horz) }

// Empty returns the cells owned by neither player.
func (b Board) Empty() cellset.Set { return b.Occupied().Not() }
