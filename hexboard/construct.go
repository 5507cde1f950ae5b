package hexboard

import "github.com/katalvlaran/hexlath/cellset"

// New returns the empty board of the given size, with X to move.
func New(size int) (Board, error) {
	vert, err := cellset.Empty(size)
	if err != nil {
		return Board{}, err
	}
	horz, err := cellset.Empty(size)
	if err != nil {
		return Board{}, err
	}
	return Board{size: size, vert: vert, horz: horz, toMove: X}, nil
}

// FromCells builds a Board from an explicit vertical and horizontal cell
// set. vert and horz must not overlap and must share size; a violation is
// reported as ErrIllegalArgument. If toMove is nil, the side to move is
// inferred from cell-count parity: X moves first, so O is to move iff X
// owns strictly more cells than O, and X is to move otherwise.
func FromCells(size int, vert, horz cellset.Set, toMove *Player) (Board, error) {
	if vert.Size() != size || horz.Size() != size {
		return Board{}, illegalArgf("vert/horz size mismatch (want %d)", size)
	}
	if vert.Intersect(horz).Any() {
		return Board{}, illegalArgf("vert and horz overlap")
	}

	var mover Player
	if toMove != nil {
		if !validPlayer(*toMove) {
			return Board{}, illegalArgf("invalid to-move player %v", *toMove)
		}
		mover = *toMove
	} else if vert.Count() > horz.Count() {
		mover = O
	} else {
		mover = X
	}

	return Board{size: size, vert: vert, horz: horz, toMove: mover}, nil
}
