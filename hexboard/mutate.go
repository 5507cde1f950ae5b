package hexboard

import "fmt"

// SetPlayer returns a copy of b with the side to move overridden to p,
// which must be X or O. Ordinary play always uses Play's toggle, and
// FromCells takes an explicit side to move at construction time.
func (b Board) SetPlayer(p Player) (Board, error) {
	if !validPlayer(p) {
		return Board{}, illegalArgf("invalid player %v", p)
	}
	b.toMove = p
	return b, nil
}

// Play returns a copy of b with cell i claimed by the side to move and
// the turn toggled to the opponent. It fails with ErrIllegalArgument if i
// is out of range and ErrCellOccupied if i already belongs to either
// player.
func (b Board) Play(i int) (Board, error) {
	if i < 0 || i >= b.size*b.size {
		return Board{}, illegalArgf("cell %d out of range [0,%d)", i, b.size*b.size)
	}
	if b.Occupied().Test(i) {
		return Board{}, fmt.Errorf("hexboard: cell %d: %w", i, ErrCellOccupied)
	}

	switch b.toMove {
	case X:
		if err := b.vert.SetBit(i); err != nil {
			return Board{}, err
		}
	case O:
		if err := b.horz.SetBit(i); err != nil {
			return Board{}, err
		}
	default:
		return Board{}, illegalArgf("board has no side to move")
	}
	b.toMove = b.toMove.Opponent()
	return b, nil
}
