package solver

import (
	"testing"

	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexboard"
	"github.com/katalvlaran/hexlath/pattern"
	"github.com/stretchr/testify/require"
)

func emptyBoard(t *testing.T, size int) hexboard.Board {
	t.Helper()
	b, err := hexboard.New(size)
	require.NoError(t, err)
	return b
}

func TestSearch_S1_SingleCellThreat(t *testing.T) {
	b := emptyBoard(t, 1)
	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, 0, p.Play())
	require.Equal(t, []int{0}, p.Body().Elements())
}

func TestSearch_S2_EmptyBoard(t *testing.T) {
	// Scenario 3: S=2 empty: search returns (X, pattern with footprint
	// {0,1,2}).
	b := emptyBoard(t, 2)
	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, []int{0, 1, 2}, p.Body().Elements())
}

func TestSearch_S2_AfterXPlaysCellOne(t *testing.T) {
	// Scenario 2: S=2, after X plays cell 1 on an empty board: search
	// returns (X, pattern whose footprint is {2, 3}).
	b := emptyBoard(t, 2)
	b, err := b.Play(1)
	require.NoError(t, err)

	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, []int{2, 3}, p.Body().Elements())
}

func TestSearch_S3_EmptyBoard(t *testing.T) {
	// Scenario 4: S=3 empty: search returns (X, pattern with footprint
	// {1,2,4,6,7}).
	b := emptyBoard(t, 3)
	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, []int{1, 2, 4, 6, 7}, p.Body().Elements())
}

func TestSearch_S4_PartialPosition(t *testing.T) {
	// S=4 with X at {5,9} (column 1, rows 1 and 2), O at {0}: O is to
	// move, and X wins through two bridges, {1,2} to the top edge and
	// {12,13} to the bottom edge, so the footprint is {1,2,12,13}.
	vert, err := cellset.FromList(4, []int{5, 9})
	require.NoError(t, err)
	horz, err := cellset.FromList(4, []int{0})
	require.NoError(t, err)
	b, err := hexboard.FromCells(4, vert, horz, nil)
	require.NoError(t, err)

	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, []int{1, 2, 12, 13}, p.Body().Elements())
}

func TestSearch_AlreadyWonSingleCellBoard(t *testing.T) {
	// S=1 with the sole cell already owned by X: O is inferred to move
	// (parity), but X has already connected, so there is nothing left to
	// search. Search must report the already-won side with a Threat, not
	// fail with ErrIllegalState.
	vert, err := cellset.FromList(1, []int{0})
	require.NoError(t, err)
	horz, err := cellset.FromList(1, nil)
	require.NoError(t, err)
	b, err := hexboard.FromCells(1, vert, horz, nil)
	require.NoError(t, err)
	require.Equal(t, hexboard.O, b.Player())

	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, pattern.KindThreat, p.Kind())
	require.Nil(t, p.Sub())
}

func TestSearch_OneEmptyCellLeft_LosingSideToMove(t *testing.T) {
	// S=2 with X owning cells {0,1,2}: cells 0 (top row) and 2 (bottom
	// row) are adjacent, so X already connects top to bottom, and O is
	// left to move into the last cell, 3. X has already won; O being on
	// move with one cell left must not crash the search.
	vert, err := cellset.FromList(2, []int{0, 1, 2})
	require.NoError(t, err)
	horz, err := cellset.FromList(2, nil)
	require.NoError(t, err)
	b, err := hexboard.FromCells(2, vert, horz, nil)
	require.NoError(t, err)
	require.Equal(t, hexboard.O, b.Player())

	winner, p, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, hexboard.X, winner)
	require.Equal(t, pattern.KindThreat, p.Kind())
	require.Nil(t, p.Sub())
}

func TestSearch_DeterministicWithDefaultRNG(t *testing.T) {
	// WithRNG(nil) is a no-op, so both calls use the default fixed-seed
	// RNG and must return the same winner and footprint.
	b := emptyBoard(t, 3)
	w1, p1, err := Search(b, WithRNG(nil))
	require.NoError(t, err)
	w2, p2, err := Search(b)
	require.NoError(t, err)
	require.Equal(t, w1, w2)
	require.Equal(t, p1.Body().Elements(), p2.Body().Elements())
}
