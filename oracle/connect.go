package oracle

import (
	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexboard"
)

// Winner reports which side has actually connected its two edges on b.
// testFor restricts evaluation: if testFor is X, only X is checked (the
// result is X or hexboard.Unset, never O), symmetrically for O; any
// other value (including hexboard.Unset) checks both sides.
func Winner(b hexboard.Board, testFor hexboard.Player) hexboard.Player {
	if wantsX(testFor) && connected(b.Size(), hexboard.X, b.VerticalCells()) {
		return hexboard.X
	}
	if wantsO(testFor) && connected(b.Size(), hexboard.O, b.HorizontalCells()) {
		return hexboard.O
	}
	return hexboard.Unset
}

// VirtualWinner reports which side is guaranteed to connect its two
// edges even with the opponent to move next — either because it has
// already actually connected, or because its two flood-fill frontiers
// share at least two vacant common neighbors (a Hex bridge: whichever
// cell the opponent takes, the other completes the connection).
func VirtualWinner(b hexboard.Board, testFor hexboard.Player) hexboard.Player {
	empty := b.Empty()
	if wantsX(testFor) && virtuallyConnected(b.Size(), hexboard.X, b.VerticalCells(), empty) {
		return hexboard.X
	}
	if wantsO(testFor) && virtuallyConnected(b.Size(), hexboard.O, b.HorizontalCells(), empty) {
		return hexboard.O
	}
	return hexboard.Unset
}

func wantsX(testFor hexboard.Player) bool { return testFor != hexboard.O }
func wantsO(testFor hexboard.Player) bool { return testFor != hexboard.X }

// edges returns the start/stop edge cell sets for side p: X connects
// top to bottom, O connects left to right.
func edges(size int, p hexboard.Player) (start, stop cellset.Set) {
	var err error
	if p == hexboard.O {
		start, err = cellset.Left(size)
		mustNoErr(err)
		stop, err = cellset.Right(size)
		mustNoErr(err)
		return start, stop
	}
	start, err = cellset.Top(size)
	mustNoErr(err)
	stop, err = cellset.Bottom(size)
	mustNoErr(err)
	return start, stop
}

// connected runs a bilateral flood fill for side p with owned-set owned:
// grow both edge frontiers by one layer of same-owner
// neighbors per step until they meet (connected) or neither grows
// (disconnected). S=1 falls out of the same loop: both edges are the
// sole cell, so start/stop are equal and non-empty iff it is owned.
func connected(size int, p hexboard.Player, owned cellset.Set) bool {
	eStart, eStop := edges(size, p)
	start := owned.Intersect(eStart)
	stop := owned.Intersect(eStop)
	if start.None() || stop.None() {
		return false
	}
	for {
		nextStart := start.Union(start.Neighbors().Intersect(owned))
		nextStop := stop.Union(stop.Neighbors().Intersect(owned))
		if nextStart.Intersect(nextStop).Any() {
			return true
		}
		if nextStart.Equal(start) && nextStop.Equal(stop) {
			return false
		}
		start, stop = nextStart, nextStop
	}
}

// virtuallyConnected runs the same bilateral flood, additionally
// checking for a Hex bridge (two shared vacant common neighbors between
// the stalled frontiers) when no further progress is possible.
func virtuallyConnected(size int, p hexboard.Player, owned, empty cellset.Set) bool {
	eStart, eStop := edges(size, p)
	start := owned.Intersect(eStart)
	stop := owned.Intersect(eStop)
	if start.None() || stop.None() {
		return false
	}
	for {
		nextStart := start.Union(start.Neighbors().Intersect(owned))
		nextStop := stop.Union(stop.Neighbors().Intersect(owned))
		if nextStart.Intersect(nextStop).Any() {
			return true
		}
		if nextStart.Equal(start) && nextStop.Equal(stop) {
			bridge := start.Neighbors().Intersect(stop.Neighbors()).Intersect(empty)
			return bridge.Count() >= 2
		}
		start, stop = nextStart, nextStop
	}
}

func mustNoErr(err error) {
	if err != nil {
		// size is always a value already validated by the caller's Board
		// construction, so Top/Bottom/Left/Right cannot fail here.
		panic(err)
	}
}
