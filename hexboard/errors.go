package hexboard

import (
	"errors"
	"fmt"
)

// ErrIllegalArgument indicates an out-of-range cell index, an invalid
// player value, or a vert/horz cell-set pair that overlaps.
var ErrIllegalArgument = errors.New("hexboard: illegal argument")

// ErrCellOccupied indicates an attempt to play an already-owned cell.
var ErrCellOccupied = errors.New("hexboard: cell occupied")

func illegalArgf(format string, args ...any) error {
	return fmt.Errorf("hexboard: "+format+": %w", append(args, ErrIllegalArgument)...)
}
