package pattern

import "errors"

// ErrIllegalState indicates an operation invalid for the pattern's
// current shape: MinimumFork on a fork that is not itself solid, or on
// one with no solid sub-fork among its tine subsets.
var ErrIllegalState = errors.New("pattern: illegal state")
