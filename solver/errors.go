package solver

import "errors"

// ErrDeadlineExceeded is returned when a search's WithDeadline bound
// elapses before a result is found.
var ErrDeadlineExceeded = errors.New("solver: deadline exceeded")

// ErrDepthExceeded is returned when a search's WithDepthCap bound is
// reached before a result is found.
var ErrDepthExceeded = errors.New("solver: depth cap exceeded")
