package fixedbitset

import "errors"

// ErrOutOfRange indicates a bit index, shift amount, or range argument
// fell outside [0, N) (or, for shifts, was negative).
var ErrOutOfRange = errors.New("fixedbitset: index out of range")

// ErrEmptySet indicates Min or Max was called on a set with no members.
var ErrEmptySet = errors.New("fixedbitset: empty set")

// ErrOverflow indicates ToUint64 was called on a set with a bit set at
// index 64 or above.
var ErrOverflow = errors.New("fixedbitset: value overflows 64 bits")
