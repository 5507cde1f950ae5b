package bitops

import "errors"

// ErrOutOfRange indicates a bit or range index fell outside a word's
// addressable span of [0, 64).
var ErrOutOfRange = errors.New("bitops: index out of range")
