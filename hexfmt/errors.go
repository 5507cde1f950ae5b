package hexfmt

import (
	"errors"
	"fmt"
)

// ErrParse indicates a bad character in a textual board or state
// string, or a glyph count that doesn't match the expected board size.
var ErrParse = errors.New("hexfmt: parse error")

func parseErrf(format string, args ...any) error {
	return fmt.Errorf("hexfmt: "+format+": %w", append(args, ErrParse)...)
}
