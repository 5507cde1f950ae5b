package hexfmt

import (
	"unicode"

	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexboard"
)

// Parse reads a textual board of the given size: exactly size*size
// glyphs once whitespace is stripped, in row-major order. 'X' marks a
// cell owned by the vertical player, 'O' a cell owned by the
// horizontal player, and '.', '-', or the middle dot (·, U+00B7) a
// vacant cell; any other non-whitespace character fails with
// ErrParse. Visual indentation carries no meaning — only the glyph
// stream, once whitespace is removed, determines the position. The
// side to move is inferred from cell-count parity, as hexboard.FromCells
// does.
func Parse(size int, text string) (hexboard.Board, error) {
	glyphs := stripWhitespace(text)
	if len(glyphs) != size*size {
		return hexboard.Board{}, parseErrf("expected %d glyphs, got %d", size*size, len(glyphs))
	}

	var vertIdx, horzIdx []int
	for i, r := range glyphs {
		switch r {
		case 'X':
			vertIdx = append(vertIdx, i)
		case 'O':
			horzIdx = append(horzIdx, i)
		case '.', '-', '·':
			// vacant
		default:
			return hexboard.Board{}, parseErrf("unexpected glyph %q at cell %d", r, i)
		}
	}

	vert, err := cellset.FromList(size, vertIdx)
	if err != nil {
		return hexboard.Board{}, err
	}
	horz, err := cellset.FromList(size, horzIdx)
	if err != nil {
		return hexboard.Board{}, err
	}
	return hexboard.FromCells(size, vert, horz, nil)
}

func stripWhitespace(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
