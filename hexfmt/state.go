package hexfmt

import (
	"strings"

	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexboard"
)

// FormatState renders b as the round-trippable state string
// "P:GGG…G": P is the side to move, and each G is 'X', 'O', or '-' for
// cell i in row-major order.
func FormatState(b hexboard.Board) string {
	var sb strings.Builder
	sb.WriteString(b.Player().String())
	sb.WriteByte(':')
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		switch {
		case b.VerticalCells().Test(i):
			sb.WriteByte('X')
		case b.HorizontalCells().Test(i):
			sb.WriteByte('O')
		default:
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// ParseState reads a state string "P:GGG…G" produced by FormatState. The
// board size is inferred from the glyph count, which must be a perfect
// square within cellset's supported range.
func ParseState(s string) (hexboard.Board, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return hexboard.Board{}, parseErrf("missing ':' separator")
	}
	playerPart, cellsPart := s[:idx], s[idx+1:]

	var toMove hexboard.Player
	switch playerPart {
	case "X":
		toMove = hexboard.X
	case "O":
		toMove = hexboard.O
	default:
		return hexboard.Board{}, parseErrf("invalid side to move %q", playerPart)
	}

	glyphs := []rune(cellsPart)
	size := isqrt(len(glyphs))
	if size < cellset.MinSize || size > cellset.MaxSize || size*size != len(glyphs) {
		return hexboard.Board{}, parseErrf("cell count %d is not a supported board size", len(glyphs))
	}

	var vertIdx, horzIdx []int
	for i, r := range glyphs {
		switch r {
		case 'X':
			vertIdx = append(vertIdx, i)
		case 'O':
			horzIdx = append(horzIdx, i)
		case '-':
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
	return hexboard.FromCells(size, vert, horz, &toMove)
}

// isqrt returns the integer square root of n, or a value whose square
// isn't n if n is not a perfect square (the caller checks size*size ==
// n to detect that case).
func isqrt(n int) int {
	if n < 0 {
		return 0
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
