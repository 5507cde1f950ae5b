package hexfmt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/hexlath/cellset"
)

// Render formats a board of the given size as one header row ("a b c
// …") and S data rows ("k: v v v …" for k = 1..S), each data row
// indented one more space than the previous to show the rhombus's
// left-leaning shape. Cells are rendered via glyphs, a caller-supplied
// mapping from display glyph to the CellSet of cells that glyph marks;
// a cell in none of the given sets renders as '-'. If a cell belongs to
// more than one set, the lowest glyph (by rune value) wins, so callers
// should pass disjoint sets for an unambiguous render.
func Render(size int, glyphs map[rune]cellset.Set) (string, error) {
	keys := make([]rune, 0, len(glyphs))
	for g := range glyphs {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var sb strings.Builder
	sb.WriteString(header(size))

	for r := 0; r < size; r++ {
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%d:%s", r+1, strings.Repeat(" ", r+1))
		for c := 0; c < size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			idx := r*size + c
			sb.WriteRune(glyphAt(idx, keys, glyphs))
		}
	}
	return sb.String(), nil
}

func glyphAt(idx int, keys []rune, glyphs map[rune]cellset.Set) rune {
	for _, g := range keys {
		if glyphs[g].Test(idx) {
			return g
		}
	}
	return '-'
}

func header(size int) string {
	letters := make([]string, size)
	for i := 0; i < size; i++ {
		letters[i] = string(rune('a' + i))
	}
	return strings.Join(letters, " ")
}
