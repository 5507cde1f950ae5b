// Command hexdemo parses a Hex board from the command line, runs the
// solver, and prints the winner and its proof pattern.
//
// Usage:
//
//	hexdemo -size 3 -board "X..O.X..."
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexfmt"
	"github.com/katalvlaran/hexlath/pattern"
	"github.com/katalvlaran/hexlath/solver"
)

func main() {
	size := flag.Int("size", 3, "board side length S, 1 <= S <= 13")
	board := flag.String("board", "", "S*S glyphs: X, O, '.', '-' or middle-dot for vacant")
	flag.Parse()

	if *board == "" {
		log.Fatal("hexdemo: -board is required")
	}

	// 1) Parse the textual board into a position.
	b, err := hexfmt.Parse(*size, *board)
	if err != nil {
		log.Fatalf("hexdemo: parse board: %v", err)
	}

	// 2) Run the solver.
	winner, witness, err := solver.Search(b)
	if err != nil {
		log.Fatalf("hexdemo: search: %v", err)
	}

	// 3) Report the result.
	fmt.Printf("winner: %s\n", winner)
	fmt.Printf("state:  %s\n", hexfmt.FormatState(b))

	rendered, err := hexfmt.Render(*size, map[rune]cellset.Set{
		'X': b.VerticalCells(),
		'O': b.HorizontalCells(),
	})
	if err != nil {
		log.Fatalf("hexdemo: render: %v", err)
	}
	fmt.Println(rendered)

	fmt.Printf("proof footprint: %v (cost %d)\n", witness.Body().Elements(), witness.Cost())
	if witness.Kind() == pattern.KindThreat {
		fmt.Printf("  play: %d\n", witness.Play())
	}
}
