package solver

import (
	"time"

	"github.com/katalvlaran/hexlath/cellset"
	"github.com/katalvlaran/hexlath/hexboard"
	"github.com/katalvlaran/hexlath/oracle"
	"github.com/katalvlaran/hexlath/pattern"
)

// Search decides the winner of b and returns a minimal proof: if the
// side to move (b.Player()) has a forced win, the winner is that side
// and the pattern is the cheapest winning Threat found; otherwise the
// winner is the opponent and the pattern is the minimised Fork of
// threats that survives every reply.
//
// Search is deterministic given the same RNG (WithRNG); by default it
// uses a fixed-seed RNG, so repeated calls on the same position return
// the same result. A different RNG may explore moves in a different
// order and return a different proof, but always the same winner.
func Search(b hexboard.Board, opts ...Option) (hexboard.Player, pattern.Pattern, error) {
	return searchAt(b, newConfig(opts...), 0)
}

func searchAt(b hexboard.Board, cfg *config, depth int) (hexboard.Player, pattern.Pattern, error) {
	if err := cfg.checkBounds(depth); err != nil {
		return hexboard.Unset, pattern.Pattern{}, err
	}

	m := b.Player()
	opponent := m.Opponent()

	// A board handed to Search may already be decided — fully played out,
	// or with too few vacant cells left for the losing side to matter.
	// Report the already-connected side outright rather than running a
	// search whose tines would stay empty.
	if oracle.Winner(b, m) == m {
		return m, terminalThreat(b), nil
	}
	if oracle.Winner(b, opponent) == opponent {
		return opponent, terminalThreat(b), nil
	}

	must := b.Empty()
	moves := must.Elements()
	cfg.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	var bestWin pattern.Pattern
	haveBest := false
	var tines []pattern.Pattern

	for _, c := range moves {
		if !must.Test(c) {
			continue // must has narrowed since the candidate list was fixed
		}

		played, err := b.Play(c)
		if err != nil {
			return hexboard.Unset, pattern.Pattern{}, err
		}

		var candidate pattern.Pattern
		gotThreat := false

		if oracle.Winner(played, m) == m {
			body, err := cellset.Single(b.Size(), c)
			if err != nil {
				return hexboard.Unset, pattern.Pattern{}, err
			}
			candidate = pattern.NewThreat(c, body, nil)
			gotThreat = true
		} else {
			wSub, sub, err := searchAt(played, cfg, depth+1)
			if err != nil {
				return hexboard.Unset, pattern.Pattern{}, err
			}
			switch wSub {
			case m:
				body, err := cellset.Single(b.Size(), c)
				if err != nil {
					return hexboard.Unset, pattern.Pattern{}, err
				}
				body = body.Union(sub.Body())
				subCopy := sub
				candidate = pattern.NewThreat(c, body, &subCopy)
				gotThreat = true
			case opponent:
				must = must.Intersect(sub.Body())
				tines = append(tines, sub)
			}
		}

		if gotThreat && (!haveBest || candidate.Less(bestWin)) {
			bestWin = candidate
			haveBest = true
		}
	}

	if haveBest {
		return m, bestWin, nil
	}

	fork := pattern.NewFork(tines)
	min, err := fork.MinimumFork()
	if err != nil {
		return hexboard.Unset, pattern.Pattern{}, err
	}
	return opponent, min, nil
}

// terminalThreat builds the documented witness for a board that is
// already decided before any further move: a Threat naming an arbitrary
// cell with no sub-pattern. Cell 0 always exists (board size is always
// >= 1), so the construction cannot fail.
func terminalThreat(b hexboard.Board) pattern.Pattern {
	body, err := cellset.Single(b.Size(), 0)
	mustNoErr(err)
	return pattern.NewThreat(0, body, nil)
}

func mustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

func (cfg *config) checkBounds(depth int) error {
	if !cfg.deadline.IsZero() && !time.Now().Before(cfg.deadline) {
		return ErrDeadlineExceeded
	}
	if cfg.depthCap > 0 && depth > cfg.depthCap {
		return ErrDepthExceeded
	}
	return nil
}
