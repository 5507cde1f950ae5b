package solver

import (
	"math/rand"
	"time"
)

// Option customizes a Search call. As a rule, option constructors never
// panic at runtime and ignore invalid inputs.
type Option func(cfg *config)

// config holds Search's configurable parameters:
//   - rng: move-shuffle source (spec requires shuffling candidate order
//     so ties among equally-good proofs don't always resolve the same
//     way).
//   - deadline: optional wall-clock bound; zero means none.
//   - depthCap: optional recursion-depth bound; zero means none.
//
// config is not safe for concurrent reuse; each Search call builds its
// own via newConfig.
type config struct {
	rng      *rand.Rand
	deadline time.Time
	depthCap int
}

// newConfig returns a config initialized with defaults (a fixed-seed
// RNG, no deadline, no depth cap), then applies each Option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRNG injects a custom move-shuffle source. If rng is nil, this
// option is a no-op.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithDeadline bounds Search's total wall-clock time; once exceeded, any
// recursive call still in flight returns ErrDeadlineExceeded instead of
// continuing. This is an out-of-band safety valve, not part of the
// decision procedure itself: every legal position has a well-defined
// winner, so a sufficiently patient caller can always omit this option.
func WithDeadline(deadline time.Time) Option {
	return func(cfg *config) {
		cfg.deadline = deadline
	}
}

// WithDepthCap bounds Search's recursion depth; once exceeded, the
// in-flight call returns ErrDepthExceeded. Depth 0 means the call on the
// board Search was originally invoked with.
func WithDepthCap(depth int) Option {
	return func(cfg *config) {
		if depth > 0 {
			cfg.depthCap = depth
		}
	}
}
