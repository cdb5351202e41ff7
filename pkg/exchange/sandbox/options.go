package sandbox

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

type Option func(*Engine)

// WithLogger overrides the logger built from Config.Log.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRandomizedPaths draws every synthetic path from rng instead of the
// per-bar deterministic seed. A nil rng is seeded from the clock.
func WithRandomizedPaths(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		e.rng = rng
	}
}

// WithClock sets the time source used to stamp trades when the market data
// carries no timestamp.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}
