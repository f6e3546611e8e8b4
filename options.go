package jitter

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Option configures a Generator at construction time.
type Option func(*Generator) error

// Generator produces random numbers, samples and point sets from a
// single RNG. The zero value is not usable; build one with New.
type Generator struct {
	rng    RNG
	logger zerolog.Logger
}

// New creates a Generator. Without options it draws from the
// process-wide math/rand source and discards its log output.
func New(options ...Option) (*Generator, error) {
	g := &Generator{
		rng:    &globalRNG{},
		logger: zerolog.Nop(),
	}

	for _, option := range options {
		err := option(g)
		if err != nil {
			return nil, err
		}
	}

	return g, nil
}

// RandomNumberGenerator sets the source the generator draws from.
//
// Sources are not required to be safe for concurrent use. Whenever the
// given source is not, the generator inherits the restriction.
func RandomNumberGenerator(rng RNG) Option {
	return func(g *Generator) error {
		if rng == nil {
			return fmt.Errorf("%w: nil random number generator", ErrInvalidArgument)
		}
		g.rng = rng
		return nil
	}
}

// LocalRandomNumberGenerator makes the generator use a private
// math/rand source seeded with seed, so that its output is reproducible.
// Such a generator must not be shared between goroutines.
func LocalRandomNumberGenerator(seed int64) Option {
	return func(g *Generator) error {
		g.rng = newLocalRNG(seed)
		return nil
	}
}

// Logger sets the logger generated points are reported to at debug level.
func Logger(logger zerolog.Logger) Option {
	return func(g *Generator) error {
		g.logger = logger
		return nil
	}
}
