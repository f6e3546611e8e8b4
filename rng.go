package jitter

import (
	"math/rand"
)

// RNG is the single source of randomness a Generator draws from.
// Float64 must return a uniformly distributed value in [0, 1).
type RNG interface {
	Float64() float64
}

type globalRNG struct{}

func (r *globalRNG) Float64() float64 {
	return rand.Float64()
}

// localRNG is not safe for concurrent use.
type localRNG struct {
	localRand *rand.Rand
}

func newLocalRNG(seed int64) *localRNG {
	return &localRNG{
		localRand: rand.New(rand.NewSource(seed)),
	}
}

func (r *localRNG) Float64() float64 {
	return r.localRand.Float64()
}
