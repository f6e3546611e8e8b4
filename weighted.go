package jitter

import (
	"fmt"

	"github.com/linework/jitter/internal/fenwick"
)

// Weights is a mutable list of non-negative integer weights that
// WeightedIndex samples from. Updates and draws are O(log n). The zero
// value is an empty list.
type Weights struct {
	list fenwick.List
}

// NewWeights returns a Weights holding w.
func NewWeights(w ...uint64) *Weights {
	return &Weights{list: *fenwick.New(w...)}
}

// Len returns the number of weights.
func (w *Weights) Len() int {
	return w.list.Len()
}

// Get returns the weight at index i.
func (w *Weights) Get(i int) uint64 {
	return w.list.Get(i)
}

// Set changes the weight at index i. It panics if i is out of range.
func (w *Weights) Set(i int, weight uint64) {
	if i < 0 || i >= w.list.Len() {
		panic(fmt.Sprintf("jitter: weight index %d out of range [0, %d)", i, w.list.Len()))
	}
	w.list.Set(i, weight)
}

// Total returns the sum of all weights.
func (w *Weights) Total() uint64 {
	return w.list.Sum(w.list.Len())
}

// WeightedIndex returns index i with probability w[i]/Total().
// Indices with zero weight are never returned.
func (g *Generator) WeightedIndex(w *Weights) (int, error) {
	total := w.Total()
	if total == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", ErrInvalidArgument)
	}

	target := uint64(g.rng.Float64() * float64(total))
	if target >= total {
		target = total - 1
	}

	return w.list.Find(target), nil
}
