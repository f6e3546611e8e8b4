package jitter

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types Sort accepts.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Populate returns a slice of n copies of v. Copies are shallow: pointer,
// slice and map values all alias the same underlying data.
func Populate[T any](v T, n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// PopulateInt returns n independent draws of Int(min, max).
func (g *Generator) PopulateInt(min, max float64, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = g.Int(min, max)
	}
	return s
}

// Shuffle permutes s in place (Fisher-Yates) and returns it.
func Shuffle[T any](g *Generator, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		other := int(g.rng.Float64() * float64(i+1))
		s[i], s[other] = s[other], s[i]
	}
	return s
}

// UniqueInts returns length distinct integers drawn without replacement
// from [min, max). A length of 0 returns the whole range, shuffled.
func (g *Generator) UniqueInts(min, max, length int) ([]int, error) {
	if max < min {
		return nil, fmt.Errorf("%w: empty range [%d, %d)", ErrInvalidArgument, min, max)
	}
	size := max - min
	if length < 0 || length > size {
		return nil, fmt.Errorf("%w: cannot draw %d unique values from [%d, %d)", ErrInvalidArgument, length, min, max)
	}
	if length == 0 {
		length = size
	}

	s := make([]int, size)
	for i := range s {
		s[i] = min + i
	}
	Shuffle(g, s)

	return s[:length:length], nil
}

// Sort sorts s in ascending numeric order and returns it.
func Sort[T Scalar](s []T) []T {
	slices.Sort(s)
	return s
}
