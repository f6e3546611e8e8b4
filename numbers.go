package jitter

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"gonum.org/v1/gonum/floats/scalar"
)

// Integers representable as int are exactly [minIntFloat, maxIntFloat).
const (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = -float64(math.MinInt)
)

// Range is a pair of bounds. Whether Max is inclusive depends on the
// operation consuming it.
type Range struct {
	Min, Max float64
}

// Round rounds v to the given number of decimal places. Halves are
// rounded away from zero, so Round(2.5, 0) == 3 and Round(-2.5, 0) == -3.
func Round(v float64, decimals int) float64 {
	return scalar.Round(v, decimals)
}

// Number returns a uniformly distributed value in [min, max).
func (g *Generator) Number(min, max float64) float64 {
	return g.rng.Float64()*(max-min) + min
}

// NumberOf is Number for loosely typed bounds such as strings read from
// markup attributes or query strings. Bounds that cannot be converted to
// a finite float64 yield ErrInvalidArgument.
func (g *Generator) NumberOf(min, max any) (float64, error) {
	lo, err := toFinite(min)
	if err != nil {
		return 0, err
	}
	hi, err := toFinite(max)
	if err != nil {
		return 0, err
	}
	return g.Number(lo, hi), nil
}

func toFinite(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: bound %v is not finite", ErrInvalidArgument, v)
	}
	return f, nil
}

// Float returns min + U*(max-min+1) with U uniform in [0, 1).
//
// The result lies in [min, max+1): the range is one unit wider than
// max. Callers that need [min, max) should use Number.
func (g *Generator) Float(min, max float64) float64 {
	return g.rng.Float64()*(max-min+1) + min
}

// Int returns a uniformly distributed integer in [ceil(min), floor(max)].
//
// When no integer lies between min and max (for example Int(0.2, 0.8))
// the result is ceil(min). Int panics if max < min, if either bound is
// NaN, or if ceil(min) or floor(max) does not fit in an int.
func (g *Generator) Int(min, max float64) int {
	if math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("jitter: Int called with NaN bound (%v, %v)", min, max))
	}
	if max < min {
		panic(fmt.Sprintf("jitter: Int called with max (%v) < min (%v)", max, min))
	}
	lo := math.Ceil(min)
	hi := math.Floor(max)
	if lo < minIntFloat || hi >= maxIntFloat {
		panic(fmt.Sprintf("jitter: Int range [%v, %v] overflows int", min, max))
	}
	return int(math.Floor(g.rng.Float64()*(hi-lo+1)) + lo)
}
