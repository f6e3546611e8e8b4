package jitter

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
)

// Anchor ratios of the ring table, in tenths of the bounding region.
// Walked in order they trace a perimeter-biased loop inside a unit box:
//
//	0,0 --------- 1,0
//	 |  1,1 - 1,8  |
//	 |  |       |  |
//	 |  8,1 - 8,8  |
//	0,1 --------- 1,1
var (
	ringX = [10]float64{1, 2, 4, 7, 8, 8, 7, 4, 2, 1}
	ringY = [10]float64{4, 7, 8, 8, 7, 4, 2, 1, 1, 2}
)

// polygonJitter bounds the angular perturbation of each polygon vertex, in radians.
const polygonJitter = 0.01

// RingTable returns a copy of the anchor ratios RandomBox buckets points into.
func RingTable() (x, y [10]float64) {
	return ringX, ringY
}

// Point is a coordinate pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Region is the bounding region a generator scales its output to,
// together with the number of points to produce.
type Region struct {
	W, H  float64
	Count int
}

// DefaultRegion is a 10x10 region with 4 points, which generators
// scale to a 100x100 drawing.
func DefaultRegion() Region {
	return Region{W: 10, H: 10, Count: 4}
}

// maxCoordinate bounds every generated coordinate so that integer draws
// stay exact in a float64 and fit in an int.
const maxCoordinate = 1 << 53

func (r Region) validate() error {
	if r.Count <= 0 {
		return fmt.Errorf("%w: count must be > 0, got %d", ErrInvalidArgument, r.Count)
	}
	if !finite(r.W, r.H) || r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: region %vx%v must be finite and not negative", ErrInvalidArgument, r.W, r.H)
	}
	if r.W*10 > maxCoordinate || r.H*10 > maxCoordinate {
		return fmt.Errorf("%w: region %vx%v exceeds %v", ErrInvalidArgument, r.W, r.H, maxCoordinate/10)
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// RandomBox returns r.Count integer-valued points scattered along the
// ring table. Point i falls in bucket i*10/Count, so the buckets are
// visited in order and every index stays within the table. Within its
// bucket a point is drawn from a cell one hundredth of the region in
// area.
func (g *Generator) RandomBox(r Region) (Points, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	points := make(Points, r.Count)
	for i := range points {
		index := i * len(ringX) / r.Count
		points[i] = Point{
			X: float64(g.Int(r.W*ringX[index], r.W*(ringX[index]+0.1))),
			Y: float64(g.Int(r.H*ringY[index], r.H*(ringY[index]+0.1))),
		}
		g.logger.Debug().
			Int("bucket", index).
			Float64("x", points[i].X).
			Float64("y", points[i].Y).
			Msg("box point")
	}

	return points, nil
}

// RandomPolygon returns the r.Count vertices of a regular polygon whose
// angles are each perturbed by less than polygonJitter radians. The
// circumscribed circle is centered at (W*5, H*5) with radius
// ((W+H)/2)*5. Vertices follow ascending angle and are rounded to two
// decimals.
func (g *Generator) RandomPolygon(r Region) (Points, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	angles := make([]s1.Angle, r.Count)
	for i := range angles {
		slice := 2 * math.Pi * float64(i) / float64(r.Count)
		angles[i] = s1.Angle(slice + g.Number(-polygonJitter, polygonJitter))
	}
	Sort(angles)

	radius := ((r.W + r.H) / 2) * 5
	center := r2.Point{X: r.W * 5, Y: r.H * 5}

	points := make(Points, len(angles))
	for i, a := range angles {
		v := center.Add(r2.Point{X: math.Cos(a.Radians()), Y: math.Sin(a.Radians())}.Mul(radius))
		points[i] = Point{X: Round(v.X, 2), Y: Round(v.Y, 2)}
		g.logger.Debug().
			Float64("angle", a.Radians()).
			Float64("x", points[i].X).
			Float64("y", points[i].Y).
			Msg("polygon vertex")
	}

	return points, nil
}

// Offset describes a quadrilateral around the anchor (X, Y). Each corner
// is displaced from the anchor by between Min and Max times the region
// size W x H, on each axis.
type Offset struct {
	W, H float64
	X, Y float64
	Min  float64
	Max  float64
}

func (o Offset) validate() error {
	if !finite(o.W, o.H, o.X, o.Y, o.Min, o.Max) {
		return fmt.Errorf("%w: offset %+v has a non-finite field", ErrInvalidArgument, o)
	}
	if o.Min > o.Max {
		return fmt.Errorf("%w: offset min %v > max %v", ErrInvalidArgument, o.Min, o.Max)
	}
	if o.W < 0 || o.H < 0 {
		return fmt.Errorf("%w: region %vx%v must not be negative", ErrInvalidArgument, o.W, o.H)
	}
	scale := math.Max(math.Abs(o.Min), math.Abs(o.Max))
	if math.Abs(o.X)+o.W*scale > maxCoordinate || math.Abs(o.Y)+o.H*scale > maxCoordinate {
		return fmt.Errorf("%w: offset %+v reaches past %v", ErrInvalidArgument, o, float64(maxCoordinate))
	}
	return nil
}

// PolygonWithOffset returns the corners of a random quadrilateral around
// o's anchor as "X,Y" strings, in the order top-left, top-right,
// bottom-right, bottom-left. The result can be joined with
// JoinCoordinates into a points attribute.
func (g *Generator) PolygonWithOffset(o Offset) ([4]string, error) {
	if err := o.validate(); err != nil {
		return [4]string{}, err
	}

	dx := func() float64 { return float64(g.Int(o.W*o.Min, o.W*o.Max)) }
	dy := func() float64 { return float64(g.Int(o.H*o.Min, o.H*o.Max)) }

	corners := [4]Point{
		{X: o.X - dx(), Y: o.Y - dy()},
		{X: o.X + dx(), Y: o.Y - dy()},
		{X: o.X + dx(), Y: o.Y + dy()},
		{X: o.X - dx(), Y: o.Y + dy()},
	}

	var out [4]string
	for i, c := range corners {
		out[i] = c.String()
	}
	g.logger.Debug().Strs("points", out[:]).Msg("polygon with offset")

	return out, nil
}
