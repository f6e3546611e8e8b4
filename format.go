package jitter

import (
	"fmt"
	"strconv"
	"strings"
)

// Points is an ordered list of coordinates, as produced by the generators.
type Points []Point

// String formats p as "X,Y" using the shortest decimal representation
// of each coordinate.
func (p Point) String() string {
	return formatCoordinate(p.X) + "," + formatCoordinate(p.Y)
}

// String formats the list as "x1,y1 x2,y2 ...", the syntax of the SVG
// points attribute.
func (p Points) String() string {
	var sb strings.Builder
	for i, point := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(point.String())
	}
	return sb.String()
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinCoordinates joins "X,Y" pairs into a single points attribute.
func JoinCoordinates(pairs []string) string {
	return strings.Join(pairs, " ")
}

// ParsePoints reads a points attribute back into a list. Pairs are
// separated by whitespace, coordinates within a pair by a single comma.
func ParsePoints(s string) (Points, error) {
	fields := strings.Fields(s)
	points := make(Points, 0, len(fields))

	for _, field := range fields {
		x, y, found := strings.Cut(field, ",")
		if !found {
			return nil, fmt.Errorf("%w: %q is not an X,Y pair", ErrMalformedPoints, field)
		}
		px, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPoints, err)
		}
		py, err := strconv.ParseFloat(y, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPoints, err)
		}
		points = append(points, Point{X: px, Y: py})
	}

	return points, nil
}
