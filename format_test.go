package jitter

import (
	"errors"
	"testing"
)

func TestPointsString(t *testing.T) {
	p := Points{{X: 10, Y: 40}, {X: 93.3, Y: -0.25}, {X: 1e6, Y: 0}}
	if s := p.String(); s != "10,40 93.3,-0.25 1000000,0" {
		t.Errorf("Expected \"10,40 93.3,-0.25 1000000,0\". Got %q", s)
	}
	if s := (Points{}).String(); s != "" {
		t.Errorf("Empty points should render as an empty string. Got %q", s)
	}
}

func TestParsePolygon(t *testing.T) {
	points, err := seeded(t, 4).RandomPolygon(Region{W: 7, H: 13, Count: 6})
	if err != nil {
		t.Fatalf("RandomPolygon should not error out. Got %s", err)
	}

	parsed, err := ParsePoints(points.String())
	if err != nil {
		t.Fatalf("Parsing %q should not error out. Got %s", points, err)
	}
	if len(parsed) != len(points) {
		t.Fatalf("Expected %d points. Got %d", len(points), len(parsed))
	}
	for i := range points {
		if parsed[i] != points[i] {
			t.Errorf("Point %d changed when parsed back: %v != %v", i, parsed[i], points[i])
		}
	}
}

func TestParsePointsWhitespace(t *testing.T) {
	parsed, err := ParsePoints("  1,2\n\t3.5,4   ")
	if err != nil {
		t.Fatalf("Surrounding whitespace should be ignored. Got %s", err)
	}
	if len(parsed) != 2 || parsed[0] != (Point{X: 1, Y: 2}) || parsed[1] != (Point{X: 3.5, Y: 4}) {
		t.Errorf("Expected [{1 2} {3.5 4}]. Got %v", parsed)
	}

	parsed, err = ParsePoints("")
	if err != nil || len(parsed) != 0 {
		t.Errorf("An empty string should parse to no points. Got %v (%v)", parsed, err)
	}
}

func TestParsePointsMalformed(t *testing.T) {
	for _, s := range []string{"1 2", "1,2 3", "a,1", "1,b", "1,2,3"} {
		if _, err := ParsePoints(s); !errors.Is(err, ErrMalformedPoints) {
			t.Errorf("Parsing %q should fail with ErrMalformedPoints. Got %v", s, err)
		}
	}
}
