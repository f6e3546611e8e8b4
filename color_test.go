package jitter

import (
	"regexp"
	"strings"
	"testing"
)

func TestRGB(t *testing.T) {
	g := seeded(t, 7)

	for i := 0; i < 1000; i++ {
		c := g.RGB(DefaultChannel, Range{Min: 100, Max: 120}, Range{Min: 0, Max: 0})
		if c.R < 0 || c.R > 255 || c.G < 100 || c.G > 120 || c.B != 0 {
			t.Fatalf("RGB() produced a channel outside its range: %v", c)
		}
	}
}

func TestColorHex(t *testing.T) {
	c := Color{R: 255, G: 0, B: 16}
	if c.Hex() != "#ff0010" {
		t.Errorf("Expected %v to format as #ff0010. Got %s", c, c.Hex())
	}
	if c.String() != "rgb(255,0,16)" {
		t.Errorf("Unexpected String() for %#v: %s", c, c)
	}
}

func TestHexFromString(t *testing.T) {
	g := seeded(t, 11)

	for i := 0; i < 1000; i++ {
		h := g.HexFromString()
		if len(h) != 6 || strings.Trim(h, hexAlphabet) != "" {
			t.Fatalf("HexFromString() should return 6 hex digits. Got %q", h)
		}
	}

	if h := fixed(t, 0.999999).HexFromString(); h != "ffffff" {
		t.Errorf("Highest draw should pick the last symbol. Got %q", h)
	}
}

func TestHex(t *testing.T) {
	if h := fixed(t, 0).Hex(); h != "#000000" {
		t.Errorf("Hex() should zero-pad small values. Got %q", h)
	}

	format := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	g := seeded(t, 13)
	for i := 0; i < 1000; i++ {
		if h := g.Hex(); !format.MatchString(h) {
			t.Fatalf("Hex() should return #rrggbb. Got %q", h)
		}
	}
}
