package jitter

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexAlphabet = "0123456789abcdef"

// DefaultChannel is the full 8-bit range of a color channel.
var DefaultChannel = Range{Min: 0, Max: 255}

// Color is an RGB color with integer channels in 0..255.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Colorful converts c for use with go-colorful's blending and color
// space functions.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns c as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// RGB draws each channel independently with Int over its range.
// Pass DefaultChannel for an unconstrained channel.
func (g *Generator) RGB(r, gr, b Range) Color {
	return Color{
		R: g.Int(r.Min, r.Max),
		G: g.Int(gr.Min, gr.Max),
		B: g.Int(b.Min, b.Max),
	}
}

// HexFromString returns six hex digits, each drawn independently. The
// result has no leading '#'.
func (g *Generator) HexFromString() string {
	var sb strings.Builder
	sb.Grow(6)
	for i := 0; i < 6; i++ {
		sb.WriteByte(hexAlphabet[g.Int(0, float64(len(hexAlphabet)-1))])
	}
	return sb.String()
}

// Hex returns a random color as "#rrggbb", zero padded.
func (g *Generator) Hex() string {
	return fmt.Sprintf("#%06x", g.Int(0, 0xffffff))
}
