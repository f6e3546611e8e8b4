// Package jitter supplies randomized inputs for decorative line-art:
// uniform numeric primitives, slice utilities built on them, and
// generators for point sets that approximate boxes and polygons.
//
// Every draw goes through a Generator, which wraps a single RNG. The
// default Generator uses the process-wide math/rand source; pass
// LocalRandomNumberGenerator or RandomNumberGenerator to New for
// reproducible output.
//
//	g, _ := jitter.New(jitter.LocalRandomNumberGenerator(42))
//	points, _ := g.RandomPolygon(jitter.Region{W: 10, H: 10, Count: 6})
//	fmt.Printf("<polygon points=%q/>", points)
package jitter
