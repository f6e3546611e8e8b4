package jitter

// Pick returns a uniformly chosen element of s. ok is false when s is
// empty.
func Pick[T any](g *Generator, s []T) (v T, ok bool) {
	if len(s) == 0 {
		return v, false
	}
	return s[int(g.rng.Float64()*float64(len(s)))], true
}
