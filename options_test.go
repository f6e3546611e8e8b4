package jitter

import (
	"errors"
	"testing"

	rng "github.com/leesper/go_rng"
)

// constRNG always yields the same draw.
type constRNG float64

func (c constRNG) Float64() float64 {
	return float64(c)
}

func seeded(t testing.TB, seed int64) *Generator {
	t.Helper()
	g, err := New(RandomNumberGenerator(rng.NewUniformGenerator(seed)))
	if err != nil {
		t.Fatalf("Creating a seeded generator should never error out. Got %s", err)
	}
	return g
}

func fixed(t testing.TB, u float64) *Generator {
	t.Helper()
	g, err := New(RandomNumberGenerator(constRNG(u)))
	if err != nil {
		t.Fatalf("Creating a fixed generator should never error out. Got %s", err)
	}
	return g
}

func TestDefaults(t *testing.T) {
	g, err := New()

	if err != nil {
		t.Errorf("Creating a default Generator should never error out. Got %s", err)
	}

	if _, ok := g.rng.(*globalRNG); !ok {
		t.Errorf("The default generator should draw from the global source. Got %T", g.rng)
	}
}

func TestRandomNumberGenerator(t *testing.T) {
	g, err := New(RandomNumberGenerator(constRNG(0.25)))
	if err != nil || g.rng.Float64() != 0.25 {
		t.Errorf("The RandomNumberGenerator option should replace the source")
	}

	g, err = New(RandomNumberGenerator(nil))
	if !errors.Is(err, ErrInvalidArgument) || g != nil {
		t.Errorf("Trying to create a generator with a nil source should give an error. Got %v", err)
	}
}

func TestLocalRandomNumberGenerator(t *testing.T) {
	g1, _ := New(LocalRandomNumberGenerator(0xDEADBEEF))
	g2, _ := New(LocalRandomNumberGenerator(0xDEADBEEF))

	for i := 0; i < 100; i++ {
		a, b := g1.Int(0, 1000), g2.Int(0, 1000)
		if a != b {
			t.Fatalf("Generators with the same seed diverged at draw %d: %d != %d", i, a, b)
		}
	}
}
