package fenwick

import (
	"math/rand"
	"testing"
)

func naiveSum(a []uint64, i int) uint64 {
	var sum uint64
	for _, v := range a[:i] {
		sum += v
	}
	return sum
}

func TestSumAndGet(t *testing.T) {
	a := make([]uint64, 37)
	for i := range a {
		a[i] = uint64(rand.Intn(100))
	}
	l := New(a...)

	if l.Len() != len(a) {
		t.Fatalf("Len() = %d, expected %d", l.Len(), len(a))
	}
	for i := 0; i <= len(a); i++ {
		if got := l.Sum(i); got != naiveSum(a, i) {
			t.Errorf("Sum(%d) = %d, expected %d", i, got, naiveSum(a, i))
		}
	}
	for i, v := range a {
		if l.Get(i) != v {
			t.Errorf("Get(%d) = %d, expected %d", i, l.Get(i), v)
		}
	}
}

func TestSet(t *testing.T) {
	a := []uint64{5, 0, 2, 9, 1, 1}
	l := New(a...)

	l.Set(3, 0)
	l.Set(1, 4)
	a[3], a[1] = 0, 4

	for i := 0; i <= len(a); i++ {
		if got := l.Sum(i); got != naiveSum(a, i) {
			t.Errorf("Sum(%d) after Set = %d, expected %d", i, got, naiveSum(a, i))
		}
	}
}

func TestFind(t *testing.T) {
	a := []uint64{0, 3, 0, 0, 2, 5, 0, 1}
	l := New(a...)

	total := l.Sum(l.Len())
	for target := uint64(0); target < total; target++ {
		want := 0
		for naiveSum(a, want+1) <= target {
			want++
		}
		if got := l.Find(target); got != want {
			t.Errorf("Find(%d) = %d, expected %d", target, got, want)
		}
	}

	if l.Find(total) != l.Len() {
		t.Errorf("Find(total) should return Len()")
	}
	if New().Find(0) != 0 {
		t.Errorf("Find on an empty list should return 0")
	}
}
