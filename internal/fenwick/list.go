// Package fenwick provides a list of weights supporting prefix sums and
// prefix-sum search.
//
// A Fenwick tree, or binary indexed tree, represents the list as an
// implicit tree where the value of each node is the sum of the weights
// in that subtree. Updating a weight, computing a prefix sum and finding
// the element a given prefix sum falls into all run in O(log n) time,
// using the same amount of memory as a plain slice.
package fenwick

import "math/bits"

// List represents a list of weights. The zero value is an empty list.
type List struct {
	// The tree slice stores range sums of an underlying array t.
	// To compute the prefix sum t[0] + t[1] + t[k-1], add elements
	// which correspond to each 1 bit in the binary expansion of k.
	//
	// For example, the sum of the 13 first elements in t is computed
	// from 13 = 1101₂: the elements at indices 1101₂ - 1, 1100₂ - 1 and
	// 1000₂ - 1 hold t[12], t[8] + … t[11] and t[0] + … + t[7].
	tree []uint64
}

// New creates a new list with the given weights.
func New(n ...uint64) *List {
	len := len(n)
	t := make([]uint64, len)
	copy(t, n)
	for i := range t {
		if j := i | (i + 1); j < len {
			t[j] += t[i]
		}
	}
	return &List{
		tree: t,
	}
}

// Len returns the number of weights in the list.
func (l *List) Len() int {
	return len(l.tree)
}

// Get returns the weight at index i.
func (l *List) Get(i int) uint64 {
	sum := l.tree[i]
	j := i + 1
	j -= j & -j
	for i > j {
		sum -= l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Set sets the weight at index i to n.
func (l *List) Set(i int, n uint64) {
	n -= l.Get(i)
	for len := len(l.tree); i < len; i |= i + 1 {
		l.tree[i] += n
	}
}

// Sum returns the sum of the weights from index 0 to index i-1.
func (l *List) Sum(i int) uint64 {
	var sum uint64
	for i > 0 {
		sum += l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Find returns the smallest index i such that Sum(i+1) > target, or
// Len() if target is not below the total.
func (l *List) Find(target uint64) int {
	if len(l.tree) == 0 {
		return 0
	}
	pos := 0
	for step := 1 << (bits.Len(uint(len(l.tree))) - 1); step > 0; step >>= 1 {
		if next := pos + step; next <= len(l.tree) && l.tree[next-1] <= target {
			pos = next
			target -= l.tree[next-1]
		}
	}
	return pos
}
