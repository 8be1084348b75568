package seqs

import (
	"iter"

	"lazyseq/lists"
)

// CombinationsWithReplacementIter yields every k-length multiset of source
// positions as non-decreasing index tuples, in lexicographic order.
type CombinationsWithReplacementIter[T any] struct {
	pool    *lists.LazyBuffer[T]
	indices []int
	first   bool
	done    bool
}

// NewCombinationsWithReplacementIter takes ownership of seq.
// It panics if k is negative.
func NewCombinationsWithReplacementIter[T any](seq iter.Seq[T], k int) *CombinationsWithReplacementIter[T] {
	checkArity(k)
	return &CombinationsWithReplacementIter[T]{
		pool:    lists.NewLazyBuffer(seq),
		indices: make([]int, k),
		first:   true,
	}
}

func (c *CombinationsWithReplacementIter[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	if c.first {
		c.first = false
		// k > 0 over an empty source has no tuple; k == 0 has the empty one
		if len(c.indices) > 0 && c.pool.Prefill(1) == 0 {
			c.done = true
			return nil, false
		}
	} else if !c.advance() {
		c.done = true
		return nil, false
	}
	return c.pool.Pick(c.indices), true
}

func (c *CombinationsWithReplacementIter[T]) Stop() {
	c.done = true
	c.pool.Stop()
}

func (c *CombinationsWithReplacementIter[T]) advance() bool {
	k := len(c.indices)
	if k == 0 {
		return false
	}
	if c.indices[k-1] == c.pool.Len()-1 {
		c.pool.GetNext()
	}
	n := c.pool.Len()

	i := k - 1
	for i >= 0 && c.indices[i] == n-1 {
		i--
	}
	if i < 0 {
		return false
	}

	// every trailing index takes the incremented value
	v := c.indices[i] + 1
	for j := i; j < k; j++ {
		c.indices[j] = v
	}
	checkIncreasing(c.indices, n, false)
	return true
}

// CombinationsWithReplacement yields all k-length combinations of the elements
// of seq where each element may be picked more than once.
// For a source of n elements there are C(n+k-1, k) tuples.
func CombinationsWithReplacement[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	checkArity(k)
	return tupleSeq(func() tupleIter[T] {
		return NewCombinationsWithReplacementIter(seq, k)
	})
}
