package seqs

import (
	"iter"

	"lazyseq/lists"
)

// tupleIter is the pull interface shared by the combinatorial generators.
type tupleIter[T any] interface {
	Next() ([]T, bool)
	Stop()
}

// tupleSeq adapts a generator factory to a range-over-func sequence.
// A fresh generator is built for every range loop and stopped when it ends.
func tupleSeq[T any](newIter func() tupleIter[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		it := newIter()
		defer it.Stop()
		for {
			tuple, ok := it.Next()
			if !ok || !yield(tuple) {
				return
			}
		}
	}
}

// CombinationsIter yields every k-element combination of a source, in
// lexicographic order of source positions.
//
// The source is buffered lazily: only as many elements are pulled as the
// current index state needs, so the source length is discovered on the way.
// Each tuple is a new slice the caller may keep.
type CombinationsIter[T any] struct {
	pool    *lists.LazyBuffer[T]
	indices []int
	first   bool
	done    bool
}

// NewCombinationsIter takes ownership of seq. It panics if k is negative.
func NewCombinationsIter[T any](seq iter.Seq[T], k int) *CombinationsIter[T] {
	checkArity(k)
	c := &CombinationsIter[T]{
		pool: lists.NewLazyBuffer(seq, lists.WithCapacityHint(k)),
	}
	c.reset(k)
	return c
}

// reset restarts enumeration with arity k over the same buffered source.
func (c *CombinationsIter[T]) reset(k int) {
	if cap(c.indices) >= k {
		c.indices = c.indices[:k]
	} else {
		c.indices = make([]int, k)
	}
	for i := range c.indices {
		c.indices[i] = i
	}
	c.first = true
	c.done = false
}

// K returns the arity.
func (c *CombinationsIter[T]) K() int {
	return len(c.indices)
}

// N returns the number of source elements buffered so far. It is the source
// length once the generator has been exhausted.
func (c *CombinationsIter[T]) N() int {
	return c.pool.Len()
}

func (c *CombinationsIter[T]) Next() ([]T, bool) {
	if c.done {
		return nil, false
	}
	if c.first {
		c.first = false
		if k := c.K(); c.pool.Prefill(k) < k {
			c.done = true
			return nil, false
		}
	} else if !c.advance() {
		c.done = true
		return nil, false
	}
	return c.pool.Pick(c.indices), true
}

func (c *CombinationsIter[T]) Stop() {
	c.done = true
	c.pool.Stop()
}

// advance moves indices to the next combination and reports false when none is left.
func (c *CombinationsIter[T]) advance() bool {
	k := len(c.indices)
	if k == 0 {
		return false
	}
	// the last index reached the buffered end: try to discover one more element
	if c.indices[k-1] == c.pool.Len()-1 {
		c.pool.GetNext()
	}
	n := c.pool.Len()

	i := k - 1
	for i >= 0 && c.indices[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}

	c.indices[i]++
	for j := i + 1; j < k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	checkIncreasing(c.indices, n, true)
	return true
}

// checkIncreasing verifies that indices are in range and increasing,
// strictly if strict is set.
func checkIncreasing(indices []int, n int, strict bool) {
	for i, idx := range indices {
		if idx < 0 || idx >= n {
			brokenInvariant("index %d out of range [0,%d)", idx, n)
		}
		if i == 0 {
			continue
		}
		prev := indices[i-1]
		if strict && idx <= prev || !strict && idx < prev {
			brokenInvariant("index state %v out of order", indices)
		}
	}
}

// Combinations yields all k-length combinations of the elements of seq.
//
// Elements are picked by position, so duplicates in seq give duplicate tuples.
// With k == 0 there is exactly one, empty, combination; with k larger than the
// source length there are none. seq must be finite for the enumeration to end.
func Combinations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	checkArity(k)
	return tupleSeq(func() tupleIter[T] {
		return NewCombinationsIter(seq, k)
	})
}
