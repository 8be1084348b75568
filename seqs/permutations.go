package seqs

import (
	"iter"

	"lazyseq/lists"
)

type permState uint8

const (
	// nothing emitted yet
	permStart permState = iota
	// source not fully buffered, n still unknown
	permBuffered
	// n known, odometer driving the enumeration
	permLoaded
	permEnd
)

// odometer enumerates k-permutations of n positions.
// Digit i counts down in cycles[i] with modulus n-i; a digit that wraps
// carries into digit i-1, like factorial-base counting.
type odometer struct {
	indices []int
	cycles  []int
}

func newOdometer(n, k int) *odometer {
	o := &odometer{
		indices: make([]int, n),
		cycles:  make([]int, k),
	}
	for i := range o.indices {
		o.indices[i] = i
	}
	for i := range o.cycles {
		o.cycles[i] = n - 1 - i
	}
	return o
}

// advance steps to the next permutation. It returns true when every digit
// wrapped, i.e. the enumeration is complete.
func (o *odometer) advance() bool {
	n := len(o.indices)
	for i := len(o.cycles) - 1; i >= 0; i-- {
		if o.cycles[i] == 0 {
			o.cycles[i] = n - 1 - i
			rotateLeft(o.indices[i:])
			continue
		}
		j := n - o.cycles[i]
		o.indices[i], o.indices[j] = o.indices[j], o.indices[i]
		o.cycles[i]--
		return false
	}
	return true
}

func (o *odometer) prefix() []int {
	return o.indices[:len(o.cycles)]
}

// check verifies that the counters are within their moduli and the emitted
// prefix holds distinct positions.
func (o *odometer) check(seen []bool) {
	n := len(o.indices)
	for i, c := range o.cycles {
		if c < 0 || c > n-1-i {
			brokenInvariant("cycle counter %d = %d outside [0,%d]", i, c, n-1-i)
		}
	}
	clear(seen)
	for _, idx := range o.prefix() {
		if idx < 0 || idx >= n || seen[idx] {
			brokenInvariant("permutation prefix %v is not a selection of [0,%d)", o.prefix(), n)
		}
		seen[idx] = true
	}
}

func rotateLeft(s []int) {
	if len(s) < 2 {
		return
	}
	first := s[0]
	copy(s, s[1:])
	s[len(s)-1] = first
}

// PermutationsIter yields every ordered selection of k distinct source
// positions.
//
// The order follows the odometer's cycle order, which is not lexicographic.
// While the source length is still unknown, the generator emits the
// permutations that only differ in their last position, pulling one new
// element per step; once the source runs dry it switches to the odometer,
// fast-forwarded past the tuples already produced.
type PermutationsIter[T any] struct {
	pool  *lists.LazyBuffer[T]
	k     int
	state permState
	minN  int
	odo   *odometer
	seen  []bool
}

// NewPermutationsIter takes ownership of seq. It panics if k is negative.
func NewPermutationsIter[T any](seq iter.Seq[T], k int) *PermutationsIter[T] {
	checkArity(k)
	return &PermutationsIter[T]{
		pool: lists.NewLazyBuffer(seq, lists.WithCapacityHint(k)),
		k:    k,
	}
}

func (p *PermutationsIter[T]) Next() ([]T, bool) {
	switch p.state {
	case permStart:
		if p.k == 0 {
			p.state = permEnd
			return []T{}, true
		}
		if p.pool.Prefill(p.k) < p.k {
			p.state = permEnd
			return nil, false
		}
		p.state = permBuffered
		p.minN = p.k
		return p.startTuple(p.k - 1), true

	case permBuffered:
		if p.pool.GetNext() {
			tuple := p.startTuple(p.minN)
			p.minN++
			return tuple, true
		}
		n := p.minN
		odo := newOdometer(n, p.k)
		// n-k+1 tuples went out while buffering; skip past them
		for range n - p.k + 1 {
			if odo.advance() {
				p.state = permEnd
				return nil, false
			}
		}
		p.odo = odo
		p.seen = make([]bool, n)
		p.state = permLoaded
		p.odo.check(p.seen)
		return p.pool.Pick(p.odo.prefix()), true

	case permLoaded:
		if p.odo.advance() {
			p.state = permEnd
			return nil, false
		}
		p.odo.check(p.seen)
		return p.pool.Pick(p.odo.prefix()), true

	default:
		return nil, false
	}
}

func (p *PermutationsIter[T]) Stop() {
	p.state = permEnd
	p.pool.Stop()
}

// startTuple picks positions 0..k-2 followed by last.
func (p *PermutationsIter[T]) startTuple(last int) []T {
	tuple := make([]T, p.k)
	for i := 0; i < p.k-1; i++ {
		tuple[i], _ = p.pool.Get(i)
	}
	tuple[p.k-1], _ = p.pool.Get(last)
	return tuple
}

// Permutations yields all k-length permutations of the elements of seq,
// n!/(n-k)! tuples for a source of n elements. Elements are picked by position.
// The emission order is the cycle order of the underlying odometer, not
// lexicographic order.
func Permutations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	checkArity(k)
	return tupleSeq(func() tupleIter[T] {
		return NewPermutationsIter(seq, k)
	})
}
