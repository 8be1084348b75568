package seqs

import "iter"

// PowersetIter yields every subset of the source as a tuple of elements in
// source order: first the empty subset, then all subsets of size 1, then size
// 2, and so on. Each size is produced by a combinations generator that is
// re-armed with the next arity over the same buffered source.
type PowersetIter[T any] struct {
	combs   *CombinationsIter[T]
	stopped bool
}

// NewPowersetIter takes ownership of seq.
func NewPowersetIter[T any](seq iter.Seq[T]) *PowersetIter[T] {
	return &PowersetIter[T]{
		combs: NewCombinationsIter(seq, 0),
	}
}

func (p *PowersetIter[T]) Next() ([]T, bool) {
	if p.stopped {
		return nil, false
	}
	if tuple, ok := p.combs.Next(); ok {
		return tuple, true
	}
	// Past arity 0 an exhausted generator has seen the whole source, so N is
	// final. Arity 0 never pulls, so always try arity 1.
	k := p.combs.K()
	if k != 0 && k >= p.combs.N() {
		return nil, false
	}
	p.combs.reset(k + 1)
	return p.combs.Next()
}

func (p *PowersetIter[T]) Stop() {
	p.stopped = true
	p.combs.Stop()
}

// Powerset yields all 2^n subsets of the elements of seq, ordered by size.
func Powerset[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return tupleSeq(func() tupleIter[T] {
		return NewPowersetIter(seq)
	})
}
