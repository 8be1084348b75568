package seqs

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"

	"lazyseq/queues"
)

// maxHeapPrealloc caps the up-front heap allocation; the heap still grows to k.
const maxHeapPrealloc = 1024

// KSmallest yields the k smallest elements of seq in ascending order, or all of
// them if seq has fewer than k elements.
//
// The whole of seq is consumed once, when the result is first ranged over,
// even for k == 0. Only k elements are held at a time: O(n log k) time and
// O(k) memory. Equal elements come out in no particular order.
// It panics if k is negative.
func KSmallest[T constraints.Ordered](seq iter.Seq[T], k int) iter.Seq[T] {
	return KSmallestFunc(seq, k, cmp.Compare[T])
}

// KSmallestFunc is like KSmallest but orders elements with compare, which
// returns a negative number, zero or a positive number as cmp.Compare does.
func KSmallestFunc[T any](seq iter.Seq[T], k int, compare func(a, b T) int) iter.Seq[T] {
	checkArity(k)
	return func(yield func(T) bool) {
		h := queues.NewBoundedHeap[T](k, compare, queues.WithInitialCapacity(min(k, maxHeapPrealloc)))
		for v := range seq {
			h.Offer(v)
		}
		for _, v := range h.DrainAscending() {
			if !yield(v) {
				return
			}
		}
	}
}

// KSmallestByKey is like KSmallest but compares elements by key(element).
// key may be called several times per element.
func KSmallestByKey[T any, K constraints.Ordered](seq iter.Seq[T], k int, key func(T) K) iter.Seq[T] {
	return KSmallestFunc(seq, k, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// KLargest yields the k largest elements of seq in descending order.
func KLargest[T constraints.Ordered](seq iter.Seq[T], k int) iter.Seq[T] {
	return KLargestFunc(seq, k, cmp.Compare[T])
}

// KLargestFunc is like KLargest with a caller-supplied ordering.
func KLargestFunc[T any](seq iter.Seq[T], k int, compare func(a, b T) int) iter.Seq[T] {
	return KSmallestFunc(seq, k, func(a, b T) int {
		return compare(b, a)
	})
}
