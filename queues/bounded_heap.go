package queues

import (
	"container/heap"
	"errors"
)

var ErrNilComparator = errors.New("lazyseq.BoundedHeap: comparator function cannot be nil")

// Comparator returns a negative number when a < b, zero when a == b and a
// positive number when a > b, like cmp.Compare.
type Comparator[T any] func(a, b T) int

type BoundedHeapOption func(*boundedHeapConfig)

type boundedHeapConfig struct {
	initCapacity int
}

// WithInitialCapacity sets how many slots are allocated up front.
// The heap still never grows beyond its bound.
func WithInitialCapacity(n int) BoundedHeapOption {
	return func(cfg *boundedHeapConfig) {
		cfg.initCapacity = n
	}
}

// maxHeap adapts a slice to container/heap with the largest element at index 0.
type maxHeap[T any] struct {
	data []T
	cmp  Comparator[T]
}

func (h *maxHeap[T]) Len() int {
	return len(h.data)
}

func (h *maxHeap[T]) Less(i, j int) bool {
	return h.cmp(h.data[i], h.data[j]) > 0
}

func (h *maxHeap[T]) Swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *maxHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *maxHeap[T]) Pop() any {
	old := h.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	var zero T
	old[n-1] = zero

	h.data = old[:n-1]
	return last
}

// BoundedHeap keeps the limit smallest elements offered to it.
// Internally it is a max-heap, so the largest retained element is always at
// the root and can be evicted in O(log limit).
type BoundedHeap[T any] struct {
	heap  *maxHeap[T]
	limit int
}

// NewBoundedHeap creates a heap retaining at most limit elements ordered by cmp.
// A negative limit is treated as zero.
func NewBoundedHeap[T any](limit int, cmp Comparator[T], opts ...BoundedHeapOption) *BoundedHeap[T] {
	if cmp == nil {
		panic(ErrNilComparator)
	}
	if limit < 0 {
		limit = 0
	}
	cfg := boundedHeapConfig{initCapacity: limit}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.initCapacity = min(max(cfg.initCapacity, 0), limit)

	inner := maxHeap[T]{
		data: make([]T, 0, cfg.initCapacity),
		cmp:  cmp,
	}
	return &BoundedHeap[T]{
		heap:  &inner,
		limit: limit,
	}
}

// Offer considers value for retention.
// While the heap holds fewer than limit elements the value is always kept.
// Once full, the value replaces the current maximum only if it is strictly
// smaller; otherwise it is discarded. Offer reports whether value was kept.
func (bh *BoundedHeap[T]) Offer(value T) bool {
	if bh.limit == 0 {
		return false
	}
	if bh.heap.Len() < bh.limit {
		heap.Push(bh.heap, value)
		return true
	}
	if bh.heap.cmp(value, bh.heap.data[0]) >= 0 {
		return false
	}
	bh.heap.data[0] = value
	heap.Fix(bh.heap, 0)
	return true
}

// Peek returns the largest retained element without removing it.
func (bh *BoundedHeap[T]) Peek() (value T, ok bool) {
	if bh.heap.Len() == 0 {
		return value, false
	}
	return bh.heap.data[0], true
}

// Pop removes and returns the largest retained element.
func (bh *BoundedHeap[T]) Pop() (value T, ok bool) {
	if bh.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(bh.heap).(T), true
}

// DrainAscending empties the heap and returns its contents smallest first.
// Elements are popped largest first and written from the back of the result.
func (bh *BoundedHeap[T]) DrainAscending() []T {
	out := make([]T, bh.heap.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(bh.heap).(T)
	}
	return out
}

func (bh *BoundedHeap[T]) Size() int {
	return bh.heap.Len()
}

func (bh *BoundedHeap[T]) Limit() int {
	return bh.limit
}

func (bh *BoundedHeap[T]) IsEmpty() bool {
	return bh.heap.Len() == 0
}

func (bh *BoundedHeap[T]) IsFull() bool {
	return bh.heap.Len() == bh.limit
}
