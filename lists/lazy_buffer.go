package lists

import (
	"errors"
	"iter"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

type LazyBufferOption func(*lazyBufferConfig)

type lazyBufferConfig struct {
	capacity int
}

// WithCapacityHint pre-allocates room for n pulled elements.
func WithCapacityHint(n int) LazyBufferOption {
	return func(cfg *lazyBufferConfig) {
		if n > 0 {
			cfg.capacity = n
		}
	}
}

// LazyBuffer is an append-only, randomly indexable store of the elements
// pulled so far from a single-pass sequence.
// Elements are only pulled when a caller asks for them, and an index, once
// populated, keeps its value until the buffer is dropped.
type LazyBuffer[T any] struct {
	data []T
	next func() (T, bool)
	stop func()
	done bool
}

// NewLazyBuffer takes ownership of seq. Nothing is pulled until GetNext or
// Prefill is called. Call Stop to release the source early.
func NewLazyBuffer[T any](seq iter.Seq[T], opts ...LazyBufferOption) *LazyBuffer[T] {
	cfg := lazyBufferConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	next, stop := iter.Pull(seq)
	return &LazyBuffer[T]{
		data: make([]T, 0, cfg.capacity),
		next: next,
		stop: stop,
	}
}

// Len returns the number of elements buffered so far.
func (lb *LazyBuffer[T]) Len() int {
	return len(lb.data)
}

// Done reports whether the source has been exhausted (or stopped).
// Once Done is true, Len is the final length of the source.
func (lb *LazyBuffer[T]) Done() bool {
	return lb.done
}

// GetNext pulls one more element into the buffer.
// It returns false if the source is exhausted.
func (lb *LazyBuffer[T]) GetNext() bool {
	if lb.done {
		return false
	}
	v, ok := lb.next()
	if !ok {
		lb.release()
		return false
	}
	lb.data = append(lb.data, v)
	return true
}

// Prefill pulls until at least n elements are buffered or the source runs out,
// and returns the resulting length.
func (lb *LazyBuffer[T]) Prefill(n int) int {
	for len(lb.data) < n && lb.GetNext() {
	}
	return len(lb.data)
}

func (lb *LazyBuffer[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(lb.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return lb.data[index], nil
}

// Pick copies the elements at the given indices into a new slice.
// All indices must already be buffered; an unbuffered index is a bug in the
// caller and panics.
func (lb *LazyBuffer[T]) Pick(indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = lb.data[idx]
	}
	return out
}

// Stop releases the underlying source. Buffered elements stay readable.
// Stop is idempotent.
func (lb *LazyBuffer[T]) Stop() {
	lb.release()
}

func (lb *LazyBuffer[T]) release() {
	if lb.stop == nil {
		return
	}
	lb.done = true
	stop := lb.stop
	lb.stop = nil
	lb.next = nil
	stop()
}
