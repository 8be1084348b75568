package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing; a negative step counts down.
func Range[T constraints.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Counter yields start, start+1, ... without end.
// Bound it with a consumer that stops, or the loop never terminates.
func Counter[T constraints.Integer](start T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	}
}
