package seqs

import (
	"errors"
	"fmt"
)

var (
	// ErrStaleGroup is the panic value when a Group is read after its
	// GroupCursor has moved on to another group or been stopped.
	ErrStaleGroup = errors.New("lazyseq.GroupCursor: group used after the cursor advanced")

	ErrNegativeArity    = errors.New("lazyseq.seqs: negative arity")
	ErrInvalidChunkSize = errors.New("lazyseq.seqs: chunk size must be positive")

	// ErrBrokenInvariant signals a bug in this package, never a caller error.
	ErrBrokenInvariant = errors.New("lazyseq.seqs: internal invariant broken")
)

func checkArity(k int) {
	if k < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeArity, k))
	}
}

func brokenInvariant(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrBrokenInvariant}, args...)...))
}
