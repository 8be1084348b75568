package seqs

import "iter"

type cursorState uint8

const (
	atGroupStart cursorState = iota
	insideGroup
	cursorExhausted
)

// GroupCursor splits a sequence into runs of adjacent elements with equal keys.
//
// The cursor owns the only pull handle on the source. Each Group it hands out
// is a token that forwards reads back to the cursor and is bound to the
// generation it was created in: once Next or Stop is called again, the token is
// stale and reading from it panics with ErrStaleGroup.
//
// Keys are compared only with the previous element's key, so equal keys that
// are not adjacent start separate groups. The key function is called exactly
// once per element and must be pure; that is not checked.
//
// A GroupCursor is not safe for concurrent use.
type GroupCursor[K comparable, T any] struct {
	next func() (T, bool)
	stop func()
	key  func(T) K

	state      cursorState
	generation uint64
	groups     int
	currentKey K

	// at most one element is ever pulled ahead of the consumer
	lookahead    T
	lookaheadKey K
	hasLookahead bool
}

// NewGroupCursor takes ownership of seq. Call Stop when done to release it.
func NewGroupCursor[K comparable, T any](seq iter.Seq[T], key func(T) K) *GroupCursor[K, T] {
	next, stop := iter.Pull(seq)
	return &GroupCursor[K, T]{
		next: next,
		stop: stop,
		key:  key,
	}
}

// Next starts the next group. Elements left unread in the previous group are
// pulled and discarded first. It returns false once the source is exhausted.
func (gc *GroupCursor[K, T]) Next() (Group[K, T], bool) {
	gc.generation++
	for gc.state == insideGroup {
		gc.advance()
	}
	if gc.state == cursorExhausted {
		return Group[K, T]{}, false
	}

	if !gc.hasLookahead && !gc.pull() {
		return Group[K, T]{}, false
	}
	gc.currentKey = gc.lookaheadKey
	gc.state = insideGroup
	gc.groups++
	return Group[K, T]{
		cursor:     gc,
		generation: gc.generation,
		key:        gc.currentKey,
	}, true
}

// Groups returns how many groups have been started so far.
func (gc *GroupCursor[K, T]) Groups() int {
	return gc.groups
}

// Stop releases the source and invalidates any outstanding Group.
// Stop is idempotent.
func (gc *GroupCursor[K, T]) Stop() {
	gc.generation++
	gc.state = cursorExhausted
	gc.clearLookahead()
	gc.release()
}

// advance produces the next element of the current group.
func (gc *GroupCursor[K, T]) advance() (T, bool) {
	var zero T
	if gc.state != insideGroup {
		return zero, false
	}
	if !gc.hasLookahead && !gc.pull() {
		return zero, false
	}
	if gc.lookaheadKey != gc.currentKey {
		// the element opens the next group; keep it buffered for that group
		gc.state = atGroupStart
		return zero, false
	}
	v := gc.lookahead
	gc.clearLookahead()
	return v, true
}

// pull fetches one element into the lookahead slot.
func (gc *GroupCursor[K, T]) pull() bool {
	if gc.hasLookahead {
		brokenInvariant("pull with an occupied lookahead slot")
	}
	if gc.next == nil {
		gc.state = cursorExhausted
		return false
	}
	v, ok := gc.next()
	if !ok {
		gc.state = cursorExhausted
		gc.release()
		return false
	}
	gc.lookahead = v
	gc.lookaheadKey = gc.key(v)
	gc.hasLookahead = true
	return true
}

func (gc *GroupCursor[K, T]) clearLookahead() {
	var zeroT T
	var zeroK K
	gc.lookahead = zeroT
	gc.lookaheadKey = zeroK
	gc.hasLookahead = false
}

func (gc *GroupCursor[K, T]) release() {
	if gc.stop == nil {
		return
	}
	stop := gc.stop
	gc.stop = nil
	gc.next = nil
	stop()
}

// Group is a view of one run produced by a GroupCursor.
// It holds no elements itself; reads go through the cursor.
type Group[K comparable, T any] struct {
	cursor     *GroupCursor[K, T]
	generation uint64
	key        K
}

func (g Group[K, T]) Key() K {
	return g.key
}

// Valid reports whether the group can still be read, i.e. its cursor has not
// advanced past it. An exhausted but current group is still valid.
func (g Group[K, T]) Valid() bool {
	return g.cursor != nil && g.cursor.generation == g.generation
}

// Next returns the next element of the run, or false at the end of the run.
// It panics with ErrStaleGroup if the cursor has moved on.
func (g Group[K, T]) Next() (T, bool) {
	if !g.Valid() {
		panic(ErrStaleGroup)
	}
	return g.cursor.advance()
}

// All returns the rest of the run as a sequence.
func (g Group[K, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := g.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// GroupBy yields each run of adjacent elements sharing a key as (key, run).
//
// Only the most recent run can be read: ranging over a run after the outer
// loop has moved on panics with ErrStaleGroup. Runs left partially read are
// skipped automatically.
//
//	for k, run := range seqs.GroupBy(slices.Values([]int{1, 1, 2, 1}), identity) {
//		fmt.Println(k, slices.Collect(run))
//	}
//	// 1 [1 1]
//	// 2 [2]
//	// 1 [1]
func GroupBy[K comparable, T any](seq iter.Seq[T], key func(T) K) iter.Seq2[K, iter.Seq[T]] {
	return func(yield func(K, iter.Seq[T]) bool) {
		gc := NewGroupCursor(seq, key)
		defer gc.Stop()
		for {
			g, ok := gc.Next()
			if !ok {
				return
			}
			if !yield(g.Key(), g.All()) {
				return
			}
		}
	}
}

// ChunkBy lazily splits seq into consecutive chunks of size elements; the last
// chunk may be shorter. The same single-live-view rules as GroupBy apply.
// It panics if size is not positive.
func ChunkBy[T any](seq iter.Seq[T], size int) iter.Seq[iter.Seq[T]] {
	if size <= 0 {
		panic(ErrInvalidChunkSize)
	}
	return func(yield func(iter.Seq[T]) bool) {
		pos := 0
		chunkOf := func(T) int {
			k := pos / size
			pos++
			return k
		}
		for _, chunk := range GroupBy(seq, chunkOf) {
			if !yield(chunk) {
				return
			}
		}
	}
}
