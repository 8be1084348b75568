/*
Package seqs provides lazy adaptors over Go 1.23+ iterators (iter.Seq) whose
behaviour rests on internal state machines rather than a simple per-element
transform.

It includes:

  - **Run Grouping**: [GroupBy] and [ChunkBy] split a sequence into consecutive runs
    that share one pull cursor over the source, backed by [GroupCursor].
  - **Combinatorics**: [Combinations], [CombinationsWithReplacement], [Permutations]
    and [Powerset] enumerate tuples by advancing an index state over a lazily
    filled buffer, so the source length is discovered on the way.
  - **Top-k Selection**: [KSmallest], [KLargest] and their Func/ByKey variants keep
    only k elements in a bounded heap instead of sorting the whole input.

# Pull and Range APIs

Every generator is available both as a range-over-func sequence and as a pull
type with Next and Stop ([CombinationsIter], [PermutationsIter], ...). The
sequence form owns its source for the duration of one range loop; the pull form
owns it until Stop is called.

	for pair := range seqs.Combinations(slices.Values([]string{"a", "b", "c"}), 2) {
		fmt.Println(pair) // [a b] [a c] [b c]
	}

# Single Live Group

A [GroupCursor] hands out at most one readable [Group] at a time. Moving the
cursor skips whatever is left of the current run and invalidates it; reading a
stale group panics with [ErrStaleGroup] instead of returning elements of another
run.

# Errors

Exhaustion is never an error. Caller mistakes that are cheap to detect
(negative arity, non-positive chunk size, stale groups) panic with the sentinel
errors of this package, and so does any broken internal invariant
([ErrBrokenInvariant]). None of the types are safe for concurrent use.
*/
package seqs
