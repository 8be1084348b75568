package seqs

import (
	"math"
	"math/bits"
)

// Binomial returns C(n, k), the number of k-element subsets of an n-element set.
// It is zero when k < 0, n < 0 or k > n.
// ok is false if the result does not fit in an int.
func Binomial(n, k int) (count int, ok bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)
	var acc uint64 = 1
	for i := 1; i <= k; i++ {
		// acc holds C(n-k+i-1, i-1); multiplying then dividing stays exact.
		hi, lo := bits.Mul64(acc, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		acc, _ = bits.Div64(hi, lo, uint64(i))
	}
	if acc > math.MaxInt {
		return 0, false
	}
	return int(acc), true
}

// CountCombinations is the number of tuples Combinations yields for a source
// of length n.
func CountCombinations(n, k int) (int, bool) {
	return Binomial(n, k)
}

// CountCombinationsWithReplacement is C(n+k-1, k), with the empty tuple
// counted once when k is zero.
func CountCombinationsWithReplacement(n, k int) (int, bool) {
	if k == 0 {
		return 1, true
	}
	if n <= 0 {
		return 0, true
	}
	if n > math.MaxInt-k {
		return 0, false
	}
	return Binomial(n+k-1, k)
}

// CountPermutations is n!/(n-k)!.
func CountPermutations(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	count := 1
	for i := n - k + 1; i <= n; i++ {
		hi, lo := bits.Mul64(uint64(count), uint64(i))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		count = int(lo)
	}
	return count, true
}

// CountPowerset is 2^n.
func CountPowerset(n int) (int, bool) {
	if n < 0 {
		return 0, true
	}
	if n >= bits.UintSize-1 {
		return 0, false
	}
	return 1 << n, true
}
