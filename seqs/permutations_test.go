package seqs_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lazyseq/seqs"
)

func TestPermutations_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		k     int
		want  []string
	}{
		{"Both orders of two", []string{"a", "b"}, 2, []string{"ab", "ba"}},
		{"Pairs of three", []string{"a", "b", "c"}, 2, []string{"ab", "ac", "ba", "bc", "ca", "cb"}},
		{"Singles", []string{"a", "b", "c"}, 1, []string{"a", "b", "c"}},
		{"Arity zero", []string{"a", "b"}, 0, []string{""}},
		{"Arity zero on empty", []string{}, 0, []string{""}},
		{"Arity above length", []string{"a", "b"}, 3, nil},
		{"Empty source", []string{}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinAll(seqs.Permutations(slices.Values(tt.input), tt.k))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPermutations_CountAndDistinctness(t *testing.T) {
	for n := 0; n <= 6; n++ {
		for k := 0; k <= n+1; k++ {
			want, ok := seqs.CountPermutations(n, k)
			if !ok {
				t.Fatalf("CountPermutations(%d, %d) overflowed", n, k)
			}

			seen := make(map[string]bool)
			for tuple := range seqs.Permutations(positions(n), k) {
				if len(tuple) != k {
					t.Fatalf("n=%d k=%d: tuple %v has wrong length", n, k, tuple)
				}
				used := make(map[int]bool)
				for _, idx := range tuple {
					if idx < 0 || idx >= n || used[idx] {
						t.Fatalf("n=%d k=%d: tuple %v repeats or leaves the source", n, k, tuple)
					}
					used[idx] = true
				}
				key := fmt.Sprint(tuple)
				if seen[key] {
					t.Fatalf("n=%d k=%d: duplicate tuple %v", n, k, tuple)
				}
				seen[key] = true
			}
			if len(seen) != want {
				t.Errorf("n=%d k=%d: got %d permutations, want %d", n, k, len(seen), want)
			}
		}
	}
}

func TestPermutations_FullLengthCoversAllOrderings(t *testing.T) {
	var got [][]int
	for tuple := range seqs.Permutations(positions(3), 3) {
		got = append(got, tuple)
	}
	want := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	sorted := slices.Clone(got)
	slices.SortFunc(sorted, slices.Compare[[]int])
	if diff := cmp.Diff(want, sorted); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got[0]); diff != "" {
		t.Errorf("first permutation should be the identity (-want +got):\n%s", diff)
	}
}

func TestPermutations_StreamsBeforeLengthIsKnown(t *testing.T) {
	src := &tracked{vals: []int{1, 2, 3, 4, 5}}
	var got [][]int
	for tuple := range seqs.Permutations(src.Seq(), 2) {
		got = append(got, tuple)
		if len(got) == 3 {
			break
		}
	}
	want := [][]int{{1, 2}, {1, 3}, {1, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if src.pulled != 4 {
		t.Errorf("pulled %d elements, want 4", src.pulled)
	}
}

func TestPermutations_InfiniteSource(t *testing.T) {
	it := seqs.NewPermutationsIter(seqs.Counter(100), 3)
	defer it.Stop()

	for i := range 5 {
		tuple, ok := it.Next()
		if !ok {
			t.Fatalf("generator ended after %d tuples", i)
		}
		if diff := cmp.Diff([]int{100, 101, 102 + i}, tuple); diff != "" {
			t.Errorf("tuple %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestPermutationsIter_StopAndExhaustion(t *testing.T) {
	it := seqs.NewPermutationsIter(positions(2), 2)
	for range 2 {
		if _, ok := it.Next(); !ok {
			t.Fatal("expected two permutations")
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted generator produced another tuple")
	}

	it = seqs.NewPermutationsIter(positions(4), 2)
	it.Next()
	it.Stop()
	if _, ok := it.Next(); ok {
		t.Error("stopped generator produced another tuple")
	}
}

func TestPowerset_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"Empty", []string{}, []string{""}},
		{"Single", []string{"a"}, []string{"", "a"}},
		{"Three", []string{"a", "b", "c"}, []string{"", "a", "b", "c", "ab", "ac", "bc", "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinAll(seqs.Powerset(slices.Values(tt.input)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPowerset_BlocksMatchCombinations(t *testing.T) {
	for n := 0; n <= 6; n++ {
		var all [][]int
		for subset := range seqs.Powerset(positions(n)) {
			all = append(all, subset)
		}

		want, _ := seqs.CountPowerset(n)
		if len(all) != want {
			t.Fatalf("n=%d: got %d subsets, want %d", n, len(all), want)
		}

		offset := 0
		for k := 0; k <= n; k++ {
			block := slices.Collect(seqs.Combinations(positions(n), k))
			got := all[offset : offset+len(block)]
			if diff := cmp.Diff(block, got); diff != "" {
				t.Errorf("n=%d: arity %d block mismatch (-want +got):\n%s", n, k, diff)
			}
			offset += len(block)
		}
	}
}

func TestPowersetIter_Stop(t *testing.T) {
	it := seqs.NewPowersetIter(positions(3))
	it.Next()
	it.Next()
	it.Stop()
	if _, ok := it.Next(); ok {
		t.Error("stopped generator produced another tuple")
	}
}
