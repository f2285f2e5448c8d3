package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// IDFn maps a constructor's vertex index to its ID. It must be pure: the
// same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns prefix + decimal index: "v0", "v1", ...
// Panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PermutedIDFn renames index i to perm[i] for i < len(perm); larger indices
// keep their own number. perm must be a permutation of 0..len(perm)-1,
// otherwise two indices could share an ID; PermutedIDFn panics in that case.
func PermutedIDFn(perm []int) IDFn {
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			panic(fmt.Sprintf("PermutedIDFn: %v is not a permutation", perm))
		}
		seen[p] = true
	}
	own := append([]int(nil), perm...)

	return func(idx int) string {
		if idx >= 0 && idx < len(own) {
			return strconv.Itoa(own[idx])
		}
		return strconv.Itoa(idx)
	}
}

// WithIDPrefix sets the ID scheme to PrefixIDFn(prefix).
func WithIDPrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithShuffledIDs renames the first n indices by a permutation drawn from
// seed. Graphs built with and without it are isomorphic as long as the label
// scheme depends on structure only (DegreeLabels, ConstantLabels).
func WithShuffledIDs(seed int64, n int) BuilderOption {
	return WithIDScheme(PermutedIDFn(rand.New(rand.NewSource(seed)).Perm(n)))
}
