package report

import (
	"math"
	"sort"
)

// topN returns the n largest items by key, descending, without mutating
// the input. The sort is stable so ties keep their first-seen order.
func topN[T any](items []T, n int, key func(T) float64) []T {
	if n <= 0 {
		return []T{}
	}

	ranked := make([]T, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// percentOf returns part as a percentage of whole, guarding the zero
// denominator so the output never carries NaN or Inf.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// roundHalfUp rounds to the nearest integer with halves rounding up.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
