package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Clamp bounds v to [lo, hi] as max(lo, min(hi, v)). The upper bound is
// applied first, so an inverted range collapses every value toward lo.
func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	return Max(lo, Min(hi, v))
}
