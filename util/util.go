package util

import "golang.org/x/exp/constraints"

// Keys returns the keys of m in unspecified order.
func Keys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
