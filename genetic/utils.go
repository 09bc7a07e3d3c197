package genetic

import (
	"golang.org/x/exp/constraints"
)

// MinBy finds the minimum element using a key function (like lodash's minBy).
// Ties go to the earliest element.
func MinBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) T {
	if len(slice) == 0 {
		var zero T
		return zero
	}

	minElem := slice[0]
	minVal := keyFunc(minElem)

	for _, elem := range slice[1:] {
		if val := keyFunc(elem); val < minVal {
			minVal = val
			minElem = elem
		}
	}

	return minElem
}
