package sortable

import (
	"github.com/amp-labs/amp-array/compare"
)

// Sortable is implemented by types that carry both equality and ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator derives a compare.Comparator from a type's own LessThan and Equals methods,
// so Sortable types can be handed straight to quicksort.Sort or growarray.Array.Sort.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	}
}
