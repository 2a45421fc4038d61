package compare

import (
	"cmp"

	"facette.io/natsort"
)

// Comparator defines a total order over T. It returns a negative number when
// a sorts before b, zero when they are equivalent and a positive number when
// a sorts after b. Sorting with a comparator that is not transitive has
// undefined results.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural ascending order of an ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator ordering elements opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// NaturalString orders strings so that embedded numbers compare numerically,
// e.g. "file2" sorts before "file10".
func NaturalString() Comparator[string] {
	return func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natsort.Compare(a, b):
			return -1
		case natsort.Compare(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Less reports whether a sorts strictly before b under c.
func (c Comparator[T]) Less(a, b T) bool {
	return c(a, b) < 0
}
