// Package quicksort implements an in-place, comparator-driven quicksort with
// median-of-three pivot selection and a hand-unrolled fallback for ranges of
// three or fewer elements.
//
// The sort is not stable. It recurses without a depth bound, so adversarial
// inputs that defeat median-of-three can drive recursion depth to O(n).
package quicksort

import (
	"github.com/amp-labs/amp-array/compare"
)

// smallRange is the largest sub-range handled by manualSort instead of partitioning.
const smallRange = 3

// Sort orders items in place according to cmp and returns items for chaining.
// cmp must define a total order; an inconsistent comparator may lose elements
// or fail to terminate.
func Sort[T any](items []T, cmp compare.Comparator[T]) []T {
	if len(items) < 2 {
		return items
	}

	s := sorter[T]{items: items, cmp: cmp}
	s.quickSort(0, len(items)-1)

	return items
}

type sorter[T any] struct {
	items []T
	cmp   compare.Comparator[T]
}

func (s *sorter[T]) quickSort(left, right int) {
	if right-left+1 <= smallRange {
		s.manualSort(left, right)

		return
	}

	pivot := s.medianOf3(left, right)
	mid := s.partition(left, right, pivot)

	s.quickSort(left, mid-1)
	s.quickSort(mid+1, right)
}

// medianOf3 orders the first, middle and last elements of [left, right] and
// parks the median at right-1, returning that index. Afterwards items[left] is
// <= the pivot and items[right] is >= the pivot, which bounds the partition scans.
// The range must hold at least four elements.
func (s *sorter[T]) medianOf3(left, right int) int {
	center := left + (right-left)/2

	s.orderPair(left, center)
	s.orderPair(left, right)
	s.orderPair(center, right)

	s.swap(center, right-1)

	return right - 1
}

// partition is a Hoare partition of [left, right] around the pivot parked at
// right-1 by medianOf3. It returns the pivot's final index.
func (s *sorter[T]) partition(left, right, pivot int) int {
	leftPtr := left
	rightPtr := right - 1
	pivotValue := s.items[pivot]

	for {
		leftPtr++
		for s.cmp(s.items[leftPtr], pivotValue) < 0 {
			leftPtr++
		}

		rightPtr--
		for s.cmp(s.items[rightPtr], pivotValue) > 0 {
			rightPtr--
		}

		if leftPtr >= rightPtr {
			break
		}

		s.swap(leftPtr, rightPtr)
	}

	s.swap(leftPtr, right-1)

	return leftPtr
}

// manualSort sorts ranges of up to three elements with at most three compare-and-swaps.
func (s *sorter[T]) manualSort(left, right int) {
	switch right - left + 1 {
	case 0, 1:
		return
	case 2:
		s.orderPair(left, right)
	default:
		s.orderPair(left, right-1)
		s.orderPair(left, right)
		s.orderPair(right-1, right)
	}
}

// orderPair swaps i and j when items[i] sorts after items[j].
func (s *sorter[T]) orderPair(i, j int) {
	if s.cmp(s.items[i], s.items[j]) > 0 {
		s.swap(i, j)
	}
}

func (s *sorter[T]) swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
}
