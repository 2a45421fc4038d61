package growarray

import (
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-array/compare"
	"github.com/amp-labs/amp-array/errors"
	"github.com/amp-labs/amp-array/quicksort"
)

// Array is a growable array backed by a manually sized store. Slots [0, Size())
// hold live elements in order; the remaining slots hold the zero value of T.
// The store doubles once a required size exceeds the load-factor threshold and
// never shrinks on its own.
//
// An Array is not safe for concurrent use.
type Array[T comparable] struct {
	store             []T
	size              int
	loadFactorPercent int
	opts              options
}

// New creates an empty Array with DefaultCapacity and DefaultLoadFactorPercent.
func New[T comparable](opts ...Option) *Array[T] {
	return newArray[T](DefaultCapacity, DefaultLoadFactorPercent, opts)
}

// FromSlice creates an Array holding a copy of elements, in order. The initial
// capacity is the larger of len(elements) and DefaultCapacity. A nil slice is
// rejected with errors.ErrNullArgument; an empty non-nil slice is accepted.
func FromSlice[T comparable](elements []T, opts ...Option) (*Array[T], error) {
	if elements == nil {
		return nil, errors.NullArgument("elements")
	}

	arr := newArray[T](max(len(elements), DefaultCapacity), DefaultLoadFactorPercent, opts)
	arr.size = copy(arr.store, elements)

	return arr, nil
}

// WithCapacity creates an empty Array with an explicit initial capacity and
// load factor percentage. capacity must be non-negative and loadFactorPercent
// must lie in 1..100; violations are reported as errors.ErrInvalidArgument.
func WithCapacity[T comparable](capacity, loadFactorPercent int, opts ...Option) (*Array[T], error) {
	var errs errors.Collection

	if capacity < 0 {
		errs.Add(errors.InvalidArgument("invalid capacity: %d", capacity))
	}

	if loadFactorPercent <= 0 || loadFactorPercent > 100 {
		errs.Add(errors.InvalidArgument("load factor percent must be between 1 and 100"))
	}

	if err := errs.GetError(); err != nil {
		return nil, err
	}

	return newArray[T](capacity, loadFactorPercent, opts), nil
}

func newArray[T comparable](capacity, loadFactorPercent int, opts []Option) *Array[T] {
	return &Array[T]{
		store:             make([]T, capacity),
		loadFactorPercent: loadFactorPercent,
		opts:              newOptions(opts),
	}
}

// Add appends element and reports true.
func (a *Array[T]) Add(element T) bool {
	a.ensureCapacity(a.size + 1)

	a.store[a.size] = element
	a.size++

	return true
}

// InsertAt places element at index, shifting the elements at [index, Size())
// one slot to the right. index may equal Size(), which appends.
func (a *Array[T]) InsertAt(index int, element T) error {
	if index < 0 || index > a.size {
		return errors.IndexOutOfRange(index, a.size)
	}

	a.ensureCapacity(a.size + 1)

	copy(a.store[index+1:a.size+1], a.store[index:a.size])
	a.store[index] = element
	a.size++

	return nil
}

// RemoveAt deletes and returns the element at index, shifting later elements
// one slot to the left.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T

		return zero, err
	}

	removed := a.store[index]

	copy(a.store[index:a.size-1], a.store[index+1:a.size])
	a.size--

	var zero T

	a.store[a.size] = zero

	return removed, nil
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T

		return zero, err
	}

	return a.store[index], nil
}

// Set replaces the element at index and returns the previous value.
func (a *Array[T]) Set(index int, element T) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T

		return zero, err
	}

	previous := a.store[index]
	a.store[index] = element

	return previous, nil
}

// Contains reports whether value is among the live elements.
func (a *Array[T]) Contains(value T) bool {
	return a.IndexOf(value) >= 0
}

// IndexOf returns the index of the first live element equal to value, or -1.
func (a *Array[T]) IndexOf(value T) int {
	for i := range a.size {
		if a.store[i] == value {
			return i
		}
	}

	return -1
}

// IndexOfFunc returns the index of the first live element satisfying pred, or -1.
// Use it with compare.EqualTo for element types that define their own Equals.
func (a *Array[T]) IndexOfFunc(pred func(T) bool) int {
	for i := range a.size {
		if pred(a.store[i]) {
			return i
		}
	}

	return -1
}

// Size returns the number of live elements.
func (a *Array[T]) Size() int {
	return a.size
}

// Capacity returns the length of the backing store.
func (a *Array[T]) Capacity() int {
	return len(a.store)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

// Clear drops every element. The capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.store[:a.size])
	a.size = 0
}

// ToSlice returns a new slice holding exactly the live elements, in order.
// The result does not alias the backing store.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.size)
	copy(out, a.store[:a.size])

	return out
}

// All yields index/element pairs for the live elements. Mutating the array
// while ranging over it is not supported.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range a.size {
			if !yield(i, a.store[i]) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Sort orders the live elements according to cmp. The elements are sorted in
// a separate buffer and then copied back over the live prefix. Arrays with
// fewer than two elements are left untouched.
func (a *Array[T]) Sort(cmp compare.Comparator[T]) {
	if a.size <= 1 {
		return
	}

	buffer := quicksort.Sort(a.ToSlice(), cmp)
	copy(a.store, buffer)

	sortsTotal.WithLabelValues(a.opts.name).Inc()
	sortedElementsTotal.WithLabelValues(a.opts.name).Add(float64(len(buffer)))
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return errors.IndexOutOfRange(index, a.size)
	}

	return nil
}

// ensureCapacity doubles the store once when minCapacity exceeds the load-factor
// threshold. Only one doubling happens per call, even if it still falls short
// of minCapacity; single-element growth from a non-empty store always fits.
// An empty store grows to one slot since doubling zero would not make room.
func (a *Array[T]) ensureCapacity(minCapacity int) {
	capacity := len(a.store)

	threshold := capacity * a.loadFactorPercent / 100
	if minCapacity <= threshold {
		return
	}

	newCapacity := max(capacity*2, 1)

	grown := make([]T, newCapacity)
	copy(grown, a.store[:a.size])
	a.store = grown

	growsTotal.WithLabelValues(a.opts.name).Inc()
	a.opts.logger.Debug("grew backing store",
		slog.String("array", a.opts.name),
		slog.Int("from", capacity),
		slog.Int("to", newCapacity),
		slog.Int("size", a.size))
}
