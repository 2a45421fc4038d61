// Package growarray provides Array, a generic dynamic array with explicit
// capacity management.
//
// # Growth
//
// An Array starts with a fixed backing store (16 slots unless configured).
// Before every insertion it computes a threshold of capacity*loadFactor/100
// (integer division); when the required size exceeds that threshold the store
// is reallocated at exactly twice its capacity. Capacity never shrinks.
//
//	arr, err := growarray.WithCapacity[int](2, 75)
//	if err != nil {
//	    return err
//	}
//	arr.Add(0) // threshold 1, fits
//	arr.Add(1) // 2 > 1, store doubles to 4
//	arr.Add(2) // threshold 3, fits
//
// # Sorting
//
// Sort accepts any compare.Comparator and delegates to package quicksort:
//
//	arr.Sort(compare.Reverse(compare.Ordered[int]()))
//
// # Errors
//
// Indexed operations return errors wrapping errors.ErrIndexOutOfRange and
// leave the array unchanged. Constructors return errors wrapping
// errors.ErrInvalidArgument or errors.ErrNullArgument.
//
// # Observability
//
// Reallocations and sorts are counted in Prometheus counters labeled with the
// array's name (see WithName). Reallocations are also logged at debug level.
package growarray
