package growarray_test

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-array/compare"
	amperrors "github.com/amp-labs/amp-array/errors"
	"github.com/amp-labs/amp-array/growarray"
)

func ExampleArray_Sort() {
	arr, err := growarray.FromSlice([]int{5, 3, 8, 1, 2})
	if err != nil {
		panic(err)
	}

	arr.Sort(compare.Ordered[int]())
	fmt.Println(arr.ToSlice())

	arr.Sort(compare.Reverse(compare.Ordered[int]()))
	fmt.Println(arr.ToSlice())

	// Output:
	// [1 2 3 5 8]
	// [8 5 3 2 1]
}

func ExampleArray_InsertAt() {
	arr := growarray.New[string]()
	arr.Add("a")
	arr.Add("c")

	if err := arr.InsertAt(1, "b"); err != nil {
		panic(err)
	}

	err := arr.InsertAt(10, "z")
	fmt.Println(arr.ToSlice(), errors.Is(err, amperrors.ErrIndexOutOfRange))

	// Output:
	// [a b c] true
}

func ExampleWithCapacity() {
	_, err := growarray.WithCapacity[int](-1, 50)
	fmt.Println(err)

	// Output:
	// invalid argument: invalid capacity: -1
}
