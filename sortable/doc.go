// Package sortable provides wrapper types for primitive types that implement
// the [Sortable] interface, and an adapter turning any Sortable into a
// [github.com/amp-labs/amp-array/compare.Comparator].
//
// # Usage
//
//	arr := growarray.New[sortable.Int]()
//	arr.Add(sortable.Int(42))
//	arr.Add(sortable.Int(10))
//	arr.Sort(sortable.Comparator[sortable.Int]())
//	// arr.ToSlice() == []sortable.Int{10, 42}
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// a.Equals(b) and b.LessThan(a) holds. The derived comparator relies on it.
package sortable
