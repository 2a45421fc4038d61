package sortable

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return i < other
}
