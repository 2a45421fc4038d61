package sortable

// String orders by byte-wise string comparison. For human-friendly ordering of
// names with embedded numbers use compare.NaturalString on plain strings.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}
