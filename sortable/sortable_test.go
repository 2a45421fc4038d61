package sortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// priority orders by Level only; Label is ignored by both methods.
type priority struct {
	Level int
	Label string
}

func (p priority) Equals(other priority) bool {
	return p.Level == other.Level
}

func (p priority) LessThan(other priority) bool {
	return p.Level < other.Level
}

func TestComparator_Int(t *testing.T) {
	t.Parallel()

	c := Comparator[Int]()

	assert.Negative(t, c(Int(1), Int(2)))
	assert.Zero(t, c(Int(2), Int(2)))
	assert.Positive(t, c(Int(3), Int(2)))
}

func TestComparator_ByteAndString(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Comparator[Byte]()(Byte('a'), Byte('b')))
	assert.Positive(t, Comparator[String]()(String("kiwi"), String("apple")))
	assert.Zero(t, Comparator[String]()(String("kiwi"), String("kiwi")))
}

func TestComparator_CustomType(t *testing.T) {
	t.Parallel()

	c := Comparator[priority]()

	assert.Zero(t, c(priority{Level: 1, Label: "a"}, priority{Level: 1, Label: "b"}))
	assert.Negative(t, c(priority{Level: 1}, priority{Level: 5}))
	assert.Positive(t, c(priority{Level: 9}, priority{Level: 5}))
}
