package numeric

import "fmt"

// Number is the set of element types the arithmetic aggregations accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Bounds holds the smallest and largest element of a sequence.
type Bounds[T any] struct {
	Min T
	Max T
}

// String returns "(min, max)".
func (m Bounds[T]) String() string {
	return fmt.Sprintf("(%v, %v)", m.Min, m.Max)
}

// Entry is one row of a frequency table.
type Entry[T any] struct {
	Value T
	Count int
}

// Count summarises a frequency table.
//
// Overall lists every distinct value ordered by descending count; values with
// equal counts keep the order in which they were first seen. Most is the first
// entry of Overall and Least the last.
type Count[T any] struct {
	Least   T
	Most    T
	Overall []Entry[T]
}
