package filter

import (
	"iter"

	"github.com/hasbyte1/go-blade/seq"
)

// TrueFalse holds the two halves of a partitioned sequence.
type TrueFalse[T any] struct {
	True  iter.Seq[T]
	False iter.Seq[T]
}

// Filter yields the elements of s for which pred returns true, or false when
// invert is set.
func Filter[T any](s iter.Seq[T], pred func(T) bool, invert bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if pred(v) != invert {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Partition splits s into the elements that satisfy pred and those that do
// not. Both halves are lazy and share one buffered pass over s, so s is
// consumed once however the halves are read.
func Partition[T any](s iter.Seq[T], pred func(T) bool) TrueFalse[T] {
	copies := seq.Tee(s, 2)
	return TrueFalse[T]{
		True:  Filter(copies[0], pred, false),
		False: Filter(copies[1], pred, true),
	}
}
