package slicing

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-blade/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Index access
// ─────────────────────────────────────────────────────────────────────────────

// At returns the element at index n, or def when s is shorter than n+1 or n
// is negative.
func At[T any](s iter.Seq[T], n int, def T) T {
	if n < 0 {
		return def
	}
	i := 0
	for v := range s {
		if i == n {
			return v
		}
		i++
	}
	return def
}

// Slice yields the elements of s from start (inclusive) to stop (exclusive),
// taking every step-th one. A negative stop means "to the end".
// Returns [ErrInvalidSize] for a negative start or a step below 1.
func Slice[T any](s iter.Seq[T], start, stop, step int) (iter.Seq[T], error) {
	if start < 0 || step < 1 {
		return nil, fmt.Errorf("%w: start=%d step=%d", ErrInvalidSize, start, step)
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range s {
			if stop >= 0 && i >= stop {
				return
			}
			if i >= start && (i-start)%step == 0 {
				if !yield(v) {
					return
				}
			}
			i++
		}
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element of s; false when s is empty.
func First[T any](s iter.Seq[T]) (T, bool) {
	for v := range s {
		return v, true
	}
	var zero T
	return zero, false
}

// FirstN yields at most the first n elements of s.
func FirstN[T any](s iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Last returns the last element of s; false when s is empty.
func Last[T any](s iter.Seq[T]) (T, bool) {
	var (
		last  T
		found bool
	)
	for v := range s {
		last, found = v, true
	}
	return last, found
}

// LastN returns the last n elements of s, oldest first, keeping at most n
// elements buffered.
func LastN[T any](s iter.Seq[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	ring := make([]T, 0, n)
	head := 0
	for v := range s {
		if len(ring) < n {
			ring = append(ring, v)
			continue
		}
		ring[head] = v
		head = (head + 1) % n
	}
	return append(ring[head:], ring[:head]...)
}

// Initial yields every element of s except the last.
func Initial[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			prev T
			have bool
		)
		for v := range s {
			if have && !yield(prev) {
				return
			}
			prev, have = v, true
		}
	}
}

// Rest yields every element of s except the first.
func Rest[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range s {
			if first {
				first = false
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Chunking
// ─────────────────────────────────────────────────────────────────────────────

// Dice splits s into consecutive chunks of n elements, padding the final
// chunk with fill. Returns [ErrInvalidSize] when n < 1.
//
// Chunks are formed by zipping n readers of one shared cursor over s, so s
// is consumed lazily, once.
func Dice[T any](s iter.Seq[T], n int, fill T) (iter.Seq[[]T], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrInvalidSize, n)
	}
	return func(yield func([]T) bool) {
		next, stop := iter.Pull(s)
		defer stop()
		cursor := func(yield func(T) bool) {
			for {
				v, ok := next()
				if !ok || !yield(v) {
					return
				}
			}
		}
		readers := make([]iter.Seq[T], n)
		for i := range readers {
			readers[i] = cursor
		}
		for chunk := range seq.ZipFill(fill, readers...) {
			if !yield(chunk) {
				return
			}
		}
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Random selection
// ─────────────────────────────────────────────────────────────────────────────

// Choice returns a uniformly random element of s.
// Returns [ErrEmpty] when s is empty.
func Choice[T any](s iter.Seq[T]) (T, error) {
	items := seq.Collect(s)
	if len(items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return items[rand.IntN(len(items))], nil
}

// Sample returns n distinct positions of s drawn at random, without
// replacement. Returns [ErrInvalidSize] when n is negative or larger than
// the sequence.
func Sample[T any](s iter.Seq[T], n int) ([]T, error) {
	items := seq.Collect(s)
	if n < 0 || n > len(items) {
		return nil, fmt.Errorf("%w: sample of %d from %d", ErrInvalidSize, n, len(items))
	}
	return lo.Samples(items, n), nil
}
