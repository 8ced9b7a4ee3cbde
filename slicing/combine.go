package slicing

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-blade/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Merging & combinatorics
// ─────────────────────────────────────────────────────────────────────────────

// Merge yields the elements of every sequence in s, one sequence after the
// other.
func Merge[T any](s iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range s {
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Combinations yields every r-length combination of the elements of s, in
// lexicographic order of position. Elements are distinguished by position,
// not value. Nothing is yielded when r exceeds the length of s; r == 0 yields
// one empty combination. Returns [ErrInvalidSize] when r is negative.
func Combinations[T any](s iter.Seq[T], r int) (iter.Seq[[]T], error) {
	if r < 0 {
		return nil, fmt.Errorf("%w: combination length %d", ErrInvalidSize, r)
	}
	return func(yield func([]T) bool) {
		pool := seq.Collect(s)
		n := len(pool)
		if r > n {
			return
		}
		idx := make([]int, r)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(pick(pool, idx)) {
				return
			}
			i := r - 1
			for i >= 0 && idx[i] == i+n-r {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < r; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}, nil
}

// Permutations yields every ordering of the elements of s, in lexicographic
// order of position.
func Permutations[T any](s iter.Seq[T]) iter.Seq[[]T] {
	return PermutationsN(s, -1)
}

// PermutationsN is like [Permutations] but yields r-length orderings. A
// negative r means the full length of s; nothing is yielded when r exceeds it.
func PermutationsN[T any](s iter.Seq[T], r int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		pool := seq.Collect(s)
		n := len(pool)
		if r < 0 {
			r = n
		}
		if r > n {
			return
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		cycles := make([]int, r)
		for i := range cycles {
			cycles[i] = n - i
		}
		if !yield(pick(pool, idx[:r])) {
			return
		}
	next:
		for {
			for i := r - 1; i >= 0; i-- {
				cycles[i]--
				if cycles[i] == 0 {
					first := idx[i]
					copy(idx[i:], idx[i+1:])
					idx[n-1] = first
					cycles[i] = n - i
					continue
				}
				j := n - cycles[i]
				idx[i], idx[j] = idx[j], idx[i]
				if !yield(pick(pool, idx[:r])) {
					return
				}
				continue next
			}
			return
		}
	}
}

func pick[T any](pool []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, k := range idx {
		out[i] = pool[k]
	}
	return out
}
