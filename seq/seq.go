package seq

import (
	"iter"
	"slices"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors & collectors
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a restartable sequence over a copy of items.
func Of[T any](items ...T) iter.Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return slices.Values(dst)
}

// Collect drains s into a new slice. A nil sequence yields an empty slice.
func Collect[T any](s iter.Seq[T]) []T {
	out := make([]T, 0)
	if s == nil {
		return out
	}
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Count drains s and returns the number of elements it produced.
func Count[T any](s iter.Seq[T]) int {
	if s == nil {
		return 0
	}
	n := 0
	for range s {
		n++
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Duplication
// ─────────────────────────────────────────────────────────────────────────────

// Tee returns n independent copies of s.
//
// The input is consumed exactly once, on the first pull of any copy, and
// buffered; each copy is restartable afterwards. Returns nil when n <= 0.
//
//	copies := seq.Tee(src, 2)
//	total := seq.Count(copies[0])
//	for v := range copies[1] { ... }
func Tee[T any](s iter.Seq[T], n int) []iter.Seq[T] {
	if n <= 0 {
		return nil
	}
	load := sync.OnceValue(func() []T { return Collect(s) })
	out := make([]iter.Seq[T], n)
	for i := range out {
		out[i] = func(yield func(T) bool) {
			for _, v := range load() {
				if !yield(v) {
					return
				}
			}
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Zipping
// ─────────────────────────────────────────────────────────────────────────────

// ZipFill zips seqs into rows, continuing until every input is exhausted.
// Slots belonging to an exhausted input are set to fill.
//
// Within a row the inputs are pulled in argument order, so passing the same
// underlying puller several times groups consecutive elements:
//
//	seq.ZipFill(0, seq.Of(1, 2, 3), seq.Of(4)) // → [1 4] [2 0] [3 0]
func ZipFill[T any](fill T, seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for i, s := range seqs {
			next, stop := iter.Pull(s)
			defer stop()
			nexts[i] = next
		}
		done := make([]bool, len(seqs))
		for {
			row := make([]T, len(seqs))
			live := 0
			for i, next := range nexts {
				if done[i] {
					row[i] = fill
					continue
				}
				v, ok := next()
				if !ok {
					done[i] = true
					row[i] = fill
					continue
				}
				row[i] = v
				live++
			}
			if live == 0 || !yield(row) {
				return
			}
		}
	}
}
