package compare

import (
	"iter"
	"reflect"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-blade/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Truth tests
// ─────────────────────────────────────────────────────────────────────────────

// All reports whether pred holds for every element of s.
// It stops at the first failing element; an empty sequence yields true.
// A nil pred tests each element's truthiness.
func All[T any](s iter.Seq[T], pred func(T) bool) bool {
	if pred == nil {
		pred = Truthy[T]
	}
	for v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of s.
// It stops at the first match; an empty sequence yields false.
// A nil pred tests each element's truthiness.
func Any[T any](s iter.Seq[T], pred func(T) bool) bool {
	if pred == nil {
		pred = Truthy[T]
	}
	for v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// Truthy reports whether v is non-empty: containers and strings by length,
// everything else by comparison with its zero value.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Slice, reflect.Map, reflect.String, reflect.Array:
		return rv.Len() > 0
	}
	return !rv.IsZero()
}

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
// ─────────────────────────────────────────────────────────────────────────────

// fold collects every sequence and folds op over them left to right,
// starting from the de-duplicated first sequence.
func fold[T comparable](seqs []iter.Seq[T], op func(acc, next []T) []T) ([]T, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	acc := lo.Uniq(seq.Collect(seqs[0]))
	for _, s := range seqs[1:] {
		acc = op(acc, seq.Collect(s))
	}
	return acc, nil
}

// Diff returns the elements of the first sequence that appear in none of the
// others. The operation is not symmetric.
func Diff[T comparable](seqs ...iter.Seq[T]) ([]T, error) {
	return fold(seqs, func(acc, next []T) []T {
		left, _ := lo.Difference(acc, next)
		return left
	})
}

// SymmetricDiff folds symmetric difference over seqs: each step keeps the
// elements present in exactly one of the accumulated set and the next input.
func SymmetricDiff[T comparable](seqs ...iter.Seq[T]) ([]T, error) {
	return fold(seqs, func(acc, next []T) []T {
		left, right := lo.Difference(acc, next)
		return lo.Uniq(append(left, right...))
	})
}

// Intersect returns the elements present in every sequence.
func Intersect[T comparable](seqs ...iter.Seq[T]) ([]T, error) {
	return fold(seqs, func(acc, next []T) []T {
		set := make(map[T]struct{}, len(next))
		for _, v := range next {
			set[v] = struct{}{}
		}
		return lo.Filter(acc, func(v T, _ int) bool {
			_, ok := set[v]
			return ok
		})
	})
}

// Union returns every element present in at least one sequence.
func Union[T comparable](seqs ...iter.Seq[T]) ([]T, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}
	lists := make([][]T, len(seqs))
	for i, s := range seqs {
		lists[i] = seq.Collect(s)
	}
	return lo.Union(lists...), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// Unique lazily yields each distinct element of s once, in order of first
// occurrence.
func Unique[T comparable](s iter.Seq[T]) iter.Seq[T] {
	return UniqueBy(s, func(v T) T { return v })
}

// UniqueBy lazily yields the first element of every equivalence class defined
// by key, in order of first occurrence. Use [UniqueKeys] for the keys
// themselves.
func UniqueBy[T any, K comparable](s iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range s {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// UniqueKeys lazily yields each distinct key(element) of s once, in order of
// first occurrence.
//
//	compare.UniqueKeys(seq.Of(1.2, 2.4, 0.9, 3.1), math.Round) // → 1 2 3
func UniqueKeys[T any, K comparable](s iter.Seq[T], key func(T) K) iter.Seq[K] {
	return func(yield func(K) bool) {
		for v := range UniqueBy(s, key) {
			if !yield(key(v)) {
				return
			}
		}
	}
}
