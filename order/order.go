package order

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/hasbyte1/go-blade/seq"
)

// Group is one run of elements sharing a key.
type Group[K, T any] struct {
	Key     K
	Members []T
}

// String returns "key: [members]".
func (g Group[K, T]) String() string {
	return fmt.Sprintf("%v: %v", g.Key, g.Members)
}

// GroupBy sorts s by key (stable) and yields one [Group] per run of equal
// keys. Members keep their relative input order.
//
// The input is materialised on the first pull.
func GroupBy[T any, K cmp.Ordered](s iter.Seq[T], key func(T) K) iter.Seq[Group[K, T]] {
	return func(yield func(Group[K, T]) bool) {
		items := seq.Collect(s)
		keys := make([]K, len(items))
		idx := make([]int, len(items))
		for i, item := range items {
			idx[i] = i
			keys[i] = key(item)
		}
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(keys[a], keys[b]) })

		for start := 0; start < len(idx); {
			k := keys[idx[start]]
			members := []T{items[idx[start]]}
			end := start + 1
			for end < len(idx) && keys[idx[end]] == k {
				members = append(members, items[idx[end]])
				end++
			}
			if !yield(Group[K, T]{Key: k, Members: members}) {
				return
			}
			start = end
		}
	}
}

// GroupByValue groups s by the elements themselves.
func GroupByValue[T cmp.Ordered](s iter.Seq[T]) iter.Seq[Group[T, T]] {
	return GroupBy(s, func(v T) T { return v })
}

// Shuffle materialises s and yields its elements in a uniformly random order.
func Shuffle[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		items := seq.Collect(s)
		rand.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Sort materialises s and yields its elements ordered by compare, keeping
// equal elements in input order.
func Sort[T any](s iter.Seq[T], compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		items := seq.Collect(s)
		slices.SortStableFunc(items, compare)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Reverse materialises s and yields its elements last to first.
func Reverse[T any](s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(seq.Collect(s)) {
			if !yield(v) {
				return
			}
		}
	}
}
