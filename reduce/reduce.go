package reduce

import (
	"iter"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Flattening
// ─────────────────────────────────────────────────────────────────────────────

// Flatten lazily expands nested sequences depth-first, left to right.
//
// Slices, arrays and iter.Seq[any] values are expanded recursively. Strings
// and byte slices are yielded whole: they are sequences, but expanding them
// would only produce characters.
func Flatten(s iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range s {
			if !expand(v, yield) {
				return
			}
		}
	}
}

// expand yields the leaves of v and reports whether the consumer wants more.
func expand(v any, yield func(any) bool) bool {
	switch x := v.(type) {
	case string, []byte:
		return yield(v)
	case iter.Seq[any]:
		for e := range x {
			if !expand(e, yield) {
				return false
			}
		}
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return yield(v)
		}
		for i := range rv.Len() {
			if !expand(rv.Index(i).Interface(), yield) {
				return false
			}
		}
		return true
	}
	return yield(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Folding
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds s from the left, seeding with its first element:
// fn(fn(fn(s0, s1), s2), ...). Returns [ErrEmpty] when s is empty.
func Reduce[T any](s iter.Seq[T], fn func(acc, item T) T) (T, error) {
	return reduce(s, fn)
}

// ReduceReverse is like [Reduce] but calls fn(item, acc), which turns the
// traversal into a right-to-left composition: fn(s2, fn(s1, s0)).
func ReduceReverse[T any](s iter.Seq[T], fn func(item, acc T) T) (T, error) {
	return reduce(s, func(acc, item T) T { return fn(item, acc) })
}

func reduce[T any](s iter.Seq[T], fn func(acc, item T) T) (T, error) {
	var acc T
	started := false
	for v := range s {
		if !started {
			acc, started = v, true
			continue
		}
		acc = fn(acc, v)
	}
	if !started {
		return acc, ErrEmpty
	}
	return acc, nil
}

// Fold folds s from the left starting at seed. An empty s returns seed.
func Fold[T, A any](s iter.Seq[T], fn func(acc A, item T) A, seed A) A {
	acc := seed
	for v := range s {
		acc = fn(acc, v)
	}
	return acc
}

// FoldReverse is like [Fold] but calls fn(item, acc).
func FoldReverse[T, A any](s iter.Seq[T], fn func(item T, acc A) A, seed A) A {
	return Fold(s, func(acc A, item T) A { return fn(item, acc) }, seed)
}
