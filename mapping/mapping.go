package mapping

import (
	"iter"
	"maps"
	"slices"
)

// Args is one call's worth of positional and keyword arguments.
type Args struct {
	Pos []any
	Kw  map[string]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Argument spreading
// ─────────────────────────────────────────────────────────────────────────────

// ArgMap calls fn with each element of s spread as positional arguments.
// When merge is true, extra is appended after every element's own arguments.
func ArgMap[R any](s iter.Seq[[]any], fn func(args ...any) R, merge bool, extra ...any) iter.Seq[R] {
	return func(yield func(R) bool) {
		for args := range s {
			if merge {
				args = append(slices.Clip(args), extra...)
			}
			if !yield(fn(args...)) {
				return
			}
		}
	}
}

// KwArgMap calls fn with the positional and keyword arguments of each
// element of s.
//
// When merge is true, extra.Pos is appended after the element's positional
// arguments and extra.Kw is laid over a copy of the element's keywords, so the
// caller's fixed keywords take precedence on a name collision. Element maps
// are never modified.
func KwArgMap[R any](s iter.Seq[Args], fn func(pos []any, kw map[string]any) R, merge bool, extra Args) iter.Seq[R] {
	return func(yield func(R) bool) {
		for a := range s {
			pos, kw := a.Pos, a.Kw
			if merge {
				pos = append(slices.Clip(pos), extra.Pos...)
				kw = make(map[string]any, len(a.Kw)+len(extra.Kw))
				maps.Copy(kw, a.Kw)
				maps.Copy(kw, extra.Kw)
			}
			if !yield(fn(pos, kw)) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Key/value extraction
// ─────────────────────────────────────────────────────────────────────────────

// Keys yields the keys of every map in s, map after map.
// Keys within one map come in Go's map iteration order.
func Keys[K comparable, V any](s iter.Seq[map[K]V]) iter.Seq[K] {
	return KeyValue(s, func(k K, _ V) K { return k })
}

// Values yields the values of every map in s, map after map.
func Values[K comparable, V any](s iter.Seq[map[K]V]) iter.Seq[V] {
	return KeyValue(s, func(_ K, v V) V { return v })
}

// MapKeys yields fn(key) for every key of every map in s.
func MapKeys[K comparable, V, R any](s iter.Seq[map[K]V], fn func(K) R) iter.Seq[R] {
	return KeyValue(s, func(k K, _ V) R { return fn(k) })
}

// MapValues yields fn(value) for every value of every map in s.
func MapValues[K comparable, V, R any](s iter.Seq[map[K]V], fn func(V) R) iter.Seq[R] {
	return KeyValue(s, func(_ K, v V) R { return fn(v) })
}

// KeyValue yields fn(key, value) for every entry of every map in s.
func KeyValue[K comparable, V, R any](s iter.Seq[map[K]V], fn func(K, V) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for m := range s {
			for k, v := range m {
				if !yield(fn(k, v)) {
					return
				}
			}
		}
	}
}
