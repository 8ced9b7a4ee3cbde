package repeat

import (
	"iter"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-blade/seq"
)

// Repeat materialises s and yields it n times. A negative n repeats forever;
// the consumer is expected to stop.
//
// Every yielded slice is a fresh copy.
func Repeat[T any](s iter.Seq[T], n int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		items := seq.Collect(s)
		for i := 0; n < 0 || i < n; i++ {
			if !yield(slices.Clone(items)) {
				return
			}
		}
	}
}

// RepeatFunc materialises s and yields fn called with its elements, n times.
// A negative n repeats forever. Every call receives a fresh slice.
//
//	repeat.RepeatFunc(seq.Of(40, 50, 60), 2, sum) // → 150 150
func RepeatFunc[T, R any](s iter.Seq[T], n int, fn func(items ...T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for items := range Repeat(s, n) {
			if !yield(fn(items...)) {
				return
			}
		}
	}
}

// Copy yields a deep copy of every element of s.
//
// Pointers, slices, arrays, maps, interfaces and exported struct fields are
// copied recursively; shared pointers stay shared within one element and
// cycles are preserved. Unexported struct fields, funcs and channels are
// copied by value.
func Copy[T any](s iter.Seq[T]) iter.Seq[T] {
	return copySeq(s, -1)
}

// ShallowCopy yields a copy of every element of s whose outermost container
// is new but whose contents are shared with the source.
func ShallowCopy[T any](s iter.Seq[T]) iter.Seq[T] {
	return copySeq(s, 1)
}

func copySeq[T any](s iter.Seq[T], depth int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			var out T
			c := &cloner{seen: make(map[ref]reflect.Value)}
			reflect.ValueOf(&out).Elem().Set(c.clone(reflect.ValueOf(&v).Elem(), depth))
			if !yield(out) {
				return
			}
		}
	}
}

// ref identifies a pointer target. The type is part of the key because a
// struct and its first field share an address.
type ref struct {
	p uintptr
	t reflect.Type
}

type cloner struct {
	seen map[ref]reflect.Value
}

// clone copies src down to depth container levels; a negative depth means no
// limit.
func (c *cloner) clone(src reflect.Value, depth int) reflect.Value {
	if depth == 0 {
		return src
	}
	next := depth - 1
	if depth < 0 {
		next = depth
	}

	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return src
		}
		key := ref{p: src.Pointer(), t: src.Type()}
		if dst, ok := c.seen[key]; ok {
			return dst
		}
		dst := reflect.New(src.Type().Elem())
		c.seen[key] = dst
		dst.Elem().Set(c.clone(src.Elem(), depth))
		return dst

	case reflect.Interface:
		if src.IsNil() {
			return src
		}
		dst := reflect.New(src.Type()).Elem()
		dst.Set(c.clone(src.Elem(), depth))
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		for i := range src.Len() {
			dst.Index(i).Set(c.clone(src.Index(i), next))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(src.Type()).Elem()
		for i := range src.Len() {
			dst.Index(i).Set(c.clone(src.Index(i), next))
		}
		return dst

	case reflect.Map:
		if src.IsNil() {
			return src
		}
		dst := reflect.MakeMapWithSize(src.Type(), src.Len())
		it := src.MapRange()
		for it.Next() {
			dst.SetMapIndex(c.clone(it.Key(), next), c.clone(it.Value(), next))
		}
		return dst

	case reflect.Struct:
		dst := reflect.New(src.Type()).Elem()
		dst.Set(src)
		for i := range src.NumField() {
			if f := dst.Field(i); f.CanSet() {
				f.Set(c.clone(src.Field(i), next))
			}
		}
		return dst

	default:
		return src
	}
}
