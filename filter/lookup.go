package filter

import (
	"iter"
	"reflect"

	"github.com/hasbyte1/go-blade/object"
)

// ─────────────────────────────────────────────────────────────────────────────
// Attribute extraction
// ─────────────────────────────────────────────────────────────────────────────

// Attrs yields the named attributes of every element of s.
//
// With one name the attribute value itself is yielded; with several, a []any
// in name order. Attributes resolve against *object.Instance and
// *object.Class namespaces, string-keyed maps, and exported struct fields
// (through pointers and embedded structs). Elements missing any of the names
// are skipped.
func Attrs[T any](s iter.Seq[T], names ...string) iter.Seq[any] {
	return func(yield func(any) bool) {
		if len(names) == 0 {
			return
		}
		for item := range s {
			vals := make([]any, 0, len(names))
			for _, name := range names {
				v, ok := attr(item, name)
				if !ok {
					break
				}
				vals = append(vals, v)
			}
			if len(vals) != len(names) {
				continue
			}
			if !yield(single(vals)) {
				return
			}
		}
	}
}

func attr(item any, name string) (any, bool) {
	switch v := item.(type) {
	case nil:
		return nil, false
	case *object.Instance:
		return v.Get(name)
	case *object.Class:
		return v.Lookup(name)
	case *Record:
		return v.Get(name)
	case map[string]any:
		val, ok := v[name]
		return val, ok
	}

	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		val := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Item extraction
// ─────────────────────────────────────────────────────────────────────────────

// Items yields the items stored under keys in every element of s.
//
// Maps are indexed by key; slices, arrays and strings by integer position,
// negative positions counting from the end (strings are indexed by rune).
// With one key the item itself is yielded; with several, a []any. Elements for
// which any lookup fails, whether through a missing key, an out-of-range index
// or a type mismatch, are skipped.
func Items[T any](s iter.Seq[T], keys ...any) iter.Seq[any] {
	return func(yield func(any) bool) {
		if len(keys) == 0 {
			return
		}
		for item := range s {
			vals := make([]any, 0, len(keys))
			for _, key := range keys {
				v, ok := index(item, key)
				if !ok {
					break
				}
				vals = append(vals, v)
			}
			if len(vals) != len(keys) {
				continue
			}
			if !yield(single(vals)) {
				return
			}
		}
	}
}

func index(item, key any) (any, bool) {
	rv := reflect.ValueOf(item)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kv := reflect.ValueOf(key)
		if !kv.IsValid() || !kv.Type().AssignableTo(rv.Type().Key()) {
			return nil, false
		}
		val := rv.MapIndex(kv)
		if !val.IsValid() {
			return nil, false
		}
		return val.Interface(), true

	case reflect.Slice, reflect.Array:
		i, ok := position(key, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true

	case reflect.String:
		runes := []rune(rv.String())
		i, ok := position(key, len(runes))
		if !ok {
			return nil, false
		}
		return string(runes[i]), true
	}
	return nil, false
}

// position resolves an integer key against a length n.
func position(key any, n int) (int, bool) {
	kv := reflect.ValueOf(key)
	var i int
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i = int(kv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i = int(kv.Uint())
	default:
		return 0, false
	}
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func single(vals []any) any {
	if len(vals) == 1 {
		return vals[0]
	}
	return vals
}
