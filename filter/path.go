package filter

import (
	"iter"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation paths
//
// A path such as "owner.address.city" or "pets.0.name" descends one segment at
// a time. On a traversal [Record] a segment names an own attribute or, failing
// that, a child record by class name.
// ─────────────────────────────────────────────────────────────────────────────

// Paths yields the value at each dot-separated path for every element of s.
//
// Each segment is resolved as an attribute (as [Attrs] does) and, when that
// fails and the segment is an integer, as a position (as [Items] does). With
// one path the value is yielded; with several, a []any. Elements on which any
// path fails to resolve are skipped.
func Paths[T any](s iter.Seq[T], paths ...string) iter.Seq[any] {
	return func(yield func(any) bool) {
		if len(paths) == 0 {
			return
		}
		for item := range s {
			vals := make([]any, 0, len(paths))
			for _, p := range paths {
				v, ok := Path(item, p)
				if !ok {
					break
				}
				vals = append(vals, v)
			}
			if len(vals) != len(paths) {
				continue
			}
			if !yield(single(vals)) {
				return
			}
		}
	}
}

// Path resolves a single dot-separated path against item.
func Path(item any, path string) (any, bool) {
	cur := item
	for _, seg := range strings.Split(path, ".") {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func step(cur any, seg string) (any, bool) {
	if r, ok := cur.(*Record); ok {
		if v, ok := r.layer.Get(seg); ok {
			return v, true
		}
		for _, c := range r.children {
			if c.Classname() == seg {
				return c, true
			}
		}
		return nil, false
	}
	if v, ok := attr(cur, seg); ok {
		return v, true
	}
	if i, err := strconv.Atoi(seg); err == nil {
		return index(cur, i)
	}
	return nil, false
}

// Dot flattens nested map[string]any values and traversal records into a
// single-level map keyed by dot paths. Child records are keyed by their class
// name. Any other value is returned as a one-entry map under the empty key.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
func Dot(v any) map[string]any {
	out := make(map[string]any)
	switch v.(type) {
	case map[string]any, *Record:
		dot("", v, out)
	default:
		out[""] = v
	}
	return out
}

func dot(prefix string, v any, out map[string]any) {
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch v := v.(type) {
	case map[string]any:
		for k, val := range v {
			dotValue(key(k), val, out)
		}
	case *Record:
		for el := v.layer.Front(); el != nil; el = el.Next() {
			dotValue(key(el.Key), el.Value, out)
		}
		for _, c := range v.children {
			dot(key(c.Classname()), c, out)
		}
	}
}

func dotValue(key string, v any, out map[string]any) {
	switch v.(type) {
	case map[string]any, *Record:
		dot(key, v, out)
	default:
		out[key] = v
	}
}
