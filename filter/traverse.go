package filter

import (
	"fmt"
	"iter"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/hasbyte1/go-blade/object"
)

// ClassnameKey is the synthetic attribute holding a record's class name.
// Class attributes of the same name are not copied into records.
const ClassnameKey = "classname"

// Record is the traversal result for one class or instance: its own layer of
// attributes plus one child record per nested class.
//
// Lookups walk the own layer first and then the children depth-first, so an
// attribute defined by the item shadows the same name in a nested class.
type Record struct {
	layer    *orderedmap.OrderedMap[string, any]
	children []*Record
}

func newRecord() *Record {
	return &Record{layer: orderedmap.NewOrderedMap[string, any]()}
}

// Classname returns the record's synthetic class name.
func (r *Record) Classname() string {
	v, _ := r.layer.Get(ClassnameKey)
	s, _ := v.(string)
	return s
}

// Own returns the record's own layer in insertion order.
func (r *Record) Own() []object.Attr {
	out := make([]object.Attr, 0, r.layer.Len())
	for el := r.layer.Front(); el != nil; el = el.Next() {
		out = append(out, object.Attr{Name: el.Key, Value: el.Value})
	}
	return out
}

// Children returns the child records in discovery order.
func (r *Record) Children() []*Record {
	out := make([]*Record, len(r.children))
	copy(out, r.children)
	return out
}

// Layers returns every layer of the chain in lookup order: the own layer,
// then each child's layers.
func (r *Record) Layers() [][]object.Attr {
	out := [][]object.Attr{r.Own()}
	for _, c := range r.children {
		out = append(out, c.Layers()...)
	}
	return out
}

// Get resolves name through the chain; the first layer defining it wins.
func (r *Record) Get(name string) (any, bool) {
	if v, ok := r.layer.Get(name); ok {
		return v, true
	}
	for _, c := range r.children {
		if v, ok := c.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns every name visible through the chain, each once, in lookup
// order.
func (r *Record) Keys() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, layer := range r.Layers() {
		for _, a := range layer {
			if _, ok := seen[a.Name]; !ok {
				seen[a.Name] = struct{}{}
				out = append(out, a.Name)
			}
		}
	}
	return out
}

// Map flattens the chain into a plain map using lookup precedence.
func (r *Record) Map() map[string]any {
	out := make(map[string]any)
	for _, name := range r.Keys() {
		out[name], _ = r.Get(name)
	}
	return out
}

// String renders the chain as "{k: v, ...} -> {k: v, ...}".
func (r *Record) String() string {
	layers := r.Layers()
	parts := make([]string, len(layers))
	for i, layer := range layers {
		kv := make([]string, len(layer))
		for j, a := range layer {
			kv[j] = fmt.Sprintf("%s: %v", a.Name, a.Value)
		}
		parts[i] = "{" + strings.Join(kv, ", ") + "}"
	}
	return strings.Join(parts, " -> ")
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Traverse yields one [Record] per element of s.
//
// Each element's attributes are walked in resolution order (instance
// namespace, then the class MRO) and the first definition of every name is
// kept. Pairs are included when pred returns true, or false when invert is
// set; a nil pred includes everything. Included *object.Class values become
// child records, built the same way, whose classname is the attribute name;
// everything else is stored on the element's own layer after its classname.
//
// A class already being walked on the current branch is stored as a plain
// attribute instead of being entered again.
func Traverse(s iter.Seq[object.Namespace], pred AttrPredicate, invert bool) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for ns := range s {
			r := newRecord()
			r.layer.Set(ClassnameKey, ns.Name())
			walk(ns, pred, invert, map[*object.Class]struct{}{classOf(ns): {}}, r)
			if !yield(r) {
				return
			}
		}
	}
}

func walk(ns object.Namespace, pred AttrPredicate, invert bool, path map[*object.Class]struct{}, r *Record) {
	for name, v := range resolved(ns) {
		if name == ClassnameKey || !keep(pred, invert, name, v) {
			continue
		}
		c, _ := v.(*object.Class)
		if _, onPath := path[c]; c == nil || onPath {
			r.layer.Set(name, v)
			continue
		}
		path[c] = struct{}{}
		child := newRecord()
		walk(c, pred, invert, path, child)
		child.layer.Set(ClassnameKey, name)
		delete(path, c)
		r.children = append(r.children, child)
	}
}

// resolved yields the effective attributes of ns: the first definition of
// each name in resolution order.
func resolved(ns object.Namespace) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		seen := make(map[string]struct{})
		for name, v := range ns.Attrs() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			if !yield(name, v) {
				return
			}
		}
	}
}

func classOf(ns object.Namespace) *object.Class {
	switch v := ns.(type) {
	case *object.Class:
		return v
	case *object.Instance:
		return v.Class()
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shallow members
// ─────────────────────────────────────────────────────────────────────────────

// Members yields the effective (name, value) attributes of every element of
// s that pass pred (inverted when invert is set), without descending into
// nested classes. Results from all elements are concatenated.
func Members(s iter.Seq[object.Namespace], pred AttrPredicate, invert bool) iter.Seq[object.Attr] {
	return func(yield func(object.Attr) bool) {
		for ns := range s {
			for name, v := range resolved(ns) {
				if !keep(pred, invert, name, v) {
					continue
				}
				if !yield(object.Attr{Name: name, Value: v}) {
					return
				}
			}
		}
	}
}

// MRO yields the method-resolution order of every class in s.
func MRO(s iter.Seq[*object.Class]) iter.Seq[[]*object.Class] {
	return func(yield func([]*object.Class) bool) {
		for c := range s {
			if !yield(c.MRO()) {
				return
			}
		}
	}
}
