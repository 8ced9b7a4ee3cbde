package object

import (
	"fmt"
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v2"
)

// Attr is one named attribute.
type Attr struct {
	Name  string
	Value any
}

// String returns "name=value".
func (a Attr) String() string { return fmt.Sprintf("%s=%v", a.Name, a.Value) }

// Namespace is anything with a name and an attribute table.
//
// Attrs yields attributes in resolution order, most specific first. A name may
// appear more than once when several levels define it; the first occurrence
// is the effective one.
type Namespace interface {
	Name() string
	Attrs() iter.Seq2[string, any]
}

// Class is a named attribute table with ordered bases.
type Class struct {
	name  string
	bases []*Class
	attrs *orderedmap.OrderedMap[string, any]
	mro   []*Class
}

// NewClass creates a class deriving from bases, in order.
// Returns [ErrInconsistentMRO] when the bases cannot be linearised.
func NewClass(name string, bases ...*Class) (*Class, error) {
	c := &Class{
		name:  name,
		bases: slices.Clone(bases),
		attrs: orderedmap.NewOrderedMap[string, any](),
	}
	mro, err := linearize(c)
	if err != nil {
		return nil, err
	}
	c.mro = mro
	return c, nil
}

// MustClass is like [NewClass] but panics on error.
func MustClass(name string, bases ...*Class) *Class {
	c, err := NewClass(name, bases...)
	if err != nil {
		panic(err)
	}
	return c
}

// Set declares (or redeclares) an attribute and returns c for chaining.
// A redeclared attribute keeps its original position.
func (c *Class) Set(name string, value any) *Class {
	c.attrs.Set(name, value)
	return c
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// String returns "<class name>".
func (c *Class) String() string { return "<class " + c.name + ">" }

// Bases returns the direct bases in declaration order.
func (c *Class) Bases() []*Class { return slices.Clone(c.bases) }

// MRO returns the method-resolution order, starting with c itself.
func (c *Class) MRO() []*Class { return slices.Clone(c.mro) }

// Declared yields the attributes declared on c itself, in declaration order.
func (c *Class) Declared() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for el := c.attrs.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
	}
}

// Attrs yields the declared attributes of every class in the MRO.
func (c *Class) Attrs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range c.mro {
			for name, v := range k.Declared() {
				if !yield(name, v) {
					return
				}
			}
		}
	}
}

// Lookup resolves name along the MRO.
func (c *Class) Lookup(name string) (any, bool) {
	for _, k := range c.mro {
		if v, ok := k.attrs.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// IsSubclass reports whether other appears in c's MRO.
func (c *Class) IsSubclass(other *Class) bool {
	return slices.Contains(c.mro, other)
}

// linearize computes the C3 linearisation of c from its bases' MROs.
func linearize(c *Class) ([]*Class, error) {
	pending := make([][]*Class, 0, len(c.bases)+1)
	for _, b := range c.bases {
		pending = append(pending, slices.Clone(b.mro))
	}
	pending = append(pending, slices.Clone(c.bases))

	out := []*Class{c}
	for {
		pending = slices.DeleteFunc(pending, func(s []*Class) bool { return len(s) == 0 })
		if len(pending) == 0 {
			return out, nil
		}
		var head *Class
		for _, s := range pending {
			if !inTail(s[0], pending) {
				head = s[0]
				break
			}
		}
		if head == nil {
			return nil, fmt.Errorf("%w: class %q", ErrInconsistentMRO, c.name)
		}
		out = append(out, head)
		for i, s := range pending {
			if s[0] == head {
				pending[i] = s[1:]
			}
		}
	}
}

func inTail(k *Class, seqs [][]*Class) bool {
	for _, s := range seqs {
		if slices.Contains(s[1:], k) {
			return true
		}
	}
	return false
}
