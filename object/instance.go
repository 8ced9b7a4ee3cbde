package object

import (
	"iter"

	"github.com/elliotchance/orderedmap/v2"
)

// Instance is an object of a [Class] with its own attribute namespace.
type Instance struct {
	class *Class
	attrs *orderedmap.OrderedMap[string, any]
}

// NewInstance creates an instance of c with an empty namespace.
func NewInstance(c *Class) *Instance {
	return &Instance{class: c, attrs: orderedmap.NewOrderedMap[string, any]()}
}

// Set stores an attribute in the instance namespace and returns i for
// chaining. It shadows any class attribute of the same name.
func (i *Instance) Set(name string, value any) *Instance {
	i.attrs.Set(name, value)
	return i
}

// Get resolves name in the instance namespace, then along the class MRO.
func (i *Instance) Get(name string) (any, bool) {
	if v, ok := i.attrs.Get(name); ok {
		return v, true
	}
	return i.class.Lookup(name)
}

// Class returns the instance's class.
func (i *Instance) Class() *Class { return i.class }

// Name returns the name of the instance's class.
func (i *Instance) Name() string { return i.class.name }

// String returns "<name instance>".
func (i *Instance) String() string { return "<" + i.class.name + " instance>" }

// Attrs yields the instance namespace followed by the class attributes in
// MRO order.
func (i *Instance) Attrs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for el := i.attrs.Front(); el != nil; el = el.Next() {
			if !yield(el.Key, el.Value) {
				return
			}
		}
		for name, v := range i.class.Attrs() {
			if !yield(name, v) {
				return
			}
		}
	}
}
