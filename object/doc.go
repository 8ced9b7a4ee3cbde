// Package object models classes and instances with an explicit attribute
// table and method-resolution order, for the traversal helpers in package
// filter.
//
// A [Class] declares attributes in order and lists its bases; its MRO is
// computed once, at construction, with C3 linearisation. An [Instance] adds
// its own namespace on top of its class:
//
//	base := object.MustClass("Base").Set("age", 1)
//	a := object.MustClass("A", base).Set("age", 40)
//	a.Lookup("age") // 40, true
//
//	obj := object.NewInstance(a).Set("name", "methuselah")
//
// [Reflect] derives the same model from a Go struct: embedded structs become
// bases and struct-valued fields become nested classes.
package object
