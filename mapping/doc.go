// Package mapping applies functions across sequences with argument
// spreading, reflective method invocation and key/value extraction.
//
// # Argument spreading
//
// [ArgMap] treats each element as the positional arguments of a call and
// [KwArgMap] as a pair of positional and keyword arguments. In merge mode the
// caller's fixed arguments are appended to each element's own; for keyword
// arguments the caller's fixed keywords win on a name collision:
//
//	calls := seq.Of(mapping.Args{Pos: []any{1}, Kw: map[string]any{"b": 2}})
//	mapping.KwArgMap(calls, fn, true, mapping.Args{Kw: map[string]any{"b": 3}})
//	// fn([1], {b: 3})
//
// # Method invocation
//
// [Invoke] calls a named method on every element. Methods that return nothing
// (or a nil result) yield the element itself, which supports in-place mutators:
//
//	for v, err := range mapping.Invoke(seq.Of(&counter{}), "Incr", 2) { ... }
package mapping
