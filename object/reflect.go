package object

import (
	"fmt"
	"reflect"
	"strings"
)

// Reflect builds a [Class] from a struct value or a non-nil pointer to one.
//
// The struct's type name becomes the class name. Embedded structs become
// bases, in field order. Exported fields become attributes; fields holding a
// struct (or a non-nil pointer to one) become nested classes. Unexported
// fields are ignored.
//
// The `blade` struct tag adjusts the mapping:
//
//	Name  string `blade:"name"`   // attribute named "name"
//	Skip  int    `blade:"-"`      // not an attribute
//	When  time.Time `blade:",value"` // kept as a plain value, not a nested class
func Reflect(v any) (*Class, error) {
	root := reflect.ValueOf(v)
	rv, ok := structValue(root)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotStruct, v)
	}
	path := make(map[uintptr]struct{})
	if root.Kind() == reflect.Pointer {
		path[root.Pointer()] = struct{}{}
	}
	return reflectStruct(rv, path)
}

// structValue dereferences pointers down to a struct value.
func structValue(rv reflect.Value) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.Kind() == reflect.Struct
}

// reflectStruct converts rv; path holds the pointers being converted on the
// current branch so self-referencing structs terminate.
func reflectStruct(rv reflect.Value, path map[uintptr]struct{}) (*Class, error) {
	rt := rv.Type()
	var (
		bases []*Class
		attrs []Attr
	)
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, opts := parseTag(sf)
		if name == "-" {
			continue
		}
		fv := rv.Field(i)

		nested, isStruct := structValue(fv)
		if isStruct && opts != "value" {
			ptr, cyclic := pointerOnPath(fv, path)
			if cyclic {
				attrs = append(attrs, Attr{Name: name, Value: fv.Interface()})
				continue
			}
			if ptr != 0 {
				path[ptr] = struct{}{}
			}
			c, err := reflectStruct(nested, path)
			if ptr != 0 {
				delete(path, ptr)
			}
			if err != nil {
				return nil, err
			}
			if sf.Anonymous {
				bases = append(bases, c)
			} else {
				attrs = append(attrs, Attr{Name: name, Value: c})
			}
			continue
		}
		attrs = append(attrs, Attr{Name: name, Value: fv.Interface()})
	}

	c, err := NewClass(className(rt), bases...)
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		c.Set(a.Name, a.Value)
	}
	return c, nil
}

func pointerOnPath(fv reflect.Value, path map[uintptr]struct{}) (uintptr, bool) {
	for fv.Kind() == reflect.Interface && !fv.IsNil() {
		fv = fv.Elem()
	}
	if fv.Kind() != reflect.Pointer {
		return 0, false
	}
	ptr := fv.Pointer()
	_, ok := path[ptr]
	return ptr, ok
}

func parseTag(sf reflect.StructField) (name, opts string) {
	name = sf.Name
	tag, ok := sf.Tag.Lookup("blade")
	if !ok {
		return name, ""
	}
	n, opts, _ := strings.Cut(tag, ",")
	if n != "" {
		name = n
	}
	return name, opts
}

func className(rt reflect.Type) string {
	if rt.Name() != "" {
		return rt.Name()
	}
	return rt.String()
}
