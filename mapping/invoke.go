package mapping

import (
	"fmt"
	"iter"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Invoke calls the exported method named method on every element of s with
// args and yields its result.
//
//   - no results, or a single nil result: the element itself is yielded;
//   - a trailing non-nil error result: yielded as the error unchanged;
//   - one remaining result: yielded as is;
//   - several: yielded as []any.
//
// Elements lacking the method yield an error wrapping [ErrNoMethod]; argument
// mismatches yield [ErrBadArguments].
func Invoke[T any](s iter.Seq[T], method string, args ...any) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for item := range s {
			if !yield(invoke(item, method, args)) {
				return
			}
		}
	}
}

func invoke(item any, method string, args []any) (any, error) {
	rv := reflect.ValueOf(item)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: %q on nil", ErrNoMethod, method)
	}
	m := rv.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoMethod, rv.Type(), method)
	}
	in, err := callArgs(m.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s: %v", ErrBadArguments, rv.Type(), method, err)
	}

	out := m.Call(in)
	if n := len(out); n > 0 && out[n-1].Type().Implements(errorType) {
		if errv := out[n-1]; !isNil(errv) {
			return nil, errv.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return item, nil
	case 1:
		if isNil(out[0]) {
			return item, nil
		}
		return out[0].Interface(), nil
	default:
		res := make([]any, len(out))
		for i, v := range out {
			res[i] = v.Interface()
		}
		return res, nil
	}
}

// callArgs converts args into call arguments for a method of type mt.
func callArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("want at least %d arguments, got %d", fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("want %d arguments, got %d", fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		want := mt.In(min(i, mt.NumIn()-1))
		if i >= fixed {
			want = want.Elem()
		}
		if arg == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("argument %d: nil for %s", i, want)
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
