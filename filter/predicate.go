package filter

import "strings"

// AttrPredicate decides whether a (name, value) attribute pair is included.
type AttrPredicate func(name string, value any) bool

// NotPrefixed accepts attributes whose name starts with none of prefixes.
func NotPrefixed(prefixes ...string) AttrPredicate {
	return func(name string, _ any) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return false
			}
		}
		return true
	}
}

// Excluding accepts attributes whose name is not one of names.
func Excluding(names ...string) AttrPredicate {
	return func(name string, _ any) bool {
		for _, n := range names {
			if name == n {
				return false
			}
		}
		return true
	}
}

// And accepts attributes accepted by every predicate.
func And(preds ...AttrPredicate) AttrPredicate {
	return func(name string, value any) bool {
		for _, p := range preds {
			if !p(name, value) {
				return false
			}
		}
		return true
	}
}

// keep applies pred, honouring invert. A nil predicate accepts everything.
func keep(pred AttrPredicate, invert bool, name string, value any) bool {
	if pred == nil {
		return !invert
	}
	return pred(name, value) != invert
}
