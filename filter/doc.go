// Package filter selects elements, attributes and items from sequences, and
// walks class graphs built with package object.
//
// # Lookups
//
// [Attrs] and [Items] treat a failed lookup as absence: an element that lacks
// the attribute, key or index is skipped rather than failing the sequence.
//
//	names := filter.Attrs(seq.Of(user1, user2, 42), "Name") // 42 is skipped
//	firsts := filter.Items(seq.Of([]int{1, 2}, []int{}), 0) // → 1
//
// [Paths] follows dot-separated paths through the same lookups, using integer
// segments as positions:
//
//	cities := filter.Paths(users, "Address.City")
//	tags := filter.Paths(docs, "meta.tags.0")
//
// # Traversal
//
// [Traverse] produces one [Record] per class or instance. A record holds the
// item's own matching attributes under a synthetic "classname" entry and one
// child record for every nested class attribute that also matches. Lookups on
// a record check its own layer first, then its children in order:
//
//	pred := filter.And(filter.NotPrefixed("__"), filter.Excluding("name"))
//	for r := range filter.Traverse(seq.Of[object.Namespace](a), pred, false) {
//	    r.Get("age") // own value wins over nested ones
//	}
//
// [Dot] flattens records and nested maps into dot-path keys, naming child
// records by class name.
package filter
