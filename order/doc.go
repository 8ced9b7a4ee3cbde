// Package order provides grouping and random reordering of sequences.
//
// [GroupBy] sorts its input by key before partitioning, so every key appears
// in exactly one group and groups come out in ascending key order:
//
//	for g := range order.GroupBy(seq.Of("apple", "bob", "avocado"), firstLetter) {
//	    fmt.Println(g.Key, g.Members) // a [apple avocado], then b [bob]
//	}
//
// [Sort] and [Reverse] materialise their input before yielding anything.
package order
