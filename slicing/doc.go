// Package slicing provides positional access to sequences: indexing,
// head/tail views, chunking and random selection.
//
//	slicing.At(seq.Of(5, 4, 3, 2, 1), 2, 0)   // → 3
//	slicing.At(seq.Of(5, 4, 3, 2, 1), 10, 11) // → 11 (out of range)
//
//	dice, _ := slicing.Dice(seq.Of("a", "b", "c", "d", "e"), 2, "x")
//	// → [a b] [c d] [e x]
//
// [Merge] concatenates nested sequences; [Combinations] and [Permutations]
// enumerate selections by position.
//
// [Last], [LastN] and [Initial] buffer elements because the end of a
// sequence is only known once it has been reached; [Choice] and [Sample]
// materialise their input.
package slicing
