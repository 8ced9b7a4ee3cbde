// Package compare provides truth tests and set algebra over sequences.
//
// Set operations treat every input sequence as a mathematical set: duplicates
// collapse and the result lists each surviving element once, in the order it
// first appears in the folded inputs.
//
//	left, _ := compare.Diff(seq.Of(1, 2, 3, 4, 5), seq.Of(5, 2, 10), seq.Of(10, 11, 2))
//	// → [1 3 4]
//
//	uniq := seq.Collect(compare.Unique(seq.Of(1, 2, 1, 3, 1, 4)))
//	// → [1 2 3 4]
package compare
