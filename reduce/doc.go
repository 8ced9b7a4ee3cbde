// Package reduce collapses sequences: recursive flattening and left folds.
//
//	flat := seq.Collect(reduce.Flatten(seq.Of[any]([]any{1, []any{2}}, "here")))
//	// → [1 2 here]
//
//	sum, _ := reduce.Reduce(seq.Of(1, 2, 3), func(a, b int) int { return a + b })
//	// → 6
//
// The Reverse variants call the reducer with its arguments swapped,
// fn(item, acc), while still visiting elements left to right.
package reduce
