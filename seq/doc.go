// Package seq provides the low-level sequence helpers every other go-blade
// package is built on.
//
// A sequence is a plain [iter.Seq]. Helpers in this package either drain a
// sequence into a value ([Collect], [Count]) or return a new lazily evaluated
// sequence ([Tee], [ZipFill]):
//
//	nums := seq.Of(1, 2, 3)
//	copies := seq.Tee(nums, 2) // two independent readers of nums
//	rows := seq.ZipFill(0, seq.Of(1, 2, 3), seq.Of(4)) // → [1 4] [2 0] [3 0]
//
// # Errors
//
// [ErrEmpty] is the root empty-input error. Operations in the sibling packages
// that need at least one element return their own sentinel wrapping it, so
//
//	errors.Is(err, seq.ErrEmpty)
//
// detects every empty-input failure regardless of which package produced it.
package seq
