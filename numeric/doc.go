// Package numeric provides aggregation over sequences of numbers: average,
// median, extremes, interval, plain and precise sums, and frequency counts.
//
// Every operation that needs at least one element returns [ErrEmpty] (which
// wraps seq.ErrEmpty) instead of a silent default:
//
//	avg, err := numeric.Average(seq.Of(10, 40, 45)) // 31.666666666666668, nil
//	_, err = numeric.Average(seq.Of[int]())         // ErrEmpty
//
// # Precise summation
//
// [PreciseSum] tracks the exact sum in a list of non-overlapping partials and
// rounds once at the end, so long runs of small magnitudes do not drift:
//
//	numeric.Sum(seq.Of(0.1, 0.1, ...), 0)        // 0.9999999999999999
//	numeric.PreciseSum(seq.Of(0.1, 0.1, ...), 0) // 1
package numeric
