package numeric

import (
	"iter"
	"math"
)

// Sum adds every element of s to start.
func Sum[T Number](s iter.Seq[T], start T) T {
	total := start
	for v := range s {
		total += v
	}
	return total
}

// PreciseSum adds every element of s to start without accumulating round-off.
//
// The running total is kept as a list of non-overlapping partials (Shewchuk's
// algorithm) and rounded to the nearest float64 once, half-even. Infinities and
// NaNs short-circuit to their IEEE sum.
//
// When an intermediate sum overflows, every partial is halved and later
// inputs are scaled to match, so a finite total is still returned exactly.
// Only a total that is itself out of range becomes ±Inf.
func PreciseSum[T Number](s iter.Seq[T], start T) float64 {
	var (
		partials []float64
		special  float64
		inexact  bool
		scale    int
	)
	add := func(x float64) {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			special += x
			inexact = true
			return
		}
		x = math.Ldexp(x, -scale)
		i := 0
		for j := 0; j < len(partials); j++ {
			y := partials[j]
			if math.IsInf(x+y, 0) {
				scale++
				x *= 0.5
				halve(partials[:i])
				halve(partials[j:])
				y = partials[j]
			}
			if math.Abs(x) < math.Abs(y) {
				x, y = y, x
			}
			hi := x + y
			lo := y - (hi - x)
			if lo != 0 {
				partials[i] = lo
				i++
			}
			x = hi
		}
		partials = append(partials[:i], x)
	}

	add(float64(start))
	for v := range s {
		add(float64(v))
	}
	if inexact {
		return special
	}
	return math.Ldexp(roundPartials(partials), scale)
}

func halve(xs []float64) {
	for i := range xs {
		xs[i] *= 0.5
	}
}

// roundPartials returns the correctly rounded sum of partials, which must be
// non-overlapping and ordered by increasing magnitude.
func roundPartials(partials []float64) float64 {
	n := len(partials)
	if n == 0 {
		return 0
	}
	n--
	hi := partials[n]
	var lo float64
	for n > 0 {
		x := hi
		n--
		y := partials[n]
		hi = x + y
		lo = y - (hi - x)
		if lo != 0 {
			break
		}
	}
	// Half-way case: the dropped tail pushes the result to the next float.
	if n > 0 && ((lo < 0 && partials[n-1] < 0) || (lo > 0 && partials[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		if y == x-hi {
			hi = x
		}
	}
	return hi
}
