package numeric

import (
	"cmp"
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/hasbyte1/go-blade/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Central tendency
// ─────────────────────────────────────────────────────────────────────────────

// Average returns the arithmetic mean of s.
// Returns [ErrEmpty] when s produces no elements.
func Average[T Number](s iter.Seq[T]) (float64, error) {
	copies := seq.Tee(s, 2)
	n := seq.Count(copies[0])
	if n == 0 {
		return 0, ErrEmpty
	}
	var total float64
	for v := range copies[1] {
		total += float64(v)
	}
	return total / float64(n), nil
}

// Median returns the middle element of s once sorted, or the mean of the two
// middle elements when s has an even number of elements.
func Median[T Number](s iter.Seq[T]) (float64, error) {
	items := seq.Collect(s)
	if len(items) == 0 {
		return 0, ErrEmpty
	}
	slices.Sort(items)
	mid := len(items) / 2
	if len(items)%2 == 1 {
		return float64(items[mid]), nil
	}
	return (float64(items[mid-1]) + float64(items[mid])) / 2, nil
}

// Frequency tallies s and returns its frequency table.
// Returns [ErrEmpty] when s produces no elements.
func Frequency[T comparable](s iter.Seq[T]) (Count[T], error) {
	tally := orderedmap.NewOrderedMap[T, int]()
	for v := range s {
		n, _ := tally.Get(v)
		tally.Set(v, n+1)
	}
	if tally.Len() == 0 {
		return Count[T]{}, ErrEmpty
	}
	overall := make([]Entry[T], 0, tally.Len())
	for el := tally.Front(); el != nil; el = el.Next() {
		overall = append(overall, Entry[T]{Value: el.Key, Count: el.Value})
	}
	slices.SortStableFunc(overall, func(a, b Entry[T]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return Count[T]{
		Least:   overall[len(overall)-1].Value,
		Most:    overall[0].Value,
		Overall: overall,
	}, nil
}

// Mode returns the most frequent element of s; ties go to the value seen first.
func Mode[T comparable](s iter.Seq[T]) (T, error) {
	c, err := Frequency(s)
	return c.Most, err
}

// ─────────────────────────────────────────────────────────────────────────────
// Extremes
// ─────────────────────────────────────────────────────────────────────────────

// MinMax returns the smallest and largest element of s, each found in its own
// pass over a buffered copy of the input.
func MinMax[T cmp.Ordered](s iter.Seq[T]) (Bounds[T], error) {
	copies := seq.Tee(s, 2)
	lo, ok := extreme(copies[0], func(a, b T) bool { return a < b })
	if !ok {
		return Bounds[T]{}, ErrEmpty
	}
	hi, _ := extreme(copies[1], func(a, b T) bool { return a > b })
	return Bounds[T]{Min: lo, Max: hi}, nil
}

func extreme[T any](s iter.Seq[T], better func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for v := range s {
		if !found || better(v, best) {
			best, found = v, true
		}
	}
	return best, found
}

// Interval returns the distance between the largest and smallest element.
func Interval[T Number](s iter.Seq[T]) (T, error) {
	items := seq.Collect(s)
	if len(items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	slices.Sort(items)
	return items[len(items)-1] - items[0], nil
}
