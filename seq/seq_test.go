package seq_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-blade/seq"
)

// once wraps items in a sequence that fails the test when ranged twice.
func once[T any](t *testing.T, items ...T) iter.Seq[T] {
	t.Helper()
	used := false
	return func(yield func(T) bool) {
		if used {
			t.Fatal("single-pass sequence consumed twice")
		}
		used = true
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

func TestOfCopiesInput(t *testing.T) {
	items := []int{1, 2, 3}
	s := seq.Of(items...)
	items[0] = 99
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(s))
	// restartable
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(s))
}

func TestCollectNil(t *testing.T) {
	got := seq.Collect[int](nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, seq.Count[int](nil))
	assert.Equal(t, 0, seq.Count(seq.Of[int]()))
	assert.Equal(t, 4, seq.Count(seq.Of("a", "b", "c", "d")))
}

func TestTee(t *testing.T) {
	copies := seq.Tee(once(t, 1, 2, 3), 3)
	require.Len(t, copies, 3)
	for _, c := range copies {
		assert.Equal(t, []int{1, 2, 3}, seq.Collect(c))
	}
	// copies stay readable after the source is drained
	assert.Equal(t, 3, seq.Count(copies[0]))
}

func TestTeeEarlyBreak(t *testing.T) {
	copies := seq.Tee(once(t, 1, 2, 3), 2)
	for v := range copies[0] {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(copies[1]))
}

func TestTeeNonPositive(t *testing.T) {
	assert.Nil(t, seq.Tee(seq.Of(1), 0))
	assert.Nil(t, seq.Tee(seq.Of(1), -2))
}

func TestZipFill(t *testing.T) {
	got := seq.Collect(seq.ZipFill(0, seq.Of(1, 2, 3), seq.Of(4)))
	assert.Equal(t, [][]int{{1, 4}, {2, 0}, {3, 0}}, got)
}

func TestZipFillNoInputs(t *testing.T) {
	assert.Empty(t, seq.Collect(seq.ZipFill[int](0)))
}

func TestZipFillSharedPuller(t *testing.T) {
	next, stop := iter.Pull(slices.Values([]string{"a", "b", "c"}))
	defer stop()
	shared := func(yield func(string) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	got := seq.Collect(seq.ZipFill("x", shared, shared))
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "x"}}, got)
}

func TestZipFillEarlyBreak(t *testing.T) {
	rows := 0
	for range seq.ZipFill(0, seq.Of(1, 2, 3), seq.Of(4, 5, 6)) {
		rows++
		if rows == 2 {
			break
		}
	}
	assert.Equal(t, 2, rows)
}
