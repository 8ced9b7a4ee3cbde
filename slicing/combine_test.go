package slicing_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-blade/seq"
	"github.com/hasbyte1/go-blade/slicing"
)

func TestMerge(t *testing.T) {
	nested := seq.Of(seq.Of(1, 2), seq.Of[int](), seq.Of(3))
	assert.Equal(t, []int{1, 2, 3}, seq.Collect(slicing.Merge(nested)))

	first := seq.Collect(slicing.FirstN(slicing.Merge(nested), 2))
	assert.Equal(t, []int{1, 2}, first)

	assert.Empty(t, seq.Collect(slicing.Merge(seq.Of[iter.Seq[int]]())))
}

func TestCombinations(t *testing.T) {
	got, err := slicing.Combinations(seq.Of("a", "b", "c", "d"), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"}, {"c", "d"},
	}, seq.Collect(got))

	got, err = slicing.Combinations(seq.Of("a", "b"), 3)
	require.NoError(t, err)
	assert.Empty(t, seq.Collect(got))

	got, err = slicing.Combinations(seq.Of("a"), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{}}, seq.Collect(got))

	_, err = slicing.Combinations(seq.Of("a"), -1)
	assert.ErrorIs(t, err, slicing.ErrInvalidSize)
}

func TestPermutations(t *testing.T) {
	assert.Equal(t, [][]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}, seq.Collect(slicing.Permutations(seq.Of(1, 2, 3))))

	assert.Equal(t, [][]int{
		{1, 2}, {1, 3}, {2, 1}, {2, 3}, {3, 1}, {3, 2},
	}, seq.Collect(slicing.PermutationsN(seq.Of(1, 2, 3), 2)))

	assert.Empty(t, seq.Collect(slicing.PermutationsN(seq.Of(1), 2)))
	assert.Equal(t, [][]int{{}}, seq.Collect(slicing.Permutations(seq.Of[int]())))
}

func TestPermutationsCount(t *testing.T) {
	assert.Equal(t, 24, seq.Count(slicing.Permutations(seq.Of(1, 2, 3, 4))))
	assert.Equal(t, 12, seq.Count(slicing.PermutationsN(seq.Of(1, 2, 3, 4), 2)))
}

func TestCombinationsEarlyBreak(t *testing.T) {
	got, err := slicing.Combinations(seq.Of(1, 2, 3, 4), 2)
	require.NoError(t, err)
	n := 0
	for range got {
		if n++; n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
