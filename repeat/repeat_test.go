package repeat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-blade/repeat"
	"github.com/hasbyte1/go-blade/seq"
)

type node struct {
	Name     string
	Tags     []string
	Meta     map[string]int
	Next     *node
	Any      any
	internal int
}

func TestRepeat(t *testing.T) {
	got := seq.Collect(repeat.Repeat(seq.Of(1, 2), 3))
	assert.Equal(t, [][]int{{1, 2}, {1, 2}, {1, 2}}, got)

	got[0][0] = 99
	assert.Equal(t, 1, got[1][0], "repetitions must not alias")
}

func TestRepeatZero(t *testing.T) {
	assert.Empty(t, seq.Collect(repeat.Repeat(seq.Of(1), 0)))
}

func TestRepeatForever(t *testing.T) {
	n := 0
	for chunk := range repeat.Repeat(seq.Of("a"), -1) {
		assert.Equal(t, []string{"a"}, chunk)
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestRepeatFunc(t *testing.T) {
	list := func(items ...int) []int { return items }
	got := seq.Collect(repeat.RepeatFunc(seq.Of(40, 50, 60), 3, list))
	assert.Equal(t, [][]int{{40, 50, 60}, {40, 50, 60}, {40, 50, 60}}, got)

	got[0][0] = 1
	assert.Equal(t, 40, got[1][0])

	calls := 0
	sum := func(items ...int) int {
		calls++
		total := 0
		for _, v := range items {
			total += v
		}
		return total
	}
	for v := range repeat.RepeatFunc(seq.Of(1, 2), -1, sum) {
		assert.Equal(t, 3, v)
		if calls == 4 {
			break
		}
	}
	assert.Equal(t, 4, calls)
}

func TestCopyIsDeep(t *testing.T) {
	src := &node{
		Name:     "root",
		Tags:     []string{"a", "b"},
		Meta:     map[string]int{"x": 1},
		Next:     &node{Name: "child"},
		Any:      []int{1, 2},
		internal: 7,
	}
	got := seq.Collect(repeat.Copy(seq.Of(src)))
	require.Len(t, got, 1)
	dup := got[0]

	require.NotSame(t, src, dup)
	assert.Equal(t, src, dup)
	assert.Equal(t, 7, dup.internal)

	dup.Tags[0] = "z"
	dup.Meta["x"] = 2
	dup.Next.Name = "changed"
	dup.Any.([]int)[0] = 42

	assert.Equal(t, "a", src.Tags[0])
	assert.Equal(t, 1, src.Meta["x"])
	assert.Equal(t, "child", src.Next.Name)
	assert.Equal(t, 1, src.Any.([]int)[0])
}

func TestCopyPreservesCycles(t *testing.T) {
	a := &node{Name: "a"}
	a.Next = a
	dup := seq.Collect(repeat.Copy(seq.Of(a)))[0]
	require.NotSame(t, a, dup)
	assert.Same(t, dup, dup.Next)
}

type point struct{ X, Y int }

type pinned struct {
	Whole *point
	Field *int
	Grid  *[2]int
	Cell  *int
}

func TestCopyPointersSharingAnAddress(t *testing.T) {
	p := &point{X: 1, Y: 2}
	grid := &[2]int{3, 4}
	src := pinned{Whole: p, Field: &p.X, Grid: grid, Cell: &grid[0]}

	var got []pinned
	require.NotPanics(t, func() { got = seq.Collect(repeat.Copy(seq.Of(src))) })
	require.Len(t, got, 1)
	dup := got[0]

	assert.Equal(t, point{X: 1, Y: 2}, *dup.Whole)
	assert.Equal(t, 1, *dup.Field)
	assert.Equal(t, [2]int{3, 4}, *dup.Grid)
	assert.Equal(t, 3, *dup.Cell)
	assert.NotSame(t, p, dup.Whole)
	assert.NotSame(t, grid, dup.Grid)
}

func TestCopyNilInterface(t *testing.T) {
	got := seq.Collect(repeat.Copy(seq.Of[any](nil, 3)))
	assert.Equal(t, []any{nil, 3}, got)
}

func TestShallowCopy(t *testing.T) {
	inner := []int{1}
	src := [][]int{inner, {2}}
	dup := seq.Collect(repeat.ShallowCopy(seq.Of(src)))[0]

	dup[1] = []int{9}
	assert.Equal(t, []int{2}, src[1], "outer slice is new")

	dup[0][0] = 5
	assert.Equal(t, 5, src[0][0], "inner slices are shared")
}
