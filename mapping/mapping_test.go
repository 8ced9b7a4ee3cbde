package mapping_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-blade/mapping"
	"github.com/hasbyte1/go-blade/seq"
)

func product(args ...any) int {
	p := 1
	for _, a := range args {
		p *= a.(int)
	}
	return p
}

func TestArgMap(t *testing.T) {
	in := seq.Of([]any{1, 2}, []any{2, 3}, []any{3, 4})
	assert.Equal(t, []int{2, 6, 12}, seq.Collect(mapping.ArgMap(in, product, false)))
}

func TestArgMapMerge(t *testing.T) {
	first := []any{1, 2}
	in := seq.Of(first, []any{2, 3}, []any{3, 4})
	got := seq.Collect(mapping.ArgMap(in, product, true, 10))
	assert.Equal(t, []int{20, 60, 120}, got)
	assert.Len(t, first, 2)
}

func TestArgMapMergeKeepsOrder(t *testing.T) {
	join := func(args ...any) string { return fmt.Sprint(args...) }
	in := seq.Of([]any{"a", "b"})
	got := seq.Collect(mapping.ArgMap(in, join, true, "x", "y"))
	assert.Equal(t, []string{fmt.Sprint("a", "b", "x", "y")}, got)
}

func describe(pos []any, kw map[string]any) string {
	sum := 0
	for _, p := range pos {
		sum += p.(int)
	}
	return fmt.Sprintf("%d a=%v b=%v", sum, kw["a"], kw["b"])
}

func TestKwArgMap(t *testing.T) {
	in := seq.Of(
		mapping.Args{Pos: []any{1, 2}, Kw: map[string]any{"a": 1, "b": 2}},
		mapping.Args{Pos: []any{3}, Kw: map[string]any{"a": 3}},
	)
	got := seq.Collect(mapping.KwArgMap(in, describe, false, mapping.Args{}))
	assert.Equal(t, []string{"3 a=1 b=2", "3 a=3 b=<nil>"}, got)
}

func TestKwArgMapMergeFixedKeywordsWin(t *testing.T) {
	itemKw := map[string]any{"a": 1, "b": 2}
	in := seq.Of(mapping.Args{Pos: []any{1}, Kw: itemKw})
	extra := mapping.Args{Pos: []any{10}, Kw: map[string]any{"b": 20}}

	got := seq.Collect(mapping.KwArgMap(in, describe, true, extra))
	assert.Equal(t, []string{"11 a=1 b=20"}, got)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, itemKw, "element keywords must not be modified")
}

type counter struct{ n int }

func (c *counter) Incr(by int)         { c.n += by }
func (c *counter) Value() int          { return c.n }
func (c *counter) Pair() (int, string) { return c.n, "n" }
func (c *counter) Reset() *counter     { return nil }
func (c *counter) Check(limit int) (int, error) {
	if c.n > limit {
		return 0, errors.New("over limit")
	}
	return c.n, nil
}
func (c *counter) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func TestInvokeNoResultYieldsItem(t *testing.T) {
	a, b := &counter{}, &counter{n: 5}
	var got []any
	for v, err := range mapping.Invoke(seq.Of(a, b), "Incr", 2) {
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []any{a, b}, got)
	assert.Equal(t, 2, a.n)
	assert.Equal(t, 7, b.n)
}

func TestInvokeResults(t *testing.T) {
	c := &counter{n: 3}
	for v, err := range mapping.Invoke(seq.Of(c), "Value") {
		require.NoError(t, err)
		assert.Equal(t, 3, v)
	}
	for v, err := range mapping.Invoke(seq.Of(c), "Pair") {
		require.NoError(t, err)
		assert.Equal(t, []any{3, "n"}, v)
	}
	for v, err := range mapping.Invoke(seq.Of(c), "Reset") {
		require.NoError(t, err)
		assert.Same(t, c, v)
	}
	for v, err := range mapping.Invoke(seq.Of(c), "Join", "-", "a", "b") {
		require.NoError(t, err)
		assert.Equal(t, "a-b", v)
	}
}

func TestInvokeErrors(t *testing.T) {
	c := &counter{n: 3}
	for _, err := range mapping.Invoke(seq.Of(c), "Check", 1) {
		assert.EqualError(t, err, "over limit")
	}
	for _, err := range mapping.Invoke(seq.Of(c), "Missing") {
		assert.ErrorIs(t, err, mapping.ErrNoMethod)
	}
	for _, err := range mapping.Invoke(seq.Of(c), "Incr", "two") {
		assert.ErrorIs(t, err, mapping.ErrBadArguments)
	}
	for _, err := range mapping.Invoke(seq.Of(c), "Incr") {
		assert.ErrorIs(t, err, mapping.ErrBadArguments)
	}
}

func TestKeysValues(t *testing.T) {
	in := seq.Of(map[string]int{"a": 1, "b": 2}, map[string]int{"c": 3})
	assert.ElementsMatch(t, []string{"a", "b", "c"}, seq.Collect(mapping.Keys(in)))
	assert.ElementsMatch(t, []int{1, 2, 3}, seq.Collect(mapping.Values(in)))

	pairs := mapping.KeyValue(in, func(k string, v int) string { return fmt.Sprintf("%s=%d", k, v) })
	assert.ElementsMatch(t, []string{"a=1", "b=2", "c=3"}, seq.Collect(pairs))
}

func TestMapKeysValues(t *testing.T) {
	in := seq.Of(map[int]int{1: 2, 2: 3, 3: 4}, map[int]int{1: 2})
	double := func(n int) int { return n * 2 }
	assert.ElementsMatch(t, []int{2, 4, 6, 2}, seq.Collect(mapping.MapKeys(in, double)))
	assert.ElementsMatch(t, []int{4, 6, 8, 4}, seq.Collect(mapping.MapValues(in, double)))

	products := mapping.KeyValue(in, func(k, v int) int { return k * v })
	assert.ElementsMatch(t, []int{2, 6, 12, 2}, seq.Collect(products))
}
