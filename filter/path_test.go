package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-blade/filter"
	"github.com/hasbyte1/go-blade/seq"
)

type address struct{ City string }

type owner struct {
	Name    string
	Address *address
	Pets    []string
}

func nested() map[string]any {
	return map[string]any{
		"user": map[string]any{
			"name": "Alice",
			"address": map[string]any{
				"city":    "London",
				"country": "UK",
			},
			"tags": []any{"admin", "ops"},
		},
		"score": 42,
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		item any
		path string
		want any
		ok   bool
	}{
		{nested(), "user.address.city", "London", true},
		{nested(), "user.tags.1", "ops", true},
		{nested(), "user.tags.-1", "ops", true},
		{nested(), "score", 42, true},
		{nested(), "user.missing", nil, false},
		{nested(), "score.value", nil, false},
		{owner{Name: "Bo", Address: &address{City: "Oslo"}}, "Address.City", "Oslo", true},
		{owner{Pets: []string{"rex"}}, "Pets.0", "rex", true},
		{owner{}, "Address.City", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := filter.Path(tt.item, tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaths(t *testing.T) {
	items := seq.Of[any](
		nested(),
		map[string]any{"user": map[string]any{"name": "Carol"}},
		"not a container",
	)
	assert.Equal(t, []any{"Alice", "Carol"}, seq.Collect(filter.Paths(items, "user.name")))
	assert.Equal(t, []any{[]any{"Alice", 42}}, seq.Collect(filter.Paths(items, "user.name", "score")))
	assert.Empty(t, seq.Collect(filter.Paths(items)))
}

func TestPathRecord(t *testing.T) {
	recs := traverse(t, public, false, methuselah())
	require.Len(t, recs, 1)

	v, ok := filter.Path(recs[0], "B.age")
	require.True(t, ok)
	assert.Equal(t, 969, v)

	v, ok = filter.Path(recs[0], "age")
	require.True(t, ok)
	assert.Equal(t, 40, v)

	assert.Equal(t, []any{40}, seq.Collect(filter.Attrs(seq.Of(recs[0]), "age")))
}

func TestDot(t *testing.T) {
	assert.Equal(t, map[string]any{
		"user.name":            "Alice",
		"user.address.city":    "London",
		"user.address.country": "UK",
		"user.tags":            []any{"admin", "ops"},
		"score":                42,
	}, filter.Dot(nested()))

	recs := traverse(t, public, false, methuselah())
	assert.Equal(t, map[string]any{
		"classname":   "A",
		"age":         40,
		"B.age":       969,
		"B.classname": "B",
	}, filter.Dot(recs[0]))

	assert.Equal(t, map[string]any{"": 7}, filter.Dot(7))
}
