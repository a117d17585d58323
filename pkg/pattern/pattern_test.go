package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBasic(t *testing.T) {
	p := map[string]any{
		"status": Or("active", "trial"),
		"user": map[string]any{
			"name": Select("userName"),
			"age":  Optional(Gte(18)),
		},
	}

	res := Match(p, map[string]any{
		"status": "trial",
		"user":   map[string]any{"name": "ada"},
	})
	require.True(t, res.Matched)
	name, ok := res.Selections.Get("userName")
	require.True(t, ok)
	assert.Equal(t, "ada", name)

	res = Match(p, map[string]any{
		"status": "expired",
		"user":   map[string]any{"name": "ada"},
	})
	assert.False(t, res.Matched)
	assert.Nil(t, res.Selections)
}

func TestMatchNoBindingsLeavesSelectionsNil(t *testing.T) {
	res := Match(map[string]any{"a": 1}, map[string]any{"a": 1})
	assert.True(t, res.Matched)
	assert.Nil(t, res.Selections)
}

func TestMatchDiscardsPartialSelections(t *testing.T) {
	// The first conjunct binds before the second fails; the failed result
	// must not expose the binding.
	p := And(Select("a"), Not(Any()))
	res := Match(p, 1)
	assert.False(t, res.Matched)
	assert.Nil(t, res.Selections)
}

func TestMatchAccumulatesArraySelections(t *testing.T) {
	res := Match(Array(Select("item")), []any{1, 2, 3})
	require.True(t, res.Matched)
	assert.Equal(t, []any{1, 2, 3}, res.Selections.Slice("item"))

	res = Match(Array(Select("item")), []any{})
	require.True(t, res.Matched)
	_, ok := res.Selections.Get("item")
	assert.False(t, ok)
}

func TestSelectCombinesSubPatterns(t *testing.T) {
	m := Select("n", Number(), Gte(10))
	res := Match(m, float64(12))
	require.True(t, res.Matched)
	n, _ := res.Selections.Get("n")
	assert.Equal(t, float64(12), n)

	assert.False(t, Test(m, float64(5)))
	assert.False(t, Test(m, "12"))
}

func TestSelectAnonymous(t *testing.T) {
	res := Match(SelectAnonymous(String()), "v")
	require.True(t, res.Matched)
	v, ok := res.Selections.Anonymous()
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestTest(t *testing.T) {
	assert.True(t, Test([]any{1, Any()}, []any{1, "x"}))
	assert.False(t, Test([]any{1, Any()}, []any{2, "x"}))
}

func TestKeys(t *testing.T) {
	p := map[string]any{
		"user":  map[string]any{"name": Select("name")},
		"items": Array(Select("items")),
	}
	assert.Equal(t, []string{"items", "name"}, Keys(p))
}

func TestSelectionsHelpers(t *testing.T) {
	s := Selections{"one": 1, "many": []any{1, 2}, AnonymousKey: "x"}

	v, ok := s.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []any{1, 2}, s.Slice("many"))
	assert.Nil(t, s.Slice("one"))
	assert.Nil(t, s.Slice("missing"))

	anon, ok := s.Anonymous()
	assert.True(t, ok)
	assert.Equal(t, "x", anon)
}
