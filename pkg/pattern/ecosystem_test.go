package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	tests := []struct {
		name  string
		glob  string
		value any
		want  bool
	}{
		{name: "doublestar spans segments", glob: "api/**", value: "api/v1/users", want: true},
		{name: "single star stays in segment", glob: "api/*", value: "api/v1/users", want: false},
		{name: "suffix wildcard", glob: "*.example.com", value: "mail.example.com", want: true},
		{name: "no match", glob: "*.example.com", value: "example.org", want: false},
		{name: "non-string", glob: "*", value: 5, want: false},
		{name: "invalid glob never matches", glob: "[", value: "[", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Test(Glob(tt.glob), tt.value))
		})
	}
}

func TestCompileExpr(t *testing.T) {
	m, err := CompileExpr(`value > 3`)
	require.NoError(t, err)

	assert.True(t, Test(m, float64(4)))
	assert.False(t, Test(m, float64(3)))

	// Evaluation errors are an ordinary mismatch.
	assert.False(t, Test(m, "four"))
	assert.False(t, Test(m, nil))
}

func TestCompileExprStrings(t *testing.T) {
	m, err := CompileExpr(`value == "active" || len(value) > 8`)
	require.NoError(t, err)

	assert.True(t, Test(m, "active"))
	assert.True(t, Test(m, "suspended"))
	assert.False(t, Test(m, "trial"))
}

func TestCompileExprInvalid(t *testing.T) {
	_, err := CompileExpr(`value >`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustExpr(`value >`) })
}

func TestUUIDString(t *testing.T) {
	m := UUIDString()
	assert.True(t, Test(m, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, Test(m, "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, Test(m, "6ba7b810-9dad-11d1-80b4"))
	assert.False(t, Test(m, "not-a-uuid"))
	assert.False(t, Test(m, 42))
}

func TestJSONPath(t *testing.T) {
	value := map[string]any{
		"user": map[string]any{"name": "ada", "id": float64(7)},
		"tags": []any{"a", "b"},
	}

	assert.True(t, Test(JSONPath("$.user.name", "ada"), value))
	assert.False(t, Test(JSONPath("$.user.name", "bob"), value))
	assert.True(t, Test(JSONPath("$.user.id", Any()), value), "existence check")
	assert.False(t, Test(JSONPath("$.user.email", Any()), value))
	assert.True(t, Test(JSONPath("$.tags[*]", "b"), value), "first satisfying result wins")
	assert.False(t, Test(JSONPath("$[", Any()), value), "invalid path never matches")
}

func TestJSONPathSelections(t *testing.T) {
	value := map[string]any{"user": map[string]any{"name": "ada"}}
	res := Match(JSONPath("$.user", map[string]any{"name": Select("who")}), value)
	require.True(t, res.Matched)
	who, _ := res.Selections.Get("who")
	assert.Equal(t, "ada", who)
	assert.Equal(t, []string{"who"}, Keys(JSONPath("$.user", Select("who"))))
}
