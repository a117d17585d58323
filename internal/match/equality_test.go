package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameValue(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{name: "equal ints", a: 3, b: 3, want: true},
		{name: "int and float same value", a: 3, b: 3.0, want: true},
		{name: "uint and int same value", a: uint(3), b: 3, want: true},
		{name: "float32 and float64", a: float32(1.5), b: 1.5, want: true},
		{name: "NaN equals NaN", a: math.NaN(), b: math.NaN(), want: true},
		{name: "NaN not equal to number", a: math.NaN(), b: 1.0, want: false},
		{name: "signed zeros distinct", a: 0.0, b: math.Copysign(0, -1), want: false},
		{name: "int zero matches positive zero", a: 0, b: 0.0, want: true},
		{name: "int zero rejects negative zero", a: 0, b: math.Copysign(0, -1), want: false},
		{name: "strings", a: "x", b: "x", want: true},
		{name: "string and number", a: "1", b: 1, want: false},
		{name: "bools", a: true, b: true, want: true},
		{name: "nil both", a: nil, b: nil, want: true},
		{name: "nil and value", a: nil, b: "x", want: false},
		{name: "uncomparable types never equal", a: []any{1}, b: []any{1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sameValue(tt.a, tt.b))
		})
	}
}

func TestIsComposite(t *testing.T) {
	assert.True(t, isComposite(map[string]any{}))
	assert.True(t, isComposite([]any{}))
	assert.True(t, isComposite([2]int{1, 2}))
	assert.True(t, isComposite(struct{}{}))
	assert.True(t, isComposite(&struct{ X int }{}))

	assert.False(t, isComposite(nil))
	assert.False(t, isComposite("str"))
	assert.False(t, isComposite(42))
	assert.False(t, isComposite((*struct{ X int })(nil)))
}

func TestSetMembers(t *testing.T) {
	members, ok := setMembers(map[string]struct{}{"a": {}, "b": {}})
	assert.True(t, ok)
	assert.ElementsMatch(t, []any{"a", "b"}, members)

	_, ok = setMembers(map[string]any{"a": 1})
	assert.False(t, ok)
	_, ok = setMembers([]any{1})
	assert.False(t, ok)
}

func TestLookupField(t *testing.T) {
	type user struct {
		Name   string `json:"name"`
		Age    int    `json:"age,omitempty"`
		Secret string `json:"-"`
		Plain  string
	}
	u := user{Name: "ada", Age: 36, Secret: "s", Plain: "p"}

	v, ok := lookupField(u, "name")
	assert.True(t, ok)
	assert.Equal(t, "ada", v)

	v, ok = lookupField(u, "age")
	assert.True(t, ok)
	assert.Equal(t, 36, v)

	v, ok = lookupField(u, "Plain")
	assert.True(t, ok)
	assert.Equal(t, "p", v)

	_, ok = lookupField(u, "Secret")
	assert.False(t, ok)

	v, ok = lookupField(map[string]any{"k": nil}, "k")
	assert.True(t, ok, "present nil entry is present")
	assert.Nil(t, v)

	_, ok = lookupField(map[string]any{}, "k")
	assert.False(t, ok)

	v, ok = lookupField(map[string]int{"n": 7}, "n")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
