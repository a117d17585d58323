package match

import (
	"math"
	"reflect"
	"sort"
	"strings"
)

// sameValue compares two literals using same-value semantics: NaN equals
// NaN, and positive and negative zero are distinct. Numeric values compare
// by numeric value across Go's integer and float kinds, so an int pattern
// 5 matches a decoded-JSON float64(5).
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	if aNum != bNum {
		return false
	}
	if aNum {
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return math.IsNaN(fa) && math.IsNaN(fb)
		}
		if fa == 0 && fb == 0 {
			return math.Signbit(fa) == math.Signbit(fb)
		}
		return fa == fb
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// toFloat reports whether v is numeric and, if so, its float64 value.
// Integers beyond 2^53 lose precision here; dynamic data decoded from
// JSON or YAML never carries such values losslessly either.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// isComposite reports whether v is an object-like value the engine can
// recurse into: a map, slice, array, or struct, possibly behind pointers.
// Strings are scalars here, not sequences.
func isComposite(v any) bool {
	rv, ok := deref(v)
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// deref unwraps pointers and interfaces, reporting false for nil at any
// level.
func deref(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}

// asSequence returns v as an ordered sequence if it is a slice or array.
func asSequence(v any) (reflect.Value, bool) {
	rv, ok := deref(v)
	if !ok {
		return reflect.Value{}, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv, true
	default:
		return reflect.Value{}, false
	}
}

// asMap returns v as a key-value collection if it is a map.
func asMap(v any) (reflect.Value, bool) {
	rv, ok := deref(v)
	if !ok || rv.Kind() != reflect.Map {
		return reflect.Value{}, false
	}
	return rv, true
}

// setMembers returns the members of a set-like value. A set is represented
// as a map with an empty-struct element type; the members are its keys.
func setMembers(v any) ([]any, bool) {
	rv, ok := asMap(v)
	if !ok {
		return nil, false
	}
	elem := rv.Type().Elem()
	if elem.Kind() != reflect.Struct || elem.NumField() != 0 {
		return nil, false
	}
	members := make([]any, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		members = append(members, it.Key().Interface())
	}
	return members, true
}

// keyedEntry is one (key, sub-pattern) requirement of a keyed pattern.
type keyedEntry struct {
	key     string
	pattern any
}

// keyedEntries returns the requirements of a keyed pattern in a
// deterministic structural order: sorted key order for maps, declaration
// order for struct fields. Reports false when p is not a keyed form.
func keyedEntries(p any) ([]keyedEntry, bool) {
	rv, ok := deref(p)
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		entries := make([]keyedEntry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			entries = append(entries, keyedEntry{
				key:     it.Key().String(),
				pattern: it.Value().Interface(),
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		return entries, true
	case reflect.Struct:
		t := rv.Type()
		var entries []keyedEntry
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, ok := fieldName(f)
			if !ok {
				continue
			}
			entries = append(entries, keyedEntry{key: name, pattern: rv.Field(i).Interface()})
		}
		return entries, true
	default:
		return nil, false
	}
}

// lookupField resolves a key against a composite value: map entries by
// key, struct fields by json tag name or field name.
func lookupField(v any, key string) (any, bool) {
	if m, ok := v.(map[string]any); ok {
		fv, present := m[key]
		return fv, present
	}
	rv, ok := deref(v)
	if !ok {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil, false
		}
		fv := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		if !fv.IsValid() {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, ok := fieldName(f)
			if !ok {
				continue
			}
			if name == key {
				return rv.Field(i).Interface(), true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

// fieldName returns the matching name for a struct field: the json tag
// name when present, otherwise the Go field name. Fields tagged "-" do not
// participate in matching.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", false
	}
	if name == "" {
		return f.Name, true
	}
	return name, true
}
