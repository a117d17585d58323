package patternfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ohler55/ojg/jp"

	"github.com/structmatch/structmatch/pkg/pattern"
)

// ErrInvalidDocument reports a document that does not describe a valid
// pattern.
var ErrInvalidDocument = errors.New("invalid pattern document")

// CompileNode translates a decoded document node into a runtime pattern.
// Plain scalars, arrays, and objects become literal, tuple, and keyed
// patterns; operator nodes become matchers.
func CompileNode(node any) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if op, arg, ok := operatorNode(n); ok {
			if len(n) != 1 {
				return nil, fmt.Errorf("%w: operator %s cannot be combined with other keys", ErrInvalidDocument, op)
			}
			return compileOperator(op, arg)
		}
		keyed := make(map[string]any, len(n))
		for k, v := range n {
			sub, err := CompileNode(v)
			if err != nil {
				return nil, fmt.Errorf("at key %q: %w", k, err)
			}
			keyed[k] = sub
		}
		return keyed, nil
	case []any:
		tuple := make([]any, len(n))
		for i, v := range n {
			sub, err := CompileNode(v)
			if err != nil {
				return nil, fmt.Errorf("at index %d: %w", i, err)
			}
			tuple[i] = sub
		}
		return tuple, nil
	default:
		return node, nil
	}
}

// operatorNode reports whether n is an operator node: an object carrying
// a "$"-prefixed key.
func operatorNode(n map[string]any) (string, any, bool) {
	for k, v := range n {
		if strings.HasPrefix(k, "$") {
			return k, v, true
		}
	}
	return "", nil, false
}

func compileOperator(op string, arg any) (any, error) {
	switch op {
	case "$any":
		return pattern.Any(), nil
	case "$not":
		sub, err := CompileNode(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Not(sub), nil
	case "$optional":
		sub, err := CompileNode(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Optional(sub), nil
	case "$or", "$and":
		alts, ok := arg.([]any)
		if !ok || len(alts) == 0 {
			return nil, fmt.Errorf("%w: %s requires a non-empty array", ErrInvalidDocument, op)
		}
		subs := make([]any, len(alts))
		for i, alt := range alts {
			sub, err := CompileNode(alt)
			if err != nil {
				return nil, err
			}
			subs[i] = sub
		}
		if op == "$or" {
			return pattern.Or(subs...), nil
		}
		return pattern.And(subs...), nil
	case "$array":
		sub, err := CompileNode(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Array(sub), nil
	case "$set":
		sub, err := CompileNode(arg)
		if err != nil {
			return nil, err
		}
		return pattern.Set(sub), nil
	case "$map":
		return compileMap(arg)
	case "$select":
		return compileSelect(arg)
	case "$type":
		return compileType(arg)
	case "$regex":
		s, err := stringArg(op, arg)
		if err != nil {
			return nil, err
		}
		m, err := pattern.CompileRegex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: $regex: %v", ErrInvalidDocument, err)
		}
		return m, nil
	case "$glob":
		s, err := stringArg(op, arg)
		if err != nil {
			return nil, err
		}
		if !doublestar.ValidatePattern(s) {
			return nil, fmt.Errorf("%w: $glob: bad pattern %q", ErrInvalidDocument, s)
		}
		return pattern.Glob(s), nil
	case "$expr":
		s, err := stringArg(op, arg)
		if err != nil {
			return nil, err
		}
		m, err := pattern.CompileExpr(s)
		if err != nil {
			return nil, fmt.Errorf("%w: $expr: %v", ErrInvalidDocument, err)
		}
		return m, nil
	case "$uuid":
		return pattern.UUIDString(), nil
	case "$jsonpath":
		return compileJSONPath(arg)
	case "$gt", "$gte", "$lt", "$lte":
		n, err := numberArg(op, arg)
		if err != nil {
			return nil, err
		}
		switch op {
		case "$gt":
			return pattern.Gt(n), nil
		case "$gte":
			return pattern.Gte(n), nil
		case "$lt":
			return pattern.Lt(n), nil
		default:
			return pattern.Lte(n), nil
		}
	case "$between":
		bounds, ok := arg.([]any)
		if !ok || len(bounds) != 2 {
			return nil, fmt.Errorf("%w: $between requires [lo, hi]", ErrInvalidDocument)
		}
		lo, err := numberArg(op, bounds[0])
		if err != nil {
			return nil, err
		}
		hi, err := numberArg(op, bounds[1])
		if err != nil {
			return nil, err
		}
		return pattern.Between(lo, hi), nil
	case "$startsWith", "$endsWith", "$contains":
		s, err := stringArg(op, arg)
		if err != nil {
			return nil, err
		}
		switch op {
		case "$startsWith":
			return pattern.StartsWith(s), nil
		case "$endsWith":
			return pattern.EndsWith(s), nil
		default:
			return pattern.Contains(s), nil
		}
	case "$minLength", "$maxLength":
		n, err := numberArg(op, arg)
		if err != nil {
			return nil, err
		}
		if op == "$minLength" {
			return pattern.MinLength(int(n)), nil
		}
		return pattern.MaxLength(int(n)), nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %s", ErrInvalidDocument, op)
	}
}

func compileMap(arg any) (any, error) {
	spec, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: $map requires {key, value}", ErrInvalidDocument)
	}
	keyPattern, valuePattern := any(pattern.Any()), any(pattern.Any())
	if raw, ok := spec["key"]; ok {
		sub, err := CompileNode(raw)
		if err != nil {
			return nil, err
		}
		keyPattern = sub
	}
	if raw, ok := spec["value"]; ok {
		sub, err := CompileNode(raw)
		if err != nil {
			return nil, err
		}
		valuePattern = sub
	}
	return pattern.Map(keyPattern, valuePattern), nil
}

func compileSelect(arg any) (any, error) {
	switch a := arg.(type) {
	case string:
		return pattern.Select(a), nil
	case nil, bool:
		return pattern.SelectAnonymous(), nil
	case map[string]any:
		sub := any(pattern.Any())
		if raw, ok := a["pattern"]; ok {
			compiled, err := CompileNode(raw)
			if err != nil {
				return nil, err
			}
			sub = compiled
		}
		if name, ok := a["name"].(string); ok {
			return pattern.Select(name, sub), nil
		}
		return pattern.SelectAnonymous(sub), nil
	default:
		return nil, fmt.Errorf("%w: $select requires a name or {name, pattern}", ErrInvalidDocument)
	}
}

func compileType(arg any) (any, error) {
	name, ok := arg.(string)
	if !ok {
		return nil, fmt.Errorf("%w: $type requires a string", ErrInvalidDocument)
	}
	switch name {
	case "string":
		return pattern.String(), nil
	case "number":
		return pattern.Number(), nil
	case "int":
		return pattern.Int(), nil
	case "bool":
		return pattern.Bool(), nil
	case "nil", "null":
		return pattern.Nil(), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidDocument, name)
	}
}

func compileJSONPath(arg any) (any, error) {
	spec, ok := arg.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: $jsonpath requires {path, pattern}", ErrInvalidDocument)
	}
	path, ok := spec["path"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: $jsonpath requires a string path", ErrInvalidDocument)
	}
	if _, err := jp.ParseString(path); err != nil {
		return nil, fmt.Errorf("%w: $jsonpath: bad path %q: %v", ErrInvalidDocument, path, err)
	}
	sub := any(pattern.Any())
	if raw, ok := spec["pattern"]; ok {
		compiled, err := CompileNode(raw)
		if err != nil {
			return nil, err
		}
		sub = compiled
	}
	return pattern.JSONPath(path, sub), nil
}

func stringArg(op string, arg any) (string, error) {
	s, ok := arg.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s requires a string", ErrInvalidDocument, op)
	}
	return s, nil
}

func numberArg(op string, arg any) (float64, error) {
	switch n := arg.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s requires a number", ErrInvalidDocument, op)
	}
}
