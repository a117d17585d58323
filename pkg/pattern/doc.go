// Package pattern is the public surface for structural pattern matching.
//
// A pattern describes the required shape of a value: literals compare with
// same-value equality, slices match positionally as fixed tuples, maps and
// structs describe a minimum keyed shape, and matchers built with the
// combinators in this package express negation, optionality, unions,
// intersections, variadic collections, named selections, and custom
// guards.
//
// Basic usage:
//
//	p := map[string]any{
//		"status": pattern.Or("active", "trial"),
//		"user": map[string]any{
//			"name": pattern.Select("userName"),
//			"age":  pattern.Optional(pattern.Gte(18)),
//		},
//	}
//	res := pattern.Match(p, value)
//	if res.Matched {
//		name, _ := res.Selections.Get("userName")
//		...
//	}
//
// Multi-way branching uses Switch:
//
//	verdict := pattern.NewSwitch[string](value).
//		Case(okPattern, func(s pattern.Selections) string { return "ok" }).
//		CaseValue(nil, "empty").
//		Otherwise(func(any) string { return "unknown" })
//
// Patterns are immutable and safe to share across concurrent matches.
package pattern
