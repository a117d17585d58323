// Package match implements the structural pattern-matching engine.
//
// It performs a recursive, depth-first comparison of an arbitrary runtime
// value against a pattern, supporting multiple pattern forms:
//
//   - Literal patterns: compared with same-value equality (NaN equals NaN,
//     positive and negative zero are distinct)
//   - Tuple patterns: slices matched positionally with exact length
//   - Object patterns: maps and structs matched by key, describing a
//     minimum required shape
//   - Matchers: composable objects implementing the Matcher protocol
//     (negation, optionality, union, intersection, variadic collections,
//     named selection, custom guards)
//
// Selections discovered during a match flow upward through a SelectFn
// callback in discovery order. Matching is a pure computation: patterns are
// never mutated, failure is an ordinary false result, and the only panics
// that can occur originate in caller-supplied guard functions.
//
// Key entry points:
//
//   - MatchPattern: run a pattern against a value, emitting selections
//   - SelectionKeys: enumerate the names a pattern can bind without
//     executing a match
package match
