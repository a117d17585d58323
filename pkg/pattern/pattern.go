package pattern

import (
	"github.com/structmatch/structmatch/internal/match"
)

// Contract types re-exported from the engine so callers can implement
// their own matchers against the same protocol.
type (
	// Matcher is the capability contract implemented by composite
	// pattern objects.
	Matcher = match.Matcher

	// Kind identifies a matcher's built-in strategy.
	Kind = match.Kind

	// SelectFn receives selections in discovery order.
	SelectFn = match.SelectFn

	// KeyLister enumerates the selection names a matcher can bind.
	KeyLister = match.KeyLister

	// VariadicMatcher marks matchers that apply one sub-pattern to every
	// element of a collection.
	VariadicMatcher = match.VariadicMatcher
)

// Matcher kinds.
const (
	KindDefault  = match.KindDefault
	KindNot      = match.KindNot
	KindOptional = match.KindOptional
	KindOr       = match.KindOr
	KindAnd      = match.KindAnd
	KindArray    = match.KindArray
	KindMap      = match.KindMap
	KindSet      = match.KindSet
	KindSelect   = match.KindSelect
)

// AnonymousKey is the reserved selection key for unnamed selections.
const AnonymousKey = match.AnonymousKey

// Any matches every value and binds nothing.
func Any() Matcher { return match.Any() }

// When builds a custom guard matcher from a predicate.
func When(pred func(value any) bool) Matcher { return match.When(pred) }

// Not matches when p does not; the negated branch binds nothing.
func Not(p any) Matcher { return match.Not(p) }

// Optional matches an absent or nil value, or whatever p matches. Inside
// a keyed pattern it relaxes the key-presence requirement.
func Optional(p any) Matcher { return match.Optional(p) }

// Or matches when any alternative does; alternatives are tried
// left-to-right and only the first match's selections are kept.
func Or(alternatives ...any) Matcher { return match.Or(alternatives...) }

// And matches when every sub-pattern does; their selections are merged.
func And(patterns ...any) Matcher { return match.And(patterns...) }

// Array matches an ordered sequence whose every element matches p.
// Selections under p accumulate into ordered slices, one slot per
// element.
func Array(p any) Matcher { return match.ArrayOf(p) }

// Set matches a set-like value (a map with empty-struct elements) whose
// every member matches p.
func Set(p any) Matcher { return match.SetOf(p) }

// Map matches a key-value collection containing at least one entry whose
// key matches keyPattern and value matches valuePattern. The first
// qualifying entry found contributes the selections; when several
// entries qualify, which one wins follows the host map's iteration order
// and is unspecified.
func Map(keyPattern, valuePattern any) Matcher { return match.MapOf(keyPattern, valuePattern) }

// Select binds the matched value under name. With no sub-pattern it
// always matches; with one it binds only when that pattern matches; with
// several they combine as And.
func Select(name string, sub ...any) Matcher {
	return match.SelectAs(name, subPattern(sub))
}

// SelectAnonymous is Select under the reserved anonymous key.
func SelectAnonymous(sub ...any) Matcher {
	return match.SelectAs(match.AnonymousKey, subPattern(sub))
}

func subPattern(sub []any) any {
	switch len(sub) {
	case 0:
		return match.Any()
	case 1:
		return sub[0]
	default:
		return match.And(sub...)
	}
}

// Test reports whether p matches value, discarding selections.
func Test(p, value any) bool {
	return match.MatchPattern(p, value, nil)
}

// Keys enumerates, without running a match, the selection names p can
// bind.
func Keys(p any) []string {
	return match.SelectionKeys(p)
}

// Selections maps selection names to their bound values. A name selected
// under a variadic matcher holds an ordered []any; a lone selection holds
// the raw value.
type Selections map[string]any

// Get returns the value bound under name.
func (s Selections) Get(name string) (any, bool) {
	v, ok := s[name]
	return v, ok
}

// Anonymous returns the value bound without an explicit name.
func (s Selections) Anonymous() (any, bool) {
	v, ok := s[AnonymousKey]
	return v, ok
}

// Slice returns the ordered values accumulated under name by a variadic
// matcher, or nil when name is unbound or holds a single value.
func (s Selections) Slice(name string) []any {
	v, ok := s[name]
	if !ok {
		return nil
	}
	vs, _ := v.([]any)
	return vs
}

// Result is the outcome of Match. Selections is populated only when the
// match succeeded and at least one name was bound.
type Result struct {
	Matched    bool
	Selections Selections
}

// Match runs p against value and returns the outcome. Selections emitted
// on branches that ultimately fail are discarded: a false Result never
// exposes partial bindings.
func Match(p, value any) Result {
	collected := Selections{}
	ok := match.MatchPattern(p, value, func(k string, v any) {
		collected[k] = v
	})
	if !ok {
		return Result{}
	}
	if len(collected) == 0 {
		return Result{Matched: true}
	}
	return Result{Matched: true, Selections: collected}
}
