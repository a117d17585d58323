package match

// Built-in matcher variants. All are immutable value objects constructed
// once and safely shared across concurrent matches.

// Any returns the wildcard matcher, which matches every value and binds
// nothing.
func Any() Matcher { return anyMatcher{} }

type anyMatcher struct{}

func (anyMatcher) Kind() Kind               { return KindDefault }
func (anyMatcher) Match(any, SelectFn) bool { return true }

// When returns a custom guard matcher: it matches iff pred(value) is true
// and binds nothing. A panic raised by pred propagates to the caller.
func When(pred func(value any) bool) Matcher { return guardMatcher{pred: pred} }

type guardMatcher struct {
	pred func(any) bool
}

func (guardMatcher) Kind() Kind { return KindDefault }

func (m guardMatcher) Match(value any, _ SelectFn) bool { return m.pred(value) }

// Not returns a matcher that succeeds iff pattern fails against the value.
// Selections made inside the negated pattern are discarded: a negated
// branch binds nothing.
func Not(pattern any) Matcher { return notMatcher{pattern: pattern} }

type notMatcher struct {
	pattern any
}

func (notMatcher) Kind() Kind { return KindNot }

func (m notMatcher) Match(value any, _ SelectFn) bool {
	return !MatchPattern(m.pattern, value, discard)
}

// Optional returns a matcher that succeeds when the value is absent
// (a missing key, or nil — Go collapses the two) or when pattern matches
// it. Inside a keyed pattern it relaxes the key-presence requirement.
func Optional(pattern any) Matcher { return optionalMatcher{pattern: pattern} }

type optionalMatcher struct {
	pattern any
}

func (optionalMatcher) Kind() Kind { return KindOptional }

func (m optionalMatcher) Match(value any, sel SelectFn) bool {
	if isAbsent(value) {
		return true
	}
	return MatchPattern(m.pattern, value, sel)
}

func (m optionalMatcher) SelectionKeys() []string { return SelectionKeys(m.pattern) }

// Or returns a union matcher. Alternatives are tried left-to-right and
// evaluation stops at the first success; only the winning alternative's
// selections are kept.
func Or(patterns ...any) Matcher { return orMatcher{patterns: patterns} }

type orMatcher struct {
	patterns []any
}

func (orMatcher) Kind() Kind { return KindOr }

func (m orMatcher) Match(value any, sel SelectFn) bool {
	for _, alt := range m.patterns {
		var buf selectionBuffer
		if MatchPattern(alt, value, buf.add) {
			buf.commit(sel)
			return true
		}
	}
	return false
}

func (m orMatcher) SelectionKeys() []string {
	var keys []string
	for _, alt := range m.patterns {
		keys = append(keys, SelectionKeys(alt)...)
	}
	return keys
}

// And returns an intersection matcher: every sub-pattern must match the
// value, and the selections of all sub-patterns are merged. A later
// binding for the same name outside a repeating context overwrites.
func And(patterns ...any) Matcher { return andMatcher{patterns: patterns} }

type andMatcher struct {
	patterns []any
}

func (andMatcher) Kind() Kind { return KindAnd }

func (m andMatcher) Match(value any, sel SelectFn) bool {
	for _, p := range m.patterns {
		if !MatchPattern(p, value, sel) {
			return false
		}
	}
	return true
}

func (m andMatcher) SelectionKeys() []string {
	var keys []string
	for _, p := range m.patterns {
		keys = append(keys, SelectionKeys(p)...)
	}
	return keys
}

// ArrayOf returns a variadic matcher: the value must be an ordered
// sequence and every element must match pattern. An empty sequence
// trivially succeeds. Selections nested under the element pattern
// accumulate into one ordered slice per name, one slot per emission, in
// element order.
func ArrayOf(pattern any) Matcher { return arrayMatcher{pattern: pattern} }

type arrayMatcher struct {
	pattern any
}

func (arrayMatcher) Kind() Kind     { return KindArray }
func (arrayMatcher) Variadic() bool { return true }

func (m arrayMatcher) Match(value any, sel SelectFn) bool {
	seq, ok := asSequence(value)
	if !ok {
		return false
	}
	acc := newGroupCollector()
	for i := 0; i < seq.Len(); i++ {
		if !MatchPattern(m.pattern, seq.Index(i).Interface(), acc.add) {
			return false
		}
	}
	acc.commit(sel)
	return true
}

func (m arrayMatcher) SelectionKeys() []string { return SelectionKeys(m.pattern) }

// SetOf returns a variadic matcher over set-like values (maps with an
// empty-struct element type): every member must match pattern. Member
// order follows the host map's iteration order, which is unspecified.
func SetOf(pattern any) Matcher { return setMatcher{pattern: pattern} }

type setMatcher struct {
	pattern any
}

func (setMatcher) Kind() Kind     { return KindSet }
func (setMatcher) Variadic() bool { return true }

func (m setMatcher) Match(value any, sel SelectFn) bool {
	members, ok := setMembers(value)
	if !ok {
		return false
	}
	acc := newGroupCollector()
	for _, member := range members {
		if !MatchPattern(m.pattern, member, acc.add) {
			return false
		}
	}
	acc.commit(sel)
	return true
}

func (m setMatcher) SelectionKeys() []string { return SelectionKeys(m.pattern) }

// MapOf returns an existence matcher over key-value collections: it
// succeeds iff some entry's key matches keyPattern and value matches
// valuePattern. The first qualifying entry in the host map's iteration
// order contributes the selections; when several entries qualify, which
// one wins is unspecified. Entries that fail contribute nothing.
func MapOf(keyPattern, valuePattern any) Matcher {
	return mapMatcher{key: keyPattern, value: valuePattern}
}

type mapMatcher struct {
	key   any
	value any
}

func (mapMatcher) Kind() Kind { return KindMap }

func (m mapMatcher) Match(value any, sel SelectFn) bool {
	rv, ok := asMap(value)
	if !ok {
		return false
	}
	it := rv.MapRange()
	for it.Next() {
		var buf selectionBuffer
		if MatchPattern(m.key, it.Key().Interface(), buf.add) &&
			MatchPattern(m.value, it.Value().Interface(), buf.add) {
			buf.commit(sel)
			return true
		}
	}
	return false
}

func (m mapMatcher) SelectionKeys() []string {
	return append(SelectionKeys(m.key), SelectionKeys(m.value)...)
}

// SelectAs returns a matcher that, when pattern matches the value, binds
// the value under name in addition to any selections pattern itself makes.
// Use AnonymousKey as the name for an unnamed selection.
func SelectAs(name string, pattern any) Matcher {
	return selectMatcher{name: name, pattern: pattern}
}

type selectMatcher struct {
	name    string
	pattern any
}

func (selectMatcher) Kind() Kind { return KindSelect }

func (m selectMatcher) Match(value any, sel SelectFn) bool {
	if !MatchPattern(m.pattern, value, sel) {
		return false
	}
	sel(m.name, value)
	return true
}

func (m selectMatcher) SelectionKeys() []string {
	return append([]string{m.name}, SelectionKeys(m.pattern)...)
}
