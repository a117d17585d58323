package match

// AnonymousKey is the reserved selection key used when a selection is made
// without an explicit name. It is namespaced so it cannot collide with a
// user-chosen name.
const AnonymousKey = "@structmatch/anonymous"

// Kind identifies the matching strategy of a built-in matcher.
type Kind int

// Matcher kinds.
const (
	// KindDefault covers custom guards and the wildcard.
	KindDefault Kind = iota
	KindNot
	KindOptional
	KindOr
	KindAnd
	KindArray
	KindMap
	KindSet
	KindSelect
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNot:
		return "not"
	case KindOptional:
		return "optional"
	case KindOr:
		return "or"
	case KindAnd:
		return "and"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindSet:
		return "set"
	case KindSelect:
		return "select"
	default:
		return "default"
	}
}

// SelectFn receives a (name, value) selection discovered during a match.
// The engine calls it in discovery order: depth-first, left-to-right,
// following pattern structure. Calls may occur on branches that ultimately
// fail; callers must commit an accumulator only when the overall match
// succeeds.
type SelectFn func(key string, value any)

// Matcher is the capability contract implemented by every composite
// pattern object. Implementations must be stateless: Match reads only its
// arguments, has no side effects beyond emissions through sel, and is safe
// to call repeatedly and concurrently.
type Matcher interface {
	// Kind reports which built-in matching strategy applies.
	Kind() Kind

	// Match reports whether value satisfies this matcher, emitting any
	// selections produced by it or its sub-patterns through sel.
	Match(value any, sel SelectFn) bool
}

// KeyLister is implemented by matchers that can statically enumerate the
// selection names they (or their sub-patterns) may bind. Matchers that
// bind nothing need not implement it.
type KeyLister interface {
	SelectionKeys() []string
}

// VariadicMatcher marks matchers that apply one sub-pattern to every
// element of a collection rather than positionally. The runtime engine
// does not consult it; it exists for interoperability with static
// inference layers built on top of the matcher protocol.
type VariadicMatcher interface {
	Variadic() bool
}

// absentValue is the sentinel passed to a sub-pattern when the key it
// guards is missing from the matched value. Only Optional treats it as a
// success; every other pattern form fails against it.
type absentValue struct{}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(absentValue)
	return ok
}

// discard is a SelectFn that drops all selections. Used where a nested
// match runs only for its boolean outcome.
func discard(string, any) {}
