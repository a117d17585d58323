package pattern

// Switch is a multi-way match expression over one value. Cases are tried
// in the order they are added; the first matching case wins and later
// cases are not evaluated. Each case runs with a fresh accumulator, so a
// case that fails partway through never leaks selections into the winner.
//
// Exhaustiveness is not checked; Otherwise supplies the fallback.
type Switch[T any] struct {
	value   any
	matched bool
	result  T
}

// NewSwitch starts a match expression producing values of type T.
func NewSwitch[T any](value any) *Switch[T] {
	return &Switch[T]{value: value}
}

// Case runs handler with the case's selections when p is the first
// pattern to match the value. The handler receives nil Selections when
// the pattern bound no names.
func (s *Switch[T]) Case(p any, handler func(Selections) T) *Switch[T] {
	if s.matched {
		return s
	}
	if res := Match(p, s.value); res.Matched {
		s.matched = true
		s.result = handler(res.Selections)
	}
	return s
}

// CaseValue is Case with a constant result.
func (s *Switch[T]) CaseValue(p any, result T) *Switch[T] {
	return s.Case(p, func(Selections) T { return result })
}

// Otherwise finishes the expression, running fallback on the original
// value when no case matched.
func (s *Switch[T]) Otherwise(fallback func(value any) T) T {
	if s.matched {
		return s.result
	}
	return fallback(s.value)
}

// Result finishes the expression without a fallback, reporting whether
// any case matched.
func (s *Switch[T]) Result() (T, bool) {
	return s.result, s.matched
}
