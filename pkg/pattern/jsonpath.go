package pattern

import (
	"github.com/ohler55/ojg/jp"

	"github.com/structmatch/structmatch/internal/match"
)

// JSONPath matches composite values for which the JSONPath expression
// yields at least one result satisfying sub. Results are tried in path
// order and the first satisfying result contributes sub's selections. An
// invalid path expression never matches.
//
// It doubles as an existence check: JSONPath("$.user.id", Any()) matches
// any value carrying that field.
func JSONPath(path string, sub any) Matcher {
	x, err := jp.ParseString(path)
	if err != nil {
		return When(func(any) bool { return false })
	}
	return jsonPathMatcher{expr: x, sub: sub}
}

// jsonPathMatcher implements the matcher protocol outside the built-in
// library; Kind reports the default (guard) strategy.
type jsonPathMatcher struct {
	expr jp.Expr
	sub  any
}

func (jsonPathMatcher) Kind() Kind { return KindDefault }

func (m jsonPathMatcher) Match(value any, sel SelectFn) bool {
	for _, result := range m.expr.Get(value) {
		var staged []stagedSelection
		ok := match.MatchPattern(m.sub, result, func(k string, v any) {
			staged = append(staged, stagedSelection{key: k, value: v})
		})
		if ok {
			for _, s := range staged {
				sel(s.key, s.value)
			}
			return true
		}
	}
	return false
}

func (m jsonPathMatcher) SelectionKeys() []string { return Keys(m.sub) }

type stagedSelection struct {
	key   string
	value any
}
