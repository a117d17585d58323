package pattern

import "github.com/bmatcuk/doublestar/v4"

// Glob matches string values against a doublestar glob pattern, e.g.
// "api/**" or "*.example.com". An invalid glob never matches; glob
// syntax errors surface through doublestar.ValidatePattern if callers
// want to check up front.
func Glob(glob string) Matcher {
	return stringWhen(func(s string) bool {
		ok, err := doublestar.Match(glob, s)
		return err == nil && ok
	})
}
