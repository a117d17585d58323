package pattern

import (
	"regexp"
	"strings"
)

// String refinement matchers. Each matches only string values.

// String matches any string.
func String() Matcher {
	return When(func(v any) bool {
		_, ok := v.(string)
		return ok
	})
}

// StartsWith matches strings with the given prefix.
func StartsWith(prefix string) Matcher {
	return stringWhen(func(s string) bool { return strings.HasPrefix(s, prefix) })
}

// EndsWith matches strings with the given suffix.
func EndsWith(suffix string) Matcher {
	return stringWhen(func(s string) bool { return strings.HasSuffix(s, suffix) })
}

// Contains matches strings containing the given substring.
func Contains(substr string) Matcher {
	return stringWhen(func(s string) bool { return strings.Contains(s, substr) })
}

// MinLength matches strings of at least n bytes.
func MinLength(n int) Matcher {
	return stringWhen(func(s string) bool { return len(s) >= n })
}

// MaxLength matches strings of at most n bytes.
func MaxLength(n int) Matcher {
	return stringWhen(func(s string) bool { return len(s) <= n })
}

// Regex matches strings containing a match of the expression. The
// expression is compiled at construction; an invalid expression is a
// programmer error and panics, like regexp.MustCompile. Use CompileRegex
// for expressions from untrusted input.
func Regex(expr string) Matcher {
	re := regexp.MustCompile(expr)
	return stringWhen(re.MatchString)
}

// CompileRegex is Regex with the compile error reported instead of a
// panic.
func CompileRegex(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return stringWhen(re.MatchString), nil
}

func stringWhen(pred func(string) bool) Matcher {
	return When(func(v any) bool {
		s, ok := v.(string)
		return ok && pred(s)
	})
}
