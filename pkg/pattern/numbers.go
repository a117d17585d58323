package pattern

import "math"

// Numeric refinement matchers. Each matches values of any Go numeric
// kind, so decoded-JSON float64s and native ints behave alike.

// Number matches any numeric value.
func Number() Matcher {
	return numberWhen(func(float64) bool { return true })
}

// Int matches numeric values with an integral value, including float64s
// like the 5.0 a JSON decoder produces for 5.
func Int() Matcher {
	return numberWhen(func(f float64) bool { return f == math.Trunc(f) && !math.IsInf(f, 0) })
}

// Bool matches any boolean.
func Bool() Matcher {
	return When(func(v any) bool {
		_, ok := v.(bool)
		return ok
	})
}

// Nil matches only nil.
func Nil() Matcher {
	return When(func(v any) bool { return v == nil })
}

// Gt matches numbers strictly greater than n.
func Gt(n float64) Matcher {
	return numberWhen(func(f float64) bool { return f > n })
}

// Gte matches numbers greater than or equal to n.
func Gte(n float64) Matcher {
	return numberWhen(func(f float64) bool { return f >= n })
}

// Lt matches numbers strictly less than n.
func Lt(n float64) Matcher {
	return numberWhen(func(f float64) bool { return f < n })
}

// Lte matches numbers less than or equal to n.
func Lte(n float64) Matcher {
	return numberWhen(func(f float64) bool { return f <= n })
}

// Between matches numbers in the inclusive range [lo, hi].
func Between(lo, hi float64) Matcher {
	return numberWhen(func(f float64) bool { return f >= lo && f <= hi })
}

// Positive matches numbers strictly greater than zero.
func Positive() Matcher { return Gt(0) }

// Negative matches numbers strictly less than zero.
func Negative() Matcher { return Lt(0) }

// Finite matches numbers that are neither NaN nor infinite.
func Finite() Matcher {
	return numberWhen(func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) })
}

func numberWhen(pred func(float64) bool) Matcher {
	return When(func(v any) bool {
		f, ok := asFloat(v)
		return ok && pred(f)
	})
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
