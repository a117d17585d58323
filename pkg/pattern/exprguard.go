package pattern

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// CompileExpr builds a guard matcher from an expr-lang expression. The
// matched value is exposed to the expression as "value":
//
//	m, err := pattern.CompileExpr(`value > 3 && value < 10`)
//
// Compilation errors are reported here; at match time the guard succeeds
// only when the expression evaluates without error to true. An evaluation
// error (say, a string reaching a numeric comparison) is an ordinary
// mismatch, not a fault.
func CompileExpr(code string) (Matcher, error) {
	program, err := expr.Compile(code, expr.Env(map[string]any{"value": nil}))
	if err != nil {
		return nil, fmt.Errorf("invalid guard expression %q: %w", code, err)
	}
	return exprGuard(program), nil
}

// MustExpr is CompileExpr that panics on a compile error, for patterns
// built from trusted literals.
func MustExpr(code string) Matcher {
	m, err := CompileExpr(code)
	if err != nil {
		panic(err)
	}
	return m
}

func exprGuard(program *vm.Program) Matcher {
	return When(func(v any) bool {
		out, err := expr.Run(program, map[string]any{"value": v})
		if err != nil {
			return false
		}
		ok, isBool := out.(bool)
		return isBool && ok
	})
}
