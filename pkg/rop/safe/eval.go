package safe

import (
	"fmt"

	"github.com/ib-77/fallible/pkg/expr"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Eval evaluates node in mod. Returned errors and panics both become an
// error result holding an *EvalError. A nil mod evaluates in a fresh module
// named "main".
func Eval(mod *expr.Module, node expr.Node, opts ...Option) rop.Result[any, *EvalError] {
	return eval(orNew(mod), node, "", newOptions(opts))
}

// EvalText parses text and evaluates it in mod. A parse failure is returned
// as an *EvalError whose Cause is the *ParseError; nothing is evaluated.
func EvalText(mod *expr.Module, text string, opts ...Option) rop.Result[any, *EvalError] {
	o := newOptions(opts)
	mod = orNew(mod)

	parsed := parseSyntax(text, o.Mode, o)
	if perr, err := parsed.UnwrapError(); err == nil {
		return failEval(o, &EvalError{
			Module: mod.Name,
			Text:   text,
			Cause:  perr,
			Stack:  callers(),
		})
	}
	return eval(mod, parsed.Value(), text, o)
}

func eval(mod *expr.Module, node expr.Node, text string, o *Options) (r rop.Result[any, *EvalError]) {
	defer func() {
		if p := recover(); p != nil {
			r = failEval(o, &EvalError{
				Module: mod.Name,
				Expr:   node,
				Text:   text,
				Cause:  panicError(p),
				Stack:  callers(),
			})
		}
	}()

	v, err := mod.Eval(node)
	if err != nil {
		return failEval(o, &EvalError{
			Module: mod.Name,
			Expr:   node,
			Text:   text,
			Cause:  err,
			Stack:  callers(),
		})
	}
	return rop.Success[any, *EvalError](v)
}

func failEval(o *Options, err *EvalError) rop.Result[any, *EvalError] {
	o.Logger.Debug("eval failed",
		zap.String("module", err.Module),
		zap.String("expr", err.header()),
		zap.Error(err.Cause))
	return rop.Fail[any](err)
}

func panicError(p any) error {
	if err, ok := p.(error); ok {
		return errors.Wrap(err, "panic")
	}
	return errors.Errorf("panic: %v", p)
}

func orNew(mod *expr.Module) *expr.Module {
	if mod == nil {
		return expr.NewModule("main")
	}
	return mod
}

var _ fmt.Formatter = (*EvalError)(nil)
var _ fmt.Formatter = (*ParseError)(nil)
