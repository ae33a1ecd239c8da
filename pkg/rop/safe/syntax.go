package safe

import (
	"reflect"

	"github.com/ib-77/fallible/pkg/expr"
	"github.com/ib-77/fallible/pkg/rop"
	"go.uber.org/zap"
)

var nodeType = reflect.TypeFor[expr.Node]()

// ParseSyntax parses text as a statement or a whole program. Malformed and
// incomplete input both fail with a *ParseError whose Cause is the first
// *expr.Diagnostic.
func ParseSyntax(text string, mode expr.Mode, filename string, opts ...Option) rop.Result[expr.Node, *ParseError] {
	o := newOptions(opts)
	if filename != "" {
		o.Filename = filename
	}
	return parseSyntax(text, mode, o)
}

// MustParseSyntax is ParseSyntax for callers that prefer panics. It panics
// with the *ParseError.
func MustParseSyntax(text string, mode expr.Mode, filename string, opts ...Option) expr.Node {
	return ParseSyntax(text, mode, filename, opts...).Must()
}

func parseSyntax(text string, mode expr.Mode, o *Options) rop.Result[expr.Node, *ParseError] {
	n, diags := expr.Parse(text, o.Filename, mode)
	if len(diags) == 0 {
		return rop.Success[expr.Node, *ParseError](n)
	}

	first := diags[0]
	msg := "syntax error"
	if first.Kind == expr.DiagIncomplete {
		msg = "incomplete input"
	}
	err := &ParseError{
		Type:    nodeType,
		Source:  []any{text, mode, o.Filename},
		Message: msg,
		Stack:   callers(),
		Cause:   first,
	}
	o.Logger.Debug("syntax parse failed",
		zap.String("file", o.Filename),
		zap.Stringer("kind", first.Kind),
		zap.String("diagnostic", first.Msg),
		zap.Int("diagnostics", len(diags)))
	return rop.Fail[expr.Node](err)
}
