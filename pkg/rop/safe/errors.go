package safe

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/ib-77/fallible/pkg/expr"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/pkg/errors"
)

// ParseError reports text that could not be turned into a value or a
// syntax tree.
type ParseError struct {
	// Type is the type the text was parsed into.
	Type reflect.Type
	// Source holds the adapter arguments that failed, text first.
	Source  []any
	Message string
	Stack   errors.StackTrace
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) StackTrace() errors.StackTrace { return e.Stack }

func (e *ParseError) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.Message, e.Cause, e.Stack)
}

// EvalError reports an evaluation that failed with an error or a panic.
type EvalError struct {
	Module string
	// Expr is the evaluated node. It is nil when the text did not parse.
	Expr  expr.Node
	Text  string
	Cause error
	Stack errors.StackTrace
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %v", e.header(), e.Cause)
}

func (e *EvalError) header() string {
	target := strconv.Quote(e.Text)
	if e.Expr != nil {
		target = e.Expr.String()
	}
	return fmt.Sprintf("eval %s in module %s", target, e.Module)
}

func (e *EvalError) Unwrap() error { return e.Cause }

func (e *EvalError) StackTrace() errors.StackTrace { return e.Stack }

func (e *EvalError) Format(s fmt.State, verb rune) {
	format(s, verb, e, e.header(), e.Cause, e.Stack)
}

// format prints err like pkg/errors does: %+v adds the cause chain and the
// stack below the headline.
func format(s fmt.State, verb rune, err error, headline string, cause error, st errors.StackTrace) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, headline)
			if cause != nil {
				io.WriteString(s, "\ncaused by: ")
				io.WriteString(s, rop.Describe(cause))
			}
			st.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Error())
	case 'q':
		fmt.Fprintf(s, "%q", err.Error())
	}
}
