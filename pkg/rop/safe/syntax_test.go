package safe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ib-77/fallible/pkg/expr"
	"github.com/ib-77/fallible/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSyntax_FunctionDefinition(t *testing.T) {
	t.Parallel()

	r := ParseSyntax("foo(bar) = 42", expr.ModeStatement, "")
	require.True(t, r.IsSuccess(), r.String())
	assert.Equal(t, expr.KindFuncDef, r.Value().Kind())
}

func TestParseSyntax_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src     string
		kind    expr.DiagKind
		message string
	}{
		{"/a", expr.DiagError, "syntax error"},
		{"(", expr.DiagIncomplete, "incomplete input"},
		{"f(1,", expr.DiagIncomplete, "incomplete input"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			r := ParseSyntax(tt.src, expr.ModeStatement, "in.x")
			require.True(t, r.IsError())
			assert.False(t, r.IsEmpty())

			perr := r.Err()
			assert.Equal(t, tt.message, perr.Message)
			assert.Equal(t, []any{tt.src, expr.ModeStatement, "in.x"}, perr.Source)

			var diag *expr.Diagnostic
			require.ErrorAs(t, perr, &diag)
			assert.Equal(t, tt.kind, diag.Kind)
			assert.Equal(t, "in.x", diag.Pos.Filename)
			assert.True(t, strings.HasPrefix(perr.Error(), tt.message+": in.x:1:"), perr.Error())
		})
	}
}

func TestParseSyntax_Program(t *testing.T) {
	t.Parallel()

	r := ParseSyntax("x = 1\ny = x + 1\n", expr.ModeProgram, "")
	require.True(t, r.IsSuccess())
	block, ok := r.Value().(*expr.Block)
	require.True(t, ok)
	assert.Len(t, block.Stmts, 2)

	assert.True(t, ParseSyntax("x = 1\ny = 2", expr.ModeStatement, "").IsError())
}

func TestMustParseSyntax(t *testing.T) {
	t.Parallel()

	n := MustParseSyntax("div(1, 2)", expr.ModeStatement, "")
	assert.Equal(t, "div(1, 2)", n.String())

	defer func() {
		p := recover()
		perr, ok := p.(*ParseError)
		require.True(t, ok, "panic value %T", p)
		assert.Equal(t, "incomplete input", perr.Message)
	}()
	MustParseSyntax("div(1,", expr.ModeStatement, "")
	t.Fatal("MustParseSyntax did not panic")
}

func TestParseError_Format(t *testing.T) {
	t.Parallel()

	perr := ParseSyntax("(", expr.ModeStatement, "in.x").Err()

	assert.Equal(t, perr.Error(), fmt.Sprintf("%v", perr))
	assert.Equal(t, perr.Error(), fmt.Sprintf("%s", perr))

	verbose := fmt.Sprintf("%+v", perr)
	assert.True(t, strings.HasPrefix(verbose, "incomplete input\ncaused by: in.x:1:2: incomplete: "), verbose)
	assert.Contains(t, verbose, "parseSyntax")
}

func TestParseSyntax_DeepNestingFails(t *testing.T) {
	t.Parallel()

	src := strings.Repeat("(", 100_000) + "1" + strings.Repeat(")", 100_000)
	r := ParseSyntax(src, expr.ModeStatement, "")
	require.True(t, r.IsError())
	assert.Equal(t, "syntax error", r.Err().Message)

	e := EvalText(nil, src)
	require.True(t, e.IsError())
	var perr *ParseError
	assert.ErrorAs(t, e.Err(), &perr)
}

func TestParseError_ConvertKeepsIdentity(t *testing.T) {
	t.Parallel()

	r := ParseSyntax("(", expr.ModeStatement, "")

	_, err := rop.Convert[expr.Node, *expr.Diagnostic](r)
	var mismatch *rop.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)

	widened, err := rop.Convert[expr.Node, error](r)
	require.NoError(t, err)
	assert.Same(t, r.Err(), widened.Err())
}
