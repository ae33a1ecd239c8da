package expr

import (
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ignorePos = cmpopts.IgnoreTypes(token.Pos(0))

func ident(name string) *Ident { return &Ident{Name: name} }
func lit(v any) *Literal      { return &Literal{Value: v} }

func TestParse_Statement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want Node
	}{
		{"42", lit(int64(42))},
		{"2.5", lit(2.5)},
		{`"hi"`, lit("hi")},
		{"x", ident("x")},
		{"1 + 2 * 3", &Binary{X: lit(int64(1)), Op: token.ADD, Y: &Binary{X: lit(int64(2)), Op: token.MUL, Y: lit(int64(3))}}},
		{"(1 + 2) * 3", &Binary{X: &Binary{X: lit(int64(1)), Op: token.ADD, Y: lit(int64(2))}, Op: token.MUL, Y: lit(int64(3))}},
		{"1 - 2 - 3", &Binary{X: &Binary{X: lit(int64(1)), Op: token.SUB, Y: lit(int64(2))}, Op: token.SUB, Y: lit(int64(3))}},
		{"-x", &Unary{Op: token.SUB, X: ident("x")}},
		{"!a && b", &Binary{X: &Unary{Op: token.NOT, X: ident("a")}, Op: token.LAND, Y: ident("b")}},
		{"div(1, 0)", &Call{Fun: ident("div"), Args: []Node{lit(int64(1)), lit(int64(0))}}},
		{"f()", &Call{Fun: ident("f")}},
		{"x = 1", &Assign{Name: ident("x"), Value: lit(int64(1))}},
		{"foo(bar) = 42", &FuncDef{Name: ident("foo"), Params: []*Ident{ident("bar")}, Body: lit(int64(42))}},
		{"if(a, 1, 2)", &Call{Fun: ident("if"), Args: []Node{ident("a"), lit(int64(1)), lit(int64(2))}}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, diags := Parse(tt.src, "test", ModeStatement)
			require.Empty(t, diags)
			if diff := cmp.Diff(tt.want, got, ignorePos); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestParse_Program(t *testing.T) {
	t.Parallel()

	src := `
x = 10
// halves n
half(n) = div(n, 2); half(x)
`
	got, diags := Parse(src, "prog", ModeProgram)
	require.Empty(t, diags)

	block, ok := got.(*Block)
	require.True(t, ok)
	require.Len(t, block.Stmts, 3)
	assert.Equal(t, KindAssign, block.Stmts[0].Kind())
	assert.Equal(t, KindFuncDef, block.Stmts[1].Kind())
	assert.Equal(t, KindCall, block.Stmts[2].Kind())
	assert.Equal(t, "x = 10; half(n) = div(n, 2); half(x)", block.String())
}

func TestParse_EmptyProgram(t *testing.T) {
	t.Parallel()

	got, diags := Parse("\n\n", "empty", ModeProgram)
	require.Empty(t, diags)
	assert.Equal(t, &Block{}, got)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		mode Mode
		kind DiagKind
	}{
		{"/a", ModeStatement, DiagError},
		{"1 +", ModeStatement, DiagIncomplete},
		{"(", ModeStatement, DiagIncomplete},
		{"f(1, 2", ModeStatement, DiagIncomplete},
		{"f(1 2)", ModeStatement, DiagError},
		{`"abc`, ModeStatement, DiagIncomplete},
		{"1 2", ModeStatement, DiagError},
		{"x = 1\ny = 2", ModeStatement, DiagError},
		{"1 = 2", ModeStatement, DiagError},
		{"f(1) = 2", ModeStatement, DiagError},
		{"a = (1\n", ModeProgram, DiagIncomplete},
		{"a b", ModeProgram, DiagError},
		{"@", ModeStatement, DiagError},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, diags := Parse(tt.src, "bad", tt.mode)
			assert.Nil(t, got)
			require.NotEmpty(t, diags)
			assert.Equal(t, tt.kind, diags[0].Kind, diags.Error())
			assert.Same(t, diags[0], diags.Err())
			assert.Equal(t, tt.kind == DiagIncomplete, diags.Incomplete())
		})
	}
}

func TestDiagnostic_Error(t *testing.T) {
	t.Parallel()

	_, diags := Parse("1 2", "input.x", ModeStatement)
	require.Len(t, diags, 1)
	assert.Equal(t, "input.x:1:3: error: extra input after statement: 2", diags[0].Error())
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	n, diags := Parse(`f(a, b) = a * -b + len("x")`, "", ModeStatement)
	require.Empty(t, diags)
	assert.Equal(t, `f(a, b) = ((a * -b) + len("x"))`, n.String())
	assert.Equal(t, "function", n.Kind().String())
}

func TestParse_NestingDepth(t *testing.T) {
	t.Parallel()

	nested := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	got, diags := Parse(nested(MaxNestingDepth-1), "", ModeStatement)
	require.Empty(t, diags)
	assert.Equal(t, "1", got.String())

	got, diags = Parse(nested(100_000), "deep", ModeStatement)
	assert.Nil(t, got)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagError, diags[0].Kind)
	assert.Equal(t, "expression nested too deeply", diags[0].Msg)
	assert.Equal(t, MaxNestingDepth+1, diags[0].Pos.Column)

	_, diags = Parse(strings.Repeat("!", 100_000)+"true", "", ModeStatement)
	require.Len(t, diags, 1)
	assert.Equal(t, "expression nested too deeply", diags[0].Msg)
}
