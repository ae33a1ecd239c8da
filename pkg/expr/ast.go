package expr

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	KindLiteral Kind = iota
	KindIdent
	KindCall
	KindUnary
	KindBinary
	KindAssign
	KindFuncDef
	KindBlock
)

var kindNames = [...]string{
	KindLiteral: "literal",
	KindIdent:   "ident",
	KindCall:    "call",
	KindUnary:   "unary",
	KindBinary:  "binary",
	KindAssign:  "assign",
	KindFuncDef: "function",
	KindBlock:   "block",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Node is a syntax tree node. String renders it back in source form.
type Node interface {
	Kind() Kind
	Pos() token.Pos
	String() string
}

// Literal is an int64, float64 or string constant.
type Literal struct {
	ValuePos token.Pos
	Value    any
}

type Ident struct {
	NamePos token.Pos
	Name    string
}

type Call struct {
	Fun  *Ident
	Args []Node
}

type Unary struct {
	OpPos token.Pos
	Op    token.Token
	X     Node
}

type Binary struct {
	X     Node
	OpPos token.Pos
	Op    token.Token
	Y     Node
}

// Assign binds Value to Name in the evaluating module.
type Assign struct {
	Name  *Ident
	Value Node
}

// FuncDef is the short function form name(params...) = body.
type FuncDef struct {
	Name   *Ident
	Params []*Ident
	Body   Node
}

// Block is a sequence of statements; it evaluates to its last one.
type Block struct {
	Stmts []Node
}

func (*Literal) Kind() Kind { return KindLiteral }
func (*Ident) Kind() Kind   { return KindIdent }
func (*Call) Kind() Kind    { return KindCall }
func (*Unary) Kind() Kind   { return KindUnary }
func (*Binary) Kind() Kind  { return KindBinary }
func (*Assign) Kind() Kind  { return KindAssign }
func (*FuncDef) Kind() Kind { return KindFuncDef }
func (*Block) Kind() Kind   { return KindBlock }

func (n *Literal) Pos() token.Pos { return n.ValuePos }
func (n *Ident) Pos() token.Pos   { return n.NamePos }
func (n *Call) Pos() token.Pos    { return n.Fun.Pos() }
func (n *Unary) Pos() token.Pos   { return n.OpPos }
func (n *Binary) Pos() token.Pos  { return n.X.Pos() }
func (n *Assign) Pos() token.Pos  { return n.Name.Pos() }
func (n *FuncDef) Pos() token.Pos { return n.Name.Pos() }

func (n *Block) Pos() token.Pos {
	if len(n.Stmts) == 0 {
		return token.NoPos
	}
	return n.Stmts[0].Pos()
}

func (n *Literal) String() string {
	switch v := n.Value.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprint(n.Value)
}

func (n *Ident) String() string { return n.Name }

func (n *Call) String() string {
	return n.Fun.Name + "(" + join(n.Args, ", ") + ")"
}

func (n *Unary) String() string { return n.Op.String() + n.X.String() }

func (n *Binary) String() string {
	return "(" + n.X.String() + " " + n.Op.String() + " " + n.Y.String() + ")"
}

func (n *Assign) String() string { return n.Name.Name + " = " + n.Value.String() }

func (n *FuncDef) String() string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name
	}
	return n.Name.Name + "(" + strings.Join(params, ", ") + ") = " + n.Body.String()
}

func (n *Block) String() string { return join(n.Stmts, "; ") }

func join(nodes []Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}
