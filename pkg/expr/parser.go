package expr

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"
	"strings"
)

// Mode selects how much input Parse accepts.
type Mode int

const (
	// ModeStatement parses exactly one statement.
	ModeStatement Mode = iota
	// ModeProgram parses every statement and returns a *Block.
	ModeProgram
)

type tokenInfo struct {
	pos token.Pos
	tok token.Token
	lit string
}

// MaxNestingDepth bounds how deeply expressions may nest.
const MaxNestingDepth = 1000

type parser struct {
	file  *token.File
	toks  []tokenInfo
	i     int
	depth int
	diags Diagnostics
}

// binding powers; higher binds tighter
var binaryPrec = map[token.Token]int{
	token.LOR:  1,
	token.LAND: 2,
	token.EQL:  3,
	token.NEQ:  3,
	token.LSS:  3,
	token.LEQ:  3,
	token.GTR:  3,
	token.GEQ:  3,
	token.ADD:  4,
	token.SUB:  4,
	token.MUL:  5,
	token.QUO:  5,
	token.REM:  5,
}

// Parse parses src. It never panics; problems are reported as Diagnostics
// and the returned Node is nil whenever the Diagnostics are non-empty.
func Parse(src, filename string, mode Mode) (Node, Diagnostics) {
	p := &parser{}
	p.scan(src, filename)
	if len(p.diags) > 0 {
		return nil, p.diags
	}

	var (
		n   Node
		err *Diagnostic
	)
	if mode == ModeProgram {
		n, err = p.program()
	} else {
		n, err = p.statement()
	}
	if err != nil {
		return nil, Diagnostics{err}
	}
	return n, nil
}

func (p *parser) scan(src, filename string) {
	p.file = token.NewFileSet().AddFile(filename, -1, len(src))

	var s scanner.Scanner
	s.Init(p.file, []byte(src), func(pos token.Position, msg string) {
		kind := DiagError
		if strings.HasSuffix(msg, "not terminated") {
			kind = DiagIncomplete
		}
		p.diags = append(p.diags, &Diagnostic{Kind: kind, Pos: pos, Msg: msg})
	}, 0)

	for {
		pos, tok, lit := s.Scan()
		p.toks = append(p.toks, tokenInfo{pos: pos, tok: tok, lit: lit})
		if tok == token.EOF {
			return
		}
	}
}

func (p *parser) program() (Node, *Diagnostic) {
	block := &Block{}
	for {
		p.skipSemicolons()
		if p.peek().tok == token.EOF {
			return block, nil
		}

		st, err := p.stmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, st)

		if t := p.peek(); t.tok != token.SEMICOLON && t.tok != token.EOF {
			return nil, p.unexpected(t, "expected ; or newline")
		}
	}
}

func (p *parser) statement() (Node, *Diagnostic) {
	p.skipSemicolons()
	st, err := p.stmt()
	if err != nil {
		return nil, err
	}

	p.skipSemicolons()
	if t := p.peek(); t.tok != token.EOF {
		return nil, p.errorf(t.pos, "extra input after statement: %s", describe(t))
	}
	return st, nil
}

func (p *parser) stmt() (Node, *Diagnostic) {
	lhs, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if p.peek().tok != token.ASSIGN {
		return lhs, nil
	}
	p.next()

	rhs, err := p.expr(0)
	if err != nil {
		return nil, err
	}

	switch target := lhs.(type) {
	case *Ident:
		return &Assign{Name: target, Value: rhs}, nil
	case *Call:
		params := make([]*Ident, len(target.Args))
		for i, a := range target.Args {
			id, ok := a.(*Ident)
			if !ok {
				return nil, p.errorf(a.Pos(), "function parameter must be a name, found %s", a)
			}
			params[i] = id
		}
		return &FuncDef{Name: target.Fun, Params: params, Body: rhs}, nil
	}
	return nil, p.errorf(lhs.Pos(), "cannot assign to %s", lhs)
}

func (p *parser) expr(minPrec int) (Node, *Diagnostic) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()
		prec, ok := binaryPrec[t.tok]
		if !ok || prec <= minPrec {
			return left, nil
		}
		p.next()

		right, err := p.expr(prec)
		if err != nil {
			return nil, err
		}
		left = &Binary{X: left, OpPos: t.pos, Op: t.tok, Y: right}
	}
}

func (p *parser) unary() (Node, *Diagnostic) {
	p.depth++
	defer func() { p.depth-- }()

	t := p.peek()
	if p.depth > MaxNestingDepth {
		return nil, p.errorf(t.pos, "expression nested too deeply")
	}
	switch t.tok {
	case token.SUB, token.ADD, token.NOT:
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{OpPos: t.pos, Op: t.tok, X: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, *Diagnostic) {
	t := p.peek()
	switch {
	case t.tok == token.INT:
		p.next()
		v, err := strconv.ParseInt(t.lit, 0, 64)
		if err != nil {
			return nil, p.errorf(t.pos, "invalid integer %s", t.lit)
		}
		return &Literal{ValuePos: t.pos, Value: v}, nil

	case t.tok == token.FLOAT:
		p.next()
		v, err := strconv.ParseFloat(t.lit, 64)
		if err != nil {
			return nil, p.errorf(t.pos, "invalid number %s", t.lit)
		}
		return &Literal{ValuePos: t.pos, Value: v}, nil

	case t.tok == token.STRING:
		p.next()
		v, err := strconv.Unquote(t.lit)
		if err != nil {
			return nil, p.errorf(t.pos, "invalid string %s", t.lit)
		}
		return &Literal{ValuePos: t.pos, Value: v}, nil

	case t.tok == token.IDENT, t.tok.IsKeyword():
		p.next()
		id := &Ident{NamePos: t.pos, Name: t.tok.String()}
		if t.tok == token.IDENT {
			id.Name = t.lit
		}
		if p.peek().tok == token.LPAREN {
			p.next()
			return p.call(id)
		}
		return id, nil

	case t.tok == token.LPAREN:
		p.next()
		x, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.tok != token.RPAREN {
			return nil, p.unexpected(closing, "expected )")
		}
		p.next()
		return x, nil
	}
	return nil, p.unexpected(t, "expected expression")
}

// call parses the argument list after the opening parenthesis.
func (p *parser) call(fun *Ident) (Node, *Diagnostic) {
	c := &Call{Fun: fun}
	if p.peek().tok == token.RPAREN {
		p.next()
		return c, nil
	}

	for {
		arg, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, arg)

		switch t := p.peek(); t.tok {
		case token.COMMA:
			p.next()
		case token.RPAREN:
			p.next()
			return c, nil
		default:
			return nil, p.unexpected(t, "expected , or )")
		}
	}
}

func (p *parser) peek() tokenInfo {
	return p.toks[p.i]
}

func (p *parser) next() {
	if p.i < len(p.toks)-1 {
		p.i++
	}
}

func (p *parser) skipSemicolons() {
	for p.peek().tok == token.SEMICOLON {
		p.next()
	}
}

// atEnd reports whether only automatic semicolons remain from the current
// token on.
func (p *parser) atEnd() bool {
	for _, t := range p.toks[p.i:] {
		switch {
		case t.tok == token.EOF:
			return true
		case t.tok == token.SEMICOLON && t.lit == "\n":
		default:
			return false
		}
	}
	return true
}

// unexpected reports t. Running out of input is classified as incomplete.
func (p *parser) unexpected(t tokenInfo, want string) *Diagnostic {
	if p.atEnd() {
		return &Diagnostic{Kind: DiagIncomplete, Pos: p.file.Position(t.pos), Msg: "unexpected end of input, " + want}
	}
	return p.errorf(t.pos, "unexpected %s, %s", describe(t), want)
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: DiagError, Pos: p.file.Position(pos), Msg: fmt.Sprintf(format, args...)}
}

func describe(t tokenInfo) string {
	switch {
	case t.tok == token.SEMICOLON && t.lit == "\n":
		return "newline"
	case t.lit != "":
		return t.lit
	}
	return t.tok.String()
}
