package expr

import (
	"errors"
	"fmt"
	"go/token"
	"math"
	"strings"
)

// MaxCallDepth bounds nested calls of source-defined functions.
const MaxCallDepth = 512

var (
	ErrDivideByZero = errors.New("integer divide by zero")
	ErrCallDepth    = errors.New("call depth exceeded")
	ErrOverflow     = errors.New("integer overflow")
)

type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return "undefined: " + e.Name
}

type TypeError struct {
	Op       string
	Operands []any
}

func (e *TypeError) Error() string {
	types := make([]string, len(e.Operands))
	for i, v := range e.Operands {
		types[i] = typeName(v)
	}
	return fmt.Sprintf("invalid operand types for %s: %s", e.Op, strings.Join(types, ", "))
}

type ArityError struct {
	Name string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: want %d arguments, got %d", e.Name, e.Want, e.Got)
}

// Eval evaluates n in m. Assignments and function definitions bind in m.
func (m *Module) Eval(n Node) (any, error) {
	ev := &evaluator{}
	return ev.eval(m, n)
}

type evaluator struct {
	depth int
}

func (ev *evaluator) eval(m *Module, n Node) (any, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil

	case *Ident:
		v, ok := m.Lookup(n.Name)
		if !ok {
			return nil, &UndefinedError{Name: n.Name}
		}
		return v, nil

	case *Unary:
		x, err := ev.eval(m, n.X)
		if err != nil {
			return nil, err
		}
		return unary(n.Op, x)

	case *Binary:
		return ev.binary(m, n)

	case *Call:
		return ev.call(m, n)

	case *Assign:
		v, err := ev.eval(m, n.Value)
		if err != nil {
			return nil, err
		}
		m.Define(n.Name.Name, v)
		return v, nil

	case *FuncDef:
		f := &Func{Name: n.Name.Name, Body: n.Body, Module: m}
		for _, p := range n.Params {
			f.Params = append(f.Params, p.Name)
		}
		m.Define(f.Name, f)
		return f, nil

	case *Block:
		var last any
		for _, st := range n.Stmts {
			v, err := ev.eval(m, st)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil

	case nil:
		return nil, errors.New("eval: nil node")
	}
	return nil, fmt.Errorf("eval: unsupported node %T", n)
}

func (ev *evaluator) call(m *Module, n *Call) (any, error) {
	// if evaluates only the branch it selects
	if n.Fun.Name == "if" {
		if len(n.Args) != 3 {
			return nil, &ArityError{Name: "if", Want: 3, Got: len(n.Args)}
		}
		cond, err := ev.eval(m, n.Args[0])
		if err != nil {
			return nil, err
		}
		b, ok := cond.(bool)
		if !ok {
			return nil, &TypeError{Op: "if", Operands: []any{cond}}
		}
		if b {
			return ev.eval(m, n.Args[1])
		}
		return ev.eval(m, n.Args[2])
	}

	callee, ok := m.Lookup(n.Fun.Name)
	if !ok {
		return nil, &UndefinedError{Name: n.Fun.Name}
	}

	args := make([]any, len(n.Args))
	for i, a := range n.Args {
		v, err := ev.eval(m, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case Builtin:
		return fn(args...)
	case *Func:
		if err := arity(fn.Name, args, len(fn.Params)); err != nil {
			return nil, err
		}
		if ev.depth >= MaxCallDepth {
			return nil, ErrCallDepth
		}
		ev.depth++
		defer func() { ev.depth-- }()

		scope := fn.Module.child()
		for i, p := range fn.Params {
			scope.Define(p, args[i])
		}
		return ev.eval(scope, fn.Body)
	}
	return nil, fmt.Errorf("%s is not callable", n.Fun.Name)
}

func (ev *evaluator) binary(m *Module, n *Binary) (any, error) {
	x, err := ev.eval(m, n.X)
	if err != nil {
		return nil, err
	}

	if n.Op == token.LAND || n.Op == token.LOR {
		xb, ok := x.(bool)
		if !ok {
			return nil, &TypeError{Op: n.Op.String(), Operands: []any{x}}
		}
		if (n.Op == token.LAND && !xb) || (n.Op == token.LOR && xb) {
			return xb, nil
		}
		y, err := ev.eval(m, n.Y)
		if err != nil {
			return nil, err
		}
		if yb, ok := y.(bool); ok {
			return yb, nil
		}
		return nil, &TypeError{Op: n.Op.String(), Operands: []any{x, y}}
	}

	y, err := ev.eval(m, n.Y)
	if err != nil {
		return nil, err
	}
	return binary(n.Op, x, y)
}

func unary(op token.Token, x any) (any, error) {
	switch v := x.(type) {
	case int64:
		switch op {
		case token.SUB:
			return -v, nil
		case token.ADD:
			return v, nil
		}
	case float64:
		switch op {
		case token.SUB:
			return -v, nil
		case token.ADD:
			return v, nil
		}
	case bool:
		if op == token.NOT {
			return !v, nil
		}
	}
	return nil, &TypeError{Op: op.String(), Operands: []any{x}}
}

func binary(op token.Token, x, y any) (any, error) {
	name := op.String()
	switch op {
	case token.EQL, token.NEQ:
		eq, err := equal(x, y)
		if err != nil {
			return nil, err
		}
		return eq == (op == token.EQL), nil
	case token.LSS, token.LEQ, token.GTR, token.GEQ:
		c, err := compare(name, x, y)
		if err != nil {
			return nil, err
		}
		switch op {
		case token.LSS:
			return c < 0, nil
		case token.LEQ:
			return c <= 0, nil
		case token.GTR:
			return c > 0, nil
		}
		return c >= 0, nil
	case token.QUO:
		return divide(name, x, y, false)
	case token.REM:
		return remainder(name, x, y)
	}

	if xs, ok := x.(string); ok && op == token.ADD {
		if ys, ok := y.(string); ok {
			return xs + ys, nil
		}
	}

	if xi, ok := x.(int64); ok {
		if yi, ok := y.(int64); ok {
			switch op {
			case token.ADD:
				return xi + yi, nil
			case token.SUB:
				return xi - yi, nil
			case token.MUL:
				return xi * yi, nil
			}
		}
	}

	xf, xok := toFloat(x)
	yf, yok := toFloat(y)
	if xok && yok {
		switch op {
		case token.ADD:
			return xf + yf, nil
		case token.SUB:
			return xf - yf, nil
		case token.MUL:
			return xf * yf, nil
		}
	}
	return nil, &TypeError{Op: name, Operands: []any{x, y}}
}

// divide divides two numbers. Integer operands use truncated integer
// division; truncate forces it for floats too.
func divide(name string, x, y any, truncate bool) (any, error) {
	if xi, ok := x.(int64); ok {
		if yi, ok := y.(int64); ok {
			if yi == 0 {
				return nil, ErrDivideByZero
			}
			if xi == math.MinInt64 && yi == -1 {
				return nil, ErrOverflow
			}
			return xi / yi, nil
		}
	}

	xf, xok := toFloat(x)
	yf, yok := toFloat(y)
	if !xok || !yok {
		return nil, &TypeError{Op: name, Operands: []any{x, y}}
	}
	if !truncate {
		return xf / yf, nil
	}
	if yf == 0 {
		return nil, ErrDivideByZero
	}
	return math.Trunc(xf / yf), nil
}

func remainder(name string, x, y any) (any, error) {
	if xi, ok := x.(int64); ok {
		if yi, ok := y.(int64); ok {
			if yi == 0 {
				return nil, ErrDivideByZero
			}
			return xi % yi, nil
		}
	}

	xf, xok := toFloat(x)
	yf, yok := toFloat(y)
	if !xok || !yok {
		return nil, &TypeError{Op: name, Operands: []any{x, y}}
	}
	if yf == 0 {
		return nil, ErrDivideByZero
	}
	return math.Mod(xf, yf), nil
}

func equal(x, y any) (bool, error) {
	if xf, ok := toFloat(x); ok {
		if yf, ok := toFloat(y); ok {
			if xi, ok := x.(int64); ok {
				if yi, ok := y.(int64); ok {
					return xi == yi, nil
				}
			}
			return xf == yf, nil
		}
	}

	switch x.(type) {
	case nil, string, bool, *Func:
		// mismatched dynamic types compare unequal without panicking
		return x == y, nil
	}
	return false, &TypeError{Op: "==", Operands: []any{x, y}}
}

// compare orders two numbers or two strings.
func compare(name string, x, y any) (int, error) {
	if xi, ok := x.(int64); ok {
		if yi, ok := y.(int64); ok {
			return cmp3(xi < yi, xi > yi), nil
		}
	}
	if xf, ok := toFloat(x); ok {
		if yf, ok := toFloat(y); ok {
			return cmp3(xf < yf, xf > yf), nil
		}
	}
	if xs, ok := x.(string); ok {
		if ys, ok := y.(string); ok {
			return strings.Compare(xs, ys), nil
		}
	}
	return 0, &TypeError{Op: name, Operands: []any{x, y}}
}

func cmp3(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case int64:
		return "int"
	case float64:
		return "float"
	case string:
		return "string"
	case bool:
		return "bool"
	case *Func, Builtin:
		return "function"
	}
	return fmt.Sprintf("%T", v)
}
