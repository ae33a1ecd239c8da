package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Builtin is a function implemented in Go. It receives evaluated arguments.
type Builtin func(args ...any) (any, error)

// Func is a function defined in source. It closes over the module it was
// defined in.
type Func struct {
	Name   string
	Params []string
	Body   Node
	Module *Module
}

func (f *Func) String() string {
	return fmt.Sprintf("%s/%d", f.Name, len(f.Params))
}

// Module is a namespace that evaluation reads and writes. Function calls run
// in a child module whose parent is the function's defining module.
//
// A Module is not safe for concurrent use.
type Module struct {
	Name   string
	parent *Module
	vars   map[string]any
}

// NewModule returns a module with the builtins installed.
func NewModule(name string) *Module {
	m := &Module{Name: name, vars: make(map[string]any, len(builtins)+3)}
	for k, fn := range builtins {
		m.vars[k] = fn
	}
	m.vars["true"] = true
	m.vars["false"] = false
	m.vars["nil"] = nil
	return m
}

func (m *Module) child() *Module {
	return &Module{Name: m.Name, parent: m, vars: map[string]any{}}
}

// Define binds name in m, shadowing any outer binding.
func (m *Module) Define(name string, v any) {
	m.vars[name] = v
}

// Lookup resolves name in m and its parents.
func (m *Module) Lookup(name string) (any, bool) {
	for s := m; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

var builtins = map[string]Builtin{
	"div": func(args ...any) (any, error) {
		if err := arity("div", args, 2); err != nil {
			return nil, err
		}
		return divide("div", args[0], args[1], true)
	},
	"rem": func(args ...any) (any, error) {
		if err := arity("rem", args, 2); err != nil {
			return nil, err
		}
		return remainder("rem", args[0], args[1])
	},
	"abs": func(args ...any) (any, error) {
		if err := arity("abs", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case int64:
			if v == math.MinInt64 {
				return nil, ErrOverflow
			}
			if v < 0 {
				return -v, nil
			}
			return v, nil
		case float64:
			return math.Abs(v), nil
		}
		return nil, &TypeError{Op: "abs", Operands: args}
	},
	"min": func(args ...any) (any, error) { return extreme("min", args, -1) },
	"max": func(args ...any) (any, error) { return extreme("max", args, 1) },
	"len": func(args ...any) (any, error) {
		if err := arity("len", args, 1); err != nil {
			return nil, err
		}
		if s, ok := args[0].(string); ok {
			return int64(len(s)), nil
		}
		return nil, &TypeError{Op: "len", Operands: args}
	},
	"str": func(args ...any) (any, error) {
		if err := arity("str", args, 1); err != nil {
			return nil, err
		}
		return fmt.Sprint(args[0]), nil
	},
	"int": func(args ...any) (any, error) {
		if err := arity("int", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case int64:
			return v, nil
		case float64:
			return int64(v), nil
		case string:
			return strconv.ParseInt(v, 0, 64)
		}
		return nil, &TypeError{Op: "int", Operands: args}
	},
	"float": func(args ...any) (any, error) {
		if err := arity("float", args, 1); err != nil {
			return nil, err
		}
		switch v := args[0].(type) {
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		case string:
			return strconv.ParseFloat(v, 64)
		}
		return nil, &TypeError{Op: "float", Operands: args}
	},
}

func arity(name string, args []any, want int) error {
	if len(args) != want {
		return &ArityError{Name: name, Want: want, Got: len(args)}
	}
	return nil
}

func extreme(name string, args []any, sign int) (any, error) {
	if len(args) == 0 {
		return nil, &ArityError{Name: name, Want: 1, Got: 0}
	}
	best := args[0]
	for _, v := range args[1:] {
		c, err := compare(name, v, best)
		if err != nil {
			return nil, err
		}
		if c == sign {
			best = v
		}
	}
	if _, ok := toFloat(best); !ok {
		return nil, &TypeError{Op: name, Operands: args}
	}
	return best, nil
}
