package rop

import (
	"fmt"
	"reflect"
)

var (
	anyType   = reflect.TypeOf((*any)(nil)).Elem()
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// Type describes a Result instantiation at run time.
type Type struct {
	Value reflect.Type
	Err   reflect.Type
}

func TypeOf[T any, E error]() Type {
	return Type{Value: typeFor[T](), Err: typeFor[E]()}
}

// TypeOfResult reports the static type of any Result.
func TypeOfResult(o Outcome) Type {
	return o.Type()
}

func (t Type) String() string {
	return fmt.Sprintf("Result[%s, %s]", typeName(t.Value), typeName(t.Err))
}

// Join returns the smallest Result type both a and b convert into. The value
// and error slots widen independently.
func Join(a, b Type) Type {
	return Type{
		Value: JoinTypes(a.Value, b.Value),
		Err:   JoinErrTypes(a.Err, b.Err),
	}
}

// Promote folds Join over the types of rs. With no results it returns
// Result[any, error].
func Promote(rs ...Outcome) Type {
	if len(rs) == 0 {
		return Type{Value: anyType, Err: errorType}
	}
	t := rs[0].Type()
	for _, r := range rs[1:] {
		t = Join(t, r.Type())
	}
	return t
}

// JoinTypes returns the common value type of a and b: a itself when they
// match, the smallest lossless numeric type for two numbers, the interface
// one of them satisfies, and any otherwise. A nil type is the identity.
func JoinTypes(a, b reflect.Type) reflect.Type {
	switch {
	case a == nil:
		return b
	case b == nil, a == b:
		return a
	}

	if ai, ok := numericInfo(a.Kind()); ok {
		if bi, ok := numericInfo(b.Kind()); ok {
			return numericTypes[joinNumeric(ai, bi)]
		}
	}
	if b.Kind() == reflect.Interface && a.AssignableTo(b) {
		return b
	}
	if a.Kind() == reflect.Interface && b.AssignableTo(a) {
		return a
	}
	return anyType
}

// JoinErrTypes is JoinTypes for error slots, with error as the top.
func JoinErrTypes(a, b reflect.Type) reflect.Type {
	switch {
	case a == nil:
		return b
	case b == nil, a == b:
		return a
	case b.Kind() == reflect.Interface && a.Implements(b):
		return b
	case a.Kind() == reflect.Interface && b.Implements(a):
		return a
	}
	return errorType
}

type numeric struct {
	float  bool
	signed bool
	bits   int
}

var numericTypes = map[numeric]reflect.Type{
	{signed: true, bits: 8}:  reflect.TypeOf(int8(0)),
	{signed: true, bits: 16}: reflect.TypeOf(int16(0)),
	{signed: true, bits: 32}: reflect.TypeOf(int32(0)),
	{signed: true, bits: 64}: reflect.TypeOf(int64(0)),
	{bits: 8}:                reflect.TypeOf(uint8(0)),
	{bits: 16}:               reflect.TypeOf(uint16(0)),
	{bits: 32}:               reflect.TypeOf(uint32(0)),
	{bits: 64}:               reflect.TypeOf(uint64(0)),
	{float: true, bits: 32}:  reflect.TypeOf(float32(0)),
	{float: true, bits: 64}:  reflect.TypeOf(float64(0)),
}

func numericInfo(k reflect.Kind) (numeric, bool) {
	switch k {
	case reflect.Int8:
		return numeric{signed: true, bits: 8}, true
	case reflect.Int16:
		return numeric{signed: true, bits: 16}, true
	case reflect.Int32:
		return numeric{signed: true, bits: 32}, true
	case reflect.Int64, reflect.Int:
		return numeric{signed: true, bits: 64}, true
	case reflect.Uint8:
		return numeric{bits: 8}, true
	case reflect.Uint16:
		return numeric{bits: 16}, true
	case reflect.Uint32:
		return numeric{bits: 32}, true
	case reflect.Uint64, reflect.Uint:
		return numeric{bits: 64}, true
	case reflect.Float32:
		return numeric{float: true, bits: 32}, true
	case reflect.Float64:
		return numeric{float: true, bits: 64}, true
	}
	return numeric{}, false
}

func joinNumeric(a, b numeric) numeric {
	f64 := numeric{float: true, bits: 64}
	switch {
	case a == b:
		return a
	case a.float || b.float:
		return f64
	case a.signed == b.signed:
		return numeric{signed: a.signed, bits: max(a.bits, b.bits)}
	}

	s, u := a, b
	if !s.signed {
		s, u = b, a
	}
	switch {
	case s.bits > u.bits:
		return s
	case u.bits < 64:
		return numeric{signed: true, bits: u.bits * 2}
	}
	return f64
}

// widens reports whether values of from convert losslessly to to. Only
// predeclared numeric types are widening targets.
func widens(from, to reflect.Type) bool {
	if to.PkgPath() != "" || to.Name() != to.Kind().String() {
		return false
	}
	fi, ok := numericInfo(from.Kind())
	if !ok {
		return false
	}
	ti, ok := numericInfo(to.Kind())
	if !ok {
		return false
	}
	return joinNumeric(fi, ti) == ti
}
