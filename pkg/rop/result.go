package rop

import (
	"fmt"
	"reflect"
)

// Result holds either a value of type T or an error of kind E.
//
// The zero Result holds neither and is reported as empty; every query treats
// it as an error condition.
type Result[T any, E error] struct {
	value    T
	err      E
	hasValue bool
	hasErr   bool
}

func Success[T any, E error](v T) Result[T, E] {
	return Result[T, E]{
		value:    v,
		hasValue: true,
	}
}

// Ok is Success with the default error type.
func Ok[T any](v T) Result[T, error] {
	return Success[T, error](v)
}

// Fail returns a Result holding err. A nil err is replaced by a placeholder
// *Error when E can hold one; otherwise the result is empty, since a nil
// concrete error cannot be reported.
func Fail[T any, E error](err E) Result[T, E] {
	if IsNil(err) {
		placeholder, ok := any(&Error{Msg: "rop: nil error"}).(E)
		if !ok {
			return empty[T, E]()
		}
		err = placeholder
	}
	return Result[T, E]{
		err:    err,
		hasErr: true,
	}
}

// FailMsg wraps msg in the default error kind.
func FailMsg[T any](msg string) Result[T, error] {
	return Fail[T, error](&Error{Msg: msg})
}

// FailFrom carries the error of a non-success result over to another value
// type. An empty input stays empty, and so does a success input.
func FailFrom[In, Out any, E error](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:    from.err,
		hasErr: from.hasErr,
	}
}

// empty builds a Result with neither slot populated.
func empty[T any, E error]() Result[T, E] {
	return Result[T, E]{}
}

func (r Result[T, E]) Value() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.hasValue
}

// IsError reports whether r holds an error or is empty.
func (r Result[T, E]) IsError() bool {
	return !r.hasValue
}

func (r Result[T, E]) IsEmpty() bool {
	return !r.hasValue && !r.hasErr
}

// Unwrap returns the held value, the held error, or ErrEmptyResult.
func (r Result[T, E]) Unwrap() (T, error) {
	switch {
	case r.hasValue:
		return r.value, nil
	case r.hasErr:
		var zero T
		return zero, r.err
	default:
		var zero T
		return zero, ErrEmptyResult
	}
}

// UnwrapError returns the held error. Success results yield ErrNotAnError.
func (r Result[T, E]) UnwrapError() (E, error) {
	var zero E
	switch {
	case r.hasErr:
		return r.err, nil
	case r.hasValue:
		return zero, ErrNotAnError
	default:
		return zero, ErrEmptyResult
	}
}

// Must returns the held value and panics with the error Unwrap reports.
func (r Result[T, E]) Must() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

func (r Result[T, E]) AnyValue() (any, bool) {
	return r.value, r.hasValue
}

func (r Result[T, E]) AnyErr() (error, bool) {
	if !r.hasErr {
		return nil, false
	}
	return r.err, true
}

func (r Result[T, E]) Type() Type {
	return TypeOf[T, E]()
}

func (r Result[T, E]) String() string {
	switch {
	case r.hasValue:
		return fmt.Sprintf("Result(%v)", r.value)
	case r.hasErr:
		return fmt.Sprintf("ErrorResult(%s, %s)", typeName(typeFor[T]()), safeErrorString(r.err))
	default:
		return fmt.Sprintf("EmptyResult(%s)", typeName(typeFor[T]()))
	}
}

// Format implements fmt.Formatter so that %+v reaches the held error's
// detailed form.
func (r Result[T, E]) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && r.hasErr && !IsNil(r.err) {
		fmt.Fprintf(s, "ErrorResult(%s, %+v)", typeName(typeFor[T]()), r.err)
		return
	}
	fmt.Fprint(s, r.String())
}

func typeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t == anyType {
		return "any"
	}
	return t.String()
}

func safeErrorString(err error) (s string) {
	if IsNil(err) {
		return "<nil>"
	}
	defer func() {
		if p := recover(); p != nil {
			s = fmt.Sprintf("<error rendering %T: %v>", err, p)
		}
	}()
	return err.Error()
}
