package rop

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsError reports whether x is a non-nil error or a Result that is not a
// success.
func IsError(x any) bool {
	switch v := x.(type) {
	case Outcome:
		return v.IsError()
	case error:
		return !IsNil(v)
	}
	return false
}

// Unwrap returns the value held by a Result, or x itself when x is not a
// Result.
func Unwrap(x any) (any, error) {
	o, ok := x.(Outcome)
	if !ok {
		return x, nil
	}
	if v, ok := o.AnyValue(); ok {
		return v, nil
	}
	if err, ok := o.AnyErr(); ok {
		return nil, err
	}
	return nil, ErrEmptyResult
}

// UnwrapError returns the error held by a Result. A raw error is returned
// unchanged.
func UnwrapError(x any) (error, error) {
	switch v := x.(type) {
	case Outcome:
		if err, ok := v.AnyErr(); ok {
			return err, nil
		}
		if v.IsEmpty() {
			return nil, ErrEmptyResult
		}
		return nil, ErrNotAnError
	case error:
		if !IsNil(v) {
			return v, nil
		}
	}
	return nil, ErrNotAnError
}
