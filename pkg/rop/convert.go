package rop

import (
	"reflect"
)

// Convert coerces x into a Result[S, E].
//
//   - a Result[S, E] is returned unchanged
//   - any other Result has its populated slot coerced; empty stays empty
//   - a raw error becomes an error result
//   - any other value becomes a success
//
// Values coerce by type assertion (which covers interface targets) or by
// lossless numeric widening. Errors coerce by type assertion only; the held
// error is never swapped for one of its causes. A failed coercion yields a
// *TypeMismatchError.
func Convert[S any, E error](x any) (Result[S, E], error) {
	switch v := x.(type) {
	case Result[S, E]:
		return v, nil
	case Outcome:
		return convertOutcome[S, E](v)
	case error:
		e, err := coerceError[E](v)
		if err != nil {
			return empty[S, E](), err
		}
		return Fail[S](e), nil
	}

	s, err := coerceValue[S](x)
	if err != nil {
		return empty[S, E](), err
	}
	return Success[S, E](s), nil
}

// ConvertTo unwraps x and coerces the value to T. It fails with the held
// error when x is an error result.
func ConvertTo[T any](x any) (T, error) {
	return UnwrapAs[T](x)
}

// UnwrapAs is Unwrap followed by a value coercion to T.
func UnwrapAs[T any](x any) (T, error) {
	v, err := Unwrap(x)
	if err != nil {
		var zero T
		return zero, err
	}
	return coerceValue[T](v)
}

// Collect converts every element of xs, stopping at the first one that
// cannot be converted.
func Collect[S any, E error](xs ...any) ([]Result[S, E], error) {
	out := make([]Result[S, E], 0, len(xs))
	for _, x := range xs {
		r, err := Convert[S, E](x)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func convertOutcome[S any, E error](o Outcome) (Result[S, E], error) {
	if v, ok := o.AnyValue(); ok {
		s, err := coerceValue[S](v)
		if err != nil {
			return empty[S, E](), err
		}
		return Success[S, E](s), nil
	}
	if e, ok := o.AnyErr(); ok {
		ce, err := coerceError[E](e)
		if err != nil {
			return empty[S, E](), err
		}
		return Fail[S](ce), nil
	}
	return empty[S, E](), nil
}

func coerceValue[S any](v any) (S, error) {
	if s, ok := v.(S); ok {
		return s, nil
	}

	var zero S
	to := typeFor[S]()
	if v == nil {
		if nilable(to) {
			return zero, nil
		}
		return zero, &TypeMismatchError{To: to}
	}

	rv := reflect.ValueOf(v)
	if widens(rv.Type(), to) {
		return rv.Convert(to).Interface().(S), nil
	}
	return zero, &TypeMismatchError{From: rv.Type(), To: to}
}

func coerceError[E error](err error) (E, error) {
	if e, ok := err.(E); ok {
		return e, nil
	}

	var zero E
	return zero, &TypeMismatchError{From: reflect.TypeOf(err), To: typeFor[E]()}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
