package rop

import "github.com/dsnet/try"

// Handle recovers a bail-out raised by Try or TryOr and stores its error in
// *errptr. It must be deferred directly by the function that calls Try:
//
//	func load() (cfg Config, err error) {
//		defer rop.Handle(&err)
//		n := rop.Try(safe.Parse[int](text))
//		...
//	}
var Handle = try.Handle

// Try returns the value held by r. Otherwise it bails out of the enclosing
// function with the held error (or ErrEmptyResult).
func Try[T any, E error](r Result[T, E]) T {
	return try.E1(r.Unwrap())
}

// TryOr is Try but bails out with fallback instead of the held error.
func TryOr[T any, E error](r Result[T, E], fallback error) T {
	if r.IsError() && fallback != nil {
		try.E(fallback)
	}
	return Try(r)
}

// Do runs fn and returns its value as a success. A bail-out inside fn
// becomes an error result.
func Do[T any](fn func() T) (r Result[T, error]) {
	var err error
	defer func() {
		if err != nil {
			r = Fail[T](err)
		}
	}()
	defer try.Handle(&err)
	return Ok(fn())
}
