// Package rop defines Result[T, E], a value that holds either a success of
// type T or a failure of error kind E.
//
// Results are built with Success/Ok and Fail/FailMsg and read back with
// Unwrap, UnwrapError or Must. Convert moves values, errors and results of
// other instantiations into a target Result type, widening numbers and
// satisfying interfaces along the way; Promote computes the common Result
// type of a mixed set of results.
//
// Try, TryOr and Handle give an early-return style on top of
// github.com/dsnet/try:
//
//	func area(w, h string) (n int, err error) {
//		defer rop.Handle(&err)
//		return rop.Try(safe.Parse[int](w)) * rop.Try(safe.Parse[int](h)), nil
//	}
package rop
