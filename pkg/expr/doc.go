// Package expr is a small expression language used to exercise the safe
// adapters in package safe.
//
// Source is lexed with go/scanner, so literals, identifiers, comments and
// automatic semicolons follow Go's rules. A program is a sequence of
// statements separated by newlines or semicolons:
//
//	x = 10
//	half(n) = div(n, 2)
//	if(x > 5, half(x), x)
//
// Integers are int64, floats are float64. Builtins are div, rem, abs, min,
// max, len, str, int and float; if is evaluated lazily.
package expr
