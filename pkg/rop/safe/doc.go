// Package safe turns failing parse and evaluation calls into rop.Result
// values. Every adapter is a failure boundary: it never panics and never
// returns a bare error.
//
//	n := safe.Parse[int]("42")            // Result(42)
//	bad := safe.Parse[int]("42/2")        // ErrorResult(int, could not parse 42/2 into type int)
//	tree := safe.ParseSyntax("f(x) = x * 2", expr.ModeStatement, "")
//	v := safe.EvalText(expr.NewModule("main"), "div(1, 0)")
//
// Failures carry a *ParseError or *EvalError with the stack captured where
// the adapter absorbed the failure. Format them with %+v to print the cause
// chain and the stack.
package safe
