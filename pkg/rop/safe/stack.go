package safe

import "github.com/pkg/errors"

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// callers returns the stack starting at the function that called callers.
func callers() errors.StackTrace {
	st := errors.New("").(stackTracer).StackTrace()
	if len(st) < 2 {
		return nil
	}
	return st[1:]
}
