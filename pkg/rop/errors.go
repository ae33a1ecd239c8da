package rop

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrEmptyResult is reported when a Result holds neither a value nor an
	// error.
	ErrEmptyResult = errors.New("rop: empty result")
	// ErrNotAnError is reported when an error is requested from a success.
	ErrNotAnError = errors.New("rop: not an error result")
)

// Error is the default error kind: a message with an optional cause.
type Error struct {
	Msg   string
	Cause error
}

func Errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Cause.Error()
	}
	return e.Msg + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// TypeMismatchError reports a failed coercion.
type TypeMismatchError struct {
	From reflect.Type
	To   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("rop: cannot convert %s to %s", typeName(e.From), typeName(e.To))
}

// Describe renders err followed by its cause chain, one "caused by" line per
// link. Joined errors are listed under the error that joins them.
func Describe(err error) string {
	var b strings.Builder
	describe(&b, err, 0, "")
	return b.String()
}

func describe(b *strings.Builder, err error, depth int, prefix string) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(prefix)
	b.WriteString(safeErrorString(err))
	if IsNil(err) {
		return
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		if cause := u.Unwrap(); cause != nil {
			b.WriteByte('\n')
			describe(b, cause, depth, "caused by: ")
		}
	case interface{ Unwrap() []error }:
		for _, cause := range u.Unwrap() {
			if cause == nil {
				continue
			}
			b.WriteByte('\n')
			describe(b, cause, depth+1, "- ")
		}
	}
}
