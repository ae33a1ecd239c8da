package expr

import (
	"fmt"
	"go/token"
	"strings"
)

// DiagKind classifies a parse diagnostic.
type DiagKind int

const (
	// DiagError marks malformed input.
	DiagError DiagKind = iota
	// DiagIncomplete marks input that ends before the construct it opened.
	DiagIncomplete
)

func (k DiagKind) String() string {
	if k == DiagIncomplete {
		return "incomplete"
	}
	return "error"
}

type Diagnostic struct {
	Kind DiagKind
	Pos  token.Position
	Msg  string
}

func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", d.Pos, d.Kind, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Msg)
}

// Diagnostics is the list of problems found while parsing, in source order.
type Diagnostics []*Diagnostic

// Err returns the first diagnostic, or nil.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds[0]
}

// Incomplete reports whether every diagnostic is an incomplete-input one.
func (ds Diagnostics) Incomplete() bool {
	for _, d := range ds {
		if d.Kind != DiagIncomplete {
			return false
		}
	}
	return len(ds) > 0
}

func (ds Diagnostics) Error() string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Error()
	}
	return strings.Join(msgs, "\n")
}
