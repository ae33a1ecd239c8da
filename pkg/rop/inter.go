package rop

// Outcome is satisfied by every Result instantiation. It lets code inspect
// results without knowing their type parameters.
type Outcome interface {
	// IsError returns true if the result holds an error or is empty
	IsError() bool
	// IsEmpty returns true if neither slot is populated
	IsEmpty() bool
	// AnyValue returns the held value and whether there is one
	AnyValue() (any, bool)
	// AnyErr returns the held error and whether there is one
	AnyErr() (error, bool)
	// Type describes the result's value and error types
	Type() Type
	String() string
}

var _ Outcome = Result[int, error]{}
