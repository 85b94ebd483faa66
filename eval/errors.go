package eval

import (
	"errors"
)

var (
	// ErrSyntax is returned for malformed token streams.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownFunction is returned when a Func token names no known function.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrUnboundName is returned when a Name token has no binding.
	ErrUnboundName = errors.New("unbound name")
	// ErrNotScalar is returned when a single value was required but a vector was found.
	ErrNotScalar = errors.New("not a scalar")
	// ErrShapeMismatch is returned when two vectors of different lengths are combined.
	ErrShapeMismatch = errors.New("vector length mismatch")
	// ErrUndefined is returned when an operation has no value, e.g. 0/0 or ln(0).
	ErrUndefined = errors.New("undefined")
)
