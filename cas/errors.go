package cas

import (
	"errors"
)

var (
	// ErrZeroDivisor is returned when dividing by a constant zero or by the zero polynomial.
	ErrZeroDivisor = errors.New("zero divisor")
	// ErrNonIntegerExponent is returned when a polynomial is raised to a non-integer power.
	ErrNonIntegerExponent = errors.New("non integer exponent")
	// ErrNotPoly is returned when an expression has no polynomial structure in the unknown.
	ErrNotPoly = errors.New("not poly")
	// ErrGreaterThanQuartic is returned when the reduced polynomial has degree above four.
	ErrGreaterThanQuartic = errors.New("poly greater than quartic")
	// ErrNothingToIsolate is returned when the unknown does not occur in the expression.
	ErrNothingToIsolate = errors.New("nothing to isolate")
)
