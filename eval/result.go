package eval

import (
	"fmt"
	"strings"

	"github.com/symcalc/symcalc/token"
	"github.com/symcalc/symcalc/utils"
	"github.com/symcalc/symcalc/utils/bignum"
)

// Result is the value of an expression: a single complex number or a fixed-length vector.
type Result struct {
	values []*bignum.Complex
	vector bool
}

// NewScalar returns a scalar Result.
func NewScalar(v *bignum.Complex) Result {
	return Result{values: []*bignum.Complex{v}}
}

// NewVector returns a vector Result. The slice is not copied.
func NewVector(values []*bignum.Complex) Result {
	return Result{values: values, vector: true}
}

// IsVector reports whether r is a vector.
func (r Result) IsVector() bool {
	return r.vector
}

// Len returns the number of values held by r.
func (r Result) Len() int {
	return len(r.values)
}

// Scalar returns the value of a scalar Result.
func (r Result) Scalar() (*bignum.Complex, error) {
	if r.vector || len(r.values) != 1 {
		return nil, fmt.Errorf("%w: got a vector of %d values", ErrNotScalar, len(r.values))
	}
	return r.values[0], nil
}

// Values returns the values of r: one for a scalar, all elements for a vector.
func (r Result) Values() []*bignum.Complex {
	return r.values
}

// Token returns r as a Num or Vector token.
func (r Result) Token() token.Token {
	if r.vector {
		return token.Vector{Values: r.values}
	}
	return token.Num{Value: r.values[0]}
}

// Text formats r with the given number of significant digits.
func (r Result) Text(digits int) string {
	if !r.vector && len(r.values) == 1 {
		return r.values[0].Text(digits)
	}
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = v.Text(digits)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (r Result) String() string {
	return r.Text(16)
}

// broadcast applies f element-wise on a and b.
// A scalar or a single-element vector is combined with every element of the other operand.
func broadcast(a, b Result, f func(x, y *bignum.Complex) *bignum.Complex) (Result, error) {

	if !a.vector && !b.vector {
		return NewScalar(f(a.values[0], b.values[0])), nil
	}

	n := len(a.values)
	switch {
	case len(a.values) == len(b.values):
	case len(a.values) == 1:
		n = len(b.values)
	case len(b.values) == 1:
	default:
		return Result{}, fmt.Errorf("%w: %d and %d", ErrShapeMismatch, len(a.values), len(b.values))
	}

	out := make([]*bignum.Complex, n)
	for i := range out {
		out[i] = f(a.values[utils.Min(i, len(a.values)-1)], b.values[utils.Min(i, len(b.values)-1)])
	}

	return NewVector(out), nil
}

// mapValues applies f to every value of r, preserving its shape.
func mapValues(r Result, f func(x *bignum.Complex) *bignum.Complex) Result {
	out := make([]*bignum.Complex, len(r.values))
	for i := range out {
		out[i] = f(r.values[i])
	}
	return Result{values: out, vector: r.vector}
}
