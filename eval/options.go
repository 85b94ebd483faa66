// Package eval reduces constant token streams to arbitrary-precision complex values.
package eval

import (
	"fmt"
)

// DefaultPrec is the default working precision in bits.
const DefaultPrec = 256

// Options carries the numeric settings shared by every evaluation.
type Options struct {
	// Prec is the precision, in bits, of constants and freshly allocated values.
	Prec uint
}

// DefaultOptions returns the default Options.
func DefaultOptions() Options {
	return Options{Prec: DefaultPrec}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.Prec < 2 {
		return fmt.Errorf("invalid options: precision must be at least 2 bits but is %d", o.Prec)
	}
	return nil
}

// Bindings resolves the Name tokens that are left in an expression.
type Bindings map[string]Result
