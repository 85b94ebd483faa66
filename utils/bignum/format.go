package bignum

import (
	"math/big"
	"strings"
)

// String returns c with 16 significant digits.
func (c *Complex) String() string {
	return c.Text(16)
}

// Text formats c as "a+bi" with the given number of significant decimal digits.
// A part that is smaller than the other by more than the displayed precision is
// printed as zero.
func (c *Complex) Text(digits int) string {
	return c.TextFormat('g', digits)
}

// TextFormat is Text with the parts printed in the given format: 'g' for the shortest
// of decimal and scientific notation, 'e' for scientific notation.
func (c *Complex) TextFormat(format byte, digits int) string {

	if c.IsNaN() {
		return "NaN"
	}

	re := new(big.Float).Copy(c[0])
	im := new(big.Float).Copy(c[1])

	bits := digits*10/3 + 1
	switch {
	case re.Sign() != 0 && im.Sign() != 0 && im.MantExp(nil) < re.MantExp(nil)-bits:
		im.SetInt64(0)
	case re.Sign() != 0 && im.Sign() != 0 && re.MantExp(nil) < im.MantExp(nil)-bits:
		re.SetInt64(0)
	}

	if im.Sign() == 0 {
		return formatPart(re, format, digits)
	}

	var sb strings.Builder

	if re.Sign() != 0 {
		sb.WriteString(formatPart(re, format, digits))
		if im.Sign() > 0 {
			sb.WriteByte('+')
		}
	}

	switch {
	case im.Cmp(big.NewFloat(1)) == 0:
	case im.Cmp(big.NewFloat(-1)) == 0:
		sb.WriteByte('-')
	default:
		sb.WriteString(formatPart(im, format, digits))
	}
	sb.WriteByte('i')

	return sb.String()
}

func formatPart(x *big.Float, format byte, digits int) string {
	if x.Sign() == 0 {
		return "0"
	}
	// 'e' counts the digits after the point
	if format == 'e' {
		digits--
	}
	return x.Text(format, digits)
}
