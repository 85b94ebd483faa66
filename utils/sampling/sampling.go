// Package sampling implements deterministic and system-seeded sampling of bytes, integers and
// integer polynomials.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandUint64 returns a uniform value in [0, 2^64) read from prng.
func RandUint64(prng PRNG) (uint64, error) {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RandInt64 returns a uniform value in [-bound, bound] read from prng.
func RandInt64(prng PRNG, bound int64) (int64, error) {

	if bound < 0 {
		return 0, fmt.Errorf("cannot RandInt64: bound must be non-negative but is %d", bound)
	}

	n := uint64(2*bound + 1)

	// rejection sampling on the largest multiple of n below 2^64
	limit := ^uint64(0) - (^uint64(0) % n)

	for {
		r, err := RandUint64(prng)
		if err != nil {
			return 0, err
		}
		if r < limit {
			return int64(r%n) - bound, nil
		}
	}
}

// IntegerPolynomial samples the coefficients of a polynomial of the given degree, by ascending
// power, each uniform in [-bound, bound]. The leading coefficient is never zero.
func IntegerPolynomial(prng PRNG, degree int, bound int64) (coeffs []int64, err error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot IntegerPolynomial: degree must be non-negative but is %d", degree)
	}

	if bound < 1 {
		return nil, fmt.Errorf("cannot IntegerPolynomial: bound must be at least 1 but is %d", bound)
	}

	coeffs = make([]int64, degree+1)
	for i := range coeffs {
		if coeffs[i], err = RandInt64(prng, bound); err != nil {
			return nil, err
		}
	}

	for coeffs[degree] == 0 {
		if coeffs[degree], err = RandInt64(prng, bound); err != nil {
			return nil, err
		}
	}

	return
}
