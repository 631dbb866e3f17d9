package quasirand

import "math"

// VanDerCorput returns the length-n scrambled base-b radical inverse
// sequence of the integers startIndex, startIndex+1, ..., startIndex+n-1.
//
// When scramble is true, a single permutation of {0, ..., base-1} is drawn
// from seed and applied to every digit of every point — the same
// permutation across points in this call, a different one across calls
// seeded independently. This mirrors the digit-and-carry scrambling in the
// original (_examples/original_source/scipy/stats/_qmc.py:468-524): the
// permuted remainder feeds back into the running quotient, not just the
// output digit, which is what makes this Owen-style scrambling rather than
// a simple digit substitution.
//
// The digit loop terminates once base^-k is too small to change 1 in
// floating point, i.e. once 1-b2r no longer differs from 1.
func VanDerCorput(n, base, startIndex int, scramble bool, seed interface{}) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if base < 2 {
		return nil, ErrInvalidBase
	}
	rnd, err := NewRand(seed)
	if err != nil {
		return nil, err
	}

	seq := make([]float64, n)
	quotient := make([]float64, n)
	for i := range quotient {
		quotient[i] = float64(startIndex + i)
	}

	var perm []int
	if scramble {
		perm = rnd.Perm(base)
	}

	b2r := 1 / float64(base)
	for 1-b2r < 1 {
		for i := range seq {
			remainder := int(math.Mod(quotient[i], float64(base)))
			if remainder < 0 {
				remainder += base
			}
			if scramble {
				remainder = perm[remainder]
			}
			seq[i] += float64(remainder) * b2r
			quotient[i] = (quotient[i] - float64(remainder)) / float64(base)
		}
		b2r /= float64(base)
	}
	return seq, nil
}
