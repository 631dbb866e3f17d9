package quasirand

import "gonum.org/v1/gonum/mat"

// Halton is a Halton low-discrepancy sequence engine: dimension j is the
// scrambled van der Corput sequence in the j-th prime base. Grounded on
// _examples/original_source/scipy/stats/_qmc.py's Halton.random (lines
// 772-800), including its reuse of a single frozen seed across every call
// to VanDerCorput so that the scrambling permutation is identical for every
// block drawn from this engine, not re-randomized per call.
type Halton struct {
	base

	bases   []int
	scrambl bool
	seed    interface{} // frozen via seedCopy at construction
}

// NewHalton constructs a Halton engine over [0,1)^d.
func NewHalton(d int, scramble bool, seed interface{}) (*Halton, error) {
	if d < 0 {
		return nil, ErrNegativeDimension
	}
	rnd, err := NewRand(seed)
	if err != nil {
		return nil, err
	}
	return &Halton{
		base:    base{d: d},
		bases:   NPrimes(d),
		scrambl: scramble,
		seed:    seedCopy(rnd),
	}, nil
}

// Random draws the next n points.
func (h *Halton) Random(n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	out := mat.NewDense(n, h.d, nil)
	for j := 0; j < h.d; j++ {
		col, err := VanDerCorput(n, h.bases[j], h.numGenerated, h.scrambl, h.seed)
		if err != nil {
			return nil, err
		}
		for i, v := range col {
			out.Set(i, j, v)
		}
	}
	h.numGenerated += n
	return out, nil
}

// Reset rewinds the cursor to the start of the sequence.
func (h *Halton) Reset() {
	h.numGenerated = 0
}

// FastForward advances the cursor by n points without materializing them.
func (h *Halton) FastForward(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	h.numGenerated += n
	return nil
}
