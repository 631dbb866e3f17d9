package quasirand

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/go-qmc/qmc/quasirand/internal/sobolseq"
)

const (
	// SobolMaxDim mirrors sobolseq.MaxDim, re-exported for callers that
	// want to size dimension loops without importing the internal package.
	SobolMaxDim = sobolseq.MaxDim

	// sobolBits is the fixed-point width B of a Sobol' direction number;
	// the sequence has 2^B points before it wraps.
	sobolBits = sobolseq.MaxBit

	sobolScale = float64(uint64(1) << sobolBits)
)

// Sobol is a Sobol' low-discrepancy sequence engine with optional Owen-style
// linear scrambling, grounded on the Gray-code Antonov-Saleev recurrence in
// _examples/original_source/scipy/stats/_qmc.py (Sobol.random, lines
// 1015-1080) and gonum's struct-embedding convention for stateful samplers
// (see stat/distuv's per-distribution Src field).
type Sobol struct {
	base

	v     [][]uint32 // d x sobolBits direction matrix, post-scramble
	shift []uint32   // length d, the scrambling shift (zero if unscrambled)
	quasi []uint32   // current point, length d
}

// NewSobol constructs a Sobol' engine over [0,1)^d. If scramble is true, the
// sequence is randomized with a digital (Owen-style) linear scramble seeded
// from seed; otherwise the classical unscrambled sequence is produced and
// seed is ignored.
func NewSobol(d int, scramble bool, seed interface{}) (*Sobol, error) {
	if d < 0 {
		return nil, ErrNegativeDimension
	}
	if d > SobolMaxDim {
		return nil, ErrDimensionTooLarge
	}

	v := make([][]uint32, d)
	for j := 0; j < d; j++ {
		col, err := sobolseq.Column(j, sobolBits)
		if err != nil {
			return nil, fmt.Errorf("quasirand: building Sobol' direction numbers: %w", err)
		}
		v[j] = col
	}

	s := &Sobol{
		base:  base{d: d},
		v:     v,
		shift: make([]uint32, d),
		quasi: make([]uint32, d),
	}
	if scramble {
		rnd, err := NewRand(seed)
		if err != nil {
			return nil, err
		}
		s.scrambleOwen(rnd)
	}
	copy(s.quasi, s.shift)
	return s, nil
}

// scrambleOwen applies a random digital linear scramble: for each dimension
// a random lower-triangular B x B 0/1 matrix with its diagonal fixed to 1
// (so the transform is invertible) is used to XOR-linearly transform each
// direction number's bits,
// and a random length-B shift is drawn for the initial point.
func (s *Sobol) scrambleOwen(rnd *rand.Rand) {
	for j := 0; j < s.d; j++ {
		lt := randLowerTriangular(rnd, sobolBits)
		for k := 0; k < sobolBits; k++ {
			s.v[j][k] = applyLinearScramble(lt, s.v[j][k])
		}

		var shift uint32
		for b := 0; b < sobolBits; b++ {
			if rnd.Intn(2) == 1 {
				shift |= 1 << uint(sobolBits-1-b)
			}
		}
		s.shift[j] = shift
	}
}

// randLowerTriangular draws a lower-triangular n x n 0/1 matrix with ones on
// the diagonal and random bits below it (row-major, lt[i*n+j] meaningful for
// j <= i), the scrambling matrix used by scrambleOwen.
func randLowerTriangular(rnd *rand.Rand, n int) []uint8 {
	lt := make([]uint8, n*n)
	for i := 0; i < n; i++ {
		lt[i*n+i] = 1
		for j := 0; j < i; j++ {
			lt[i*n+j] = uint8(rnd.Intn(2))
		}
	}
	return lt
}

// applyLinearScramble transforms the B-bit value v bit-by-bit through the
// lower-triangular matrix lt: output bit i is the XOR of lt[i,j]*v[j] over
// j <= i, with bit 0 the most significant.
func applyLinearScramble(lt []uint8, v uint32) uint32 {
	n := sobolBits
	bit := func(x uint32, i int) uint32 { return (x >> uint(n-1-i)) & 1 }
	var out uint32
	for i := 0; i < n; i++ {
		var acc uint32
		for j := 0; j <= i; j++ {
			if lt[i*n+j] == 1 {
				acc ^= bit(v, j)
			}
		}
		out |= acc << uint(n-1-i)
	}
	return out
}

// Random draws the next n points. Drawing a non-power-of-two count, or a
// count that does not bring the total drawn since the last Reset to a power
// of two, breaks the low-discrepancy balance property invariant to the
// sequence; Random allows it (matching the original's warn-don't-fail
// behavior) and reports it through Warnf.
func (s *Sobol) Random(n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	total := s.numGenerated + n
	if !isPowerOfTwo(n) || (s.numGenerated != 0 && !isPowerOfTwo(total)) {
		Warnf("quasirand: Sobol'.Random(%d) from offset %d does not preserve the power-of-two balance property", n, s.numGenerated)
	}

	out := mat.NewDense(n, s.d, nil)
	for i := 0; i < n; i++ {
		if s.numGenerated == 0 && i == 0 {
			for j := 0; j < s.d; j++ {
				out.Set(i, j, float64(s.quasi[j])/sobolScale)
			}
			s.numGenerated++
			continue
		}
		c := lowestUnsetBit(s.numGenerated - 1)
		for j := 0; j < s.d; j++ {
			s.quasi[j] ^= s.v[j][c]
			out.Set(i, j, float64(s.quasi[j])/sobolScale)
		}
		s.numGenerated++
	}
	return out, nil
}

// RandomBase2 draws 2^m points, asserting that the draw starts on a
// power-of-two boundary; it returns ErrBalance instead of warning when the
// balance property would be violated, for callers that depend on it.
func (s *Sobol) RandomBase2(m int) (*mat.Dense, error) {
	n := 1 << uint(m)
	total := s.numGenerated + n
	if !isPowerOfTwo(s.numGenerated) && s.numGenerated != 0 {
		return nil, ErrBalance
	}
	if s.numGenerated != 0 && !isPowerOfTwo(total) {
		return nil, ErrBalance
	}
	out := mat.NewDense(n, s.d, nil)
	for i := 0; i < n; i++ {
		if s.numGenerated == 0 && i == 0 {
			for j := 0; j < s.d; j++ {
				out.Set(i, j, float64(s.quasi[j])/sobolScale)
			}
			s.numGenerated++
			continue
		}
		c := lowestUnsetBit(s.numGenerated - 1)
		for j := 0; j < s.d; j++ {
			s.quasi[j] ^= s.v[j][c]
			out.Set(i, j, float64(s.quasi[j])/sobolScale)
		}
		s.numGenerated++
	}
	return out, nil
}

// FastForward advances the cursor by n points without materializing them.
func (s *Sobol) FastForward(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	for i := 0; i < n; i++ {
		if s.numGenerated == 0 && i == 0 {
			s.numGenerated++
			continue
		}
		c := lowestUnsetBit(s.numGenerated - 1)
		for j := 0; j < s.d; j++ {
			s.quasi[j] ^= s.v[j][c]
		}
		s.numGenerated++
	}
	return nil
}

// Reset rewinds the cursor to the start of the sequence without re-drawing
// the scrambling.
func (s *Sobol) Reset() {
	s.numGenerated = 0
	copy(s.quasi, s.shift)
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// lowestUnsetBit returns the position (0-indexed, from the low bit) of the
// lowest zero bit of i — the Gray-code column index the Antonov-Saleev
// recurrence updates next.
func lowestUnsetBit(i int) int {
	c := 0
	for i&1 == 1 {
		i >>= 1
		c++
	}
	return c
}
