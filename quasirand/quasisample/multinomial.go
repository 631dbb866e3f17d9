package quasisample

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/go-qmc/qmc/quasirand"
)

// Errors returned by NewMultinomialQMC's probability-vector validation.
var (
	ErrNegativeProbability = errors.New("quasisample: probabilities must be non-negative")
	ErrProbabilitiesSum    = errors.New("quasisample: probabilities must sum to 1")
)

// MultinomialQMC draws a single quasi-Monte Carlo sample of category counts
// from a multinomial distribution: a one-dimensional low-discrepancy
// sequence is mapped into categories via the cumulative distribution, then
// tallied into one count vector of length len(pvals) summing to n. Grounded
// on MultinomialQMC in
// _examples/original_source/scipy/stats/_qmc.py (lines ~1610-1635), whose
// constructor takes (pvals, engine, seed) and whose random(n) returns a
// single length-len(pvals) integer vector summing to n.
type MultinomialQMC struct {
	pvals  []float64
	cum    []float64
	engine quasirand.Engine
}

// NewMultinomialQMC constructs a sampler for the categorical distribution
// pvals, which must be non-negative and sum to 1 within floating-point
// tolerance.
func NewMultinomialQMC(pvals []float64, seed interface{}) (*MultinomialQMC, error) {
	sum := 0.0
	for _, p := range pvals {
		if p < 0 {
			return nil, ErrNegativeProbability
		}
		sum += p
	}
	const tol = 1e-8
	if sum < 1-tol || sum > 1+tol {
		return nil, ErrProbabilitiesSum
	}

	cum := make([]float64, len(pvals))
	running := 0.0
	for i, p := range pvals {
		running += p
		cum[i] = running
	}
	cum[len(cum)-1] = 1

	engine, err := quasirand.NewSobol(1, true, seed)
	if err != nil {
		return nil, err
	}
	return &MultinomialQMC{pvals: pvals, cum: cum, engine: engine}, nil
}

// Random draws n base scalars and returns their tally as a single
// length-len(pvals) count vector (a 1 x len(pvals) matrix) summing to n.
func (m *MultinomialQMC) Random(n int) (*mat.Dense, error) {
	draws, err := m.engine.Random(n)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(1, len(m.pvals), nil)
	for t := 0; t < n; t++ {
		u := draws.At(t, 0)
		cat := categorize(m.cum, u)
		out.Set(0, cat, out.At(0, cat)+1)
	}
	return out, nil
}

// categorize returns the index of the first cumulative-probability entry
// at or above u.
func categorize(cum []float64, u float64) int {
	for i, c := range cum {
		if u <= c {
			return i
		}
	}
	return len(cum) - 1
}
