package quasirand

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Optimizer searches for a lower-discrepancy rearrangement of doe in place,
// running for niter iterations starting from the discrepancy in *bestDisc.
// Optimizer implementations are expected to report their best find purely
// through in-place mutation of doe and through bestDisc, not through a
// function return value: DefaultOptimizer below writes each accepted swap
// into doe and its discrepancy into *bestDisc, after
// _examples/original_source/scipy/stats/_qmc.py's _perturb_best_doe
// (lines ~1300-1340), which likewise treats the search as side-effecting
// rather than expression-returning (Open Question (b) in the
// specification, resolved in favor of the original's behavior).
type Optimizer func(rnd *rand.Rand, doe *mat.Dense, bestDisc *float64, niter int)

// DefaultOptimizer is a random elementary-swap search in the style of
// gonum's optimize.GuessAndCheck: each iteration perturbs two random rows
// at a random column and applies the swap only if PerturbDiscrepancy reports
// an improvement; a rejected candidate leaves doe untouched.
func DefaultOptimizer(rnd *rand.Rand, doe *mat.Dense, bestDisc *float64, niter int) {
	n, d := doe.Dims()
	if n < 2 || d == 0 {
		return
	}
	for iter := 0; iter < niter; iter++ {
		i1 := rnd.Intn(n)
		i2 := rnd.Intn(n)
		for i2 == i1 {
			i2 = rnd.Intn(n)
		}
		k := rnd.Intn(d)

		candidate := PerturbDiscrepancy(doe, i1, i2, k, *bestDisc)
		if candidate < *bestDisc {
			v1 := doe.At(i1, k)
			v2 := doe.At(i2, k)
			doe.Set(i1, k, v2)
			doe.Set(i2, k, v1)
			*bestDisc = candidate
		}
	}
}

// OptimalDesign searches for a low-discrepancy rearrangement of an initial
// design. Grounded on the OptimalDesign engine in
// _examples/original_source/scipy/stats/_qmc.py (lines ~1350-1420): an
// initial design is drawn from a base engine (OrthogonalLatinHypercube by
// default),
// then niter rounds of the optimizer attempt to reduce its centered
// discrepancy by coordinate-swap perturbation.
type OptimalDesign struct {
	base

	start     Engine
	method    string
	niter     int
	optimizer Optimizer
	rnd       *rand.Rand
}

// NewOptimalDesign constructs an OptimalDesign engine over [0,1)^d. If
// start is nil, an OrthogonalLatinHypercube engine is used, matching the
// upstream OptimalDesign's default initial design. If optimizer is nil,
// DefaultOptimizer is used. niter controls how many perturbation rounds
// are attempted per call to Random.
func NewOptimalDesign(d int, start Engine, method string, niter int, optimizer Optimizer, seed interface{}) (*OptimalDesign, error) {
	if d < 0 {
		return nil, ErrNegativeDimension
	}
	rnd, err := NewRand(seed)
	if err != nil {
		return nil, err
	}
	if start == nil {
		start, err = NewOrthogonalLatinHypercube(d, seedCopy(rnd))
		if err != nil {
			return nil, err
		}
	}
	if method == "" {
		method = MethodCD
	}
	if optimizer == nil {
		optimizer = DefaultOptimizer
	}
	return &OptimalDesign{
		base:      base{d: d},
		start:     start,
		method:    method,
		niter:     niter,
		optimizer: optimizer,
		rnd:       rnd,
	}, nil
}

// Random draws an n-point design and returns the best rearrangement the
// optimizer found within niter iterations. d == 0 short-circuits to an
// empty (n, 0) block, since no coordinate swap is meaningful without at
// least one dimension.
func (o *OptimalDesign) Random(n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if o.d == 0 {
		o.numGenerated += n
		return mat.NewDense(n, 0, nil), nil
	}

	doe, err := o.start.Random(n)
	if err != nil {
		return nil, err
	}
	bestDisc, err := Discrepancy(doe, false, o.method)
	if err != nil {
		return nil, err
	}
	o.optimizer(o.rnd, doe, &bestDisc, o.niter)
	o.numGenerated += n
	return doe, nil
}

// Reset rewinds the underlying start engine.
func (o *OptimalDesign) Reset() {
	o.numGenerated = 0
	o.start.Reset()
}

// FastForward advances the underlying start engine's cursor.
func (o *OptimalDesign) FastForward(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	o.numGenerated += n
	return o.start.FastForward(n)
}
