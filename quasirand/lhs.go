package quasirand

import "gonum.org/v1/gonum/mat"

// LatinHypercube is a (possibly centered) Latin Hypercube Sampling engine.
// Grounded on _examples/original_source/scipy/stats/_qmc.py's
// LatinHypercube.random (lines ~840-880). Per the specification, each
// coordinate draws q in {1, ..., n} independently with replacement and
// returns (q - r)/n: this is an approximate stratification (the same
// stratum index can repeat across rows of a column) rather than a true
// one-point-per-stratum design.
//
// Deviation from the original: the reference implementation draws q via a
// high-exclusive integer draw, which yields q in {1, ..., n-1} rather than
// the {1, ..., n} the specification calls for. The specification's
// explicit statement is authoritative here (the original is consulted
// only to resolve what the specification leaves ambiguous), so q is drawn
// from {1, ..., n} below. See DESIGN.md.
type LatinHypercube struct {
	base

	centered bool
	rnd      interface{}
}

// NewLatinHypercube constructs a Latin Hypercube engine over [0,1)^d.
func NewLatinHypercube(d int, centered bool, seed interface{}) (*LatinHypercube, error) {
	if d < 0 {
		return nil, ErrNegativeDimension
	}
	rnd, err := NewRand(seed)
	if err != nil {
		return nil, err
	}
	return &LatinHypercube{base: base{d: d}, centered: centered, rnd: rnd}, nil
}

// Random draws n points. Every call draws a fresh independent stratified
// design; unlike Sobol' and Halton there is no cross-call sequence to
// continue, so FastForward is a pure cursor bump and Reset is a no-op
// beyond zeroing it.
func (l *LatinHypercube) Random(n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	rnd, err := NewRand(l.rnd)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, l.d, nil)
	if n == 0 {
		return out, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < l.d; j++ {
			var r float64
			if l.centered {
				r = 0.5
			} else {
				r = rnd.Float64()
			}
			// q in {1, ..., n}, drawn independently per cell with
			// replacement per the specification.
			q := rnd.Intn(n) + 1
			out.Set(i, j, (float64(q)-r)/float64(n))
		}
	}
	l.numGenerated += n
	return out, nil
}

// Reset rewinds the cursor.
func (l *LatinHypercube) Reset() { l.numGenerated = 0 }

// FastForward advances the cursor without materializing skipped draws. As
// each LatinHypercube.Random call is independent, this only affects the
// reported cursor position, not future draws.
func (l *LatinHypercube) FastForward(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	l.numGenerated += n
	return nil
}

// OrthogonalLatinHypercube is a stratified variant of LatinHypercube that
// additionally balances points across n equal-probability strata per
// dimension, reducing the clustering a plain LHS design can still exhibit.
// Grounded on
// _examples/original_source/scipy/stats/_qmc.py:~900 (OrthogonalLatinHypercube)
// and supplemented per spec §9 as a distinct engine rather than an option
// on LatinHypercube, since the original keeps them as separate classes.
type OrthogonalLatinHypercube struct {
	base
	rnd interface{}
}

// NewOrthogonalLatinHypercube constructs the engine over [0,1)^d.
func NewOrthogonalLatinHypercube(d int, seed interface{}) (*OrthogonalLatinHypercube, error) {
	if d < 0 {
		return nil, ErrNegativeDimension
	}
	rnd, err := NewRand(seed)
	if err != nil {
		return nil, err
	}
	return &OrthogonalLatinHypercube{base: base{d: d}, rnd: rnd}, nil
}

// Random draws n points, each coordinate stratified into n equal-width
// bins [j/n, (j+1)/n) with a uniform offset inside the bin, the bins then
// independently shuffled per dimension.
func (o *OrthogonalLatinHypercube) Random(n int) (*mat.Dense, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	rnd, err := NewRand(o.rnd)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(n, o.d, nil)
	if n == 0 {
		return out, nil
	}
	for j := 0; j < o.d; j++ {
		perm := rnd.Perm(n)
		for i := 0; i < n; i++ {
			stratum := float64(perm[i])
			jitter := rnd.Float64() / float64(n)
			out.Set(i, j, stratum/float64(n)+jitter)
		}
	}
	o.numGenerated += n
	return out, nil
}

// Reset rewinds the cursor.
func (o *OrthogonalLatinHypercube) Reset() { o.numGenerated = 0 }

// FastForward advances the cursor.
func (o *OrthogonalLatinHypercube) FastForward(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	o.numGenerated += n
	return nil
}
