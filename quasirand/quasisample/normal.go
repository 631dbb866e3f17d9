// Package quasisample provides derived samplers built on top of the
// low-discrepancy engines in quasirand, the way gonum splits
// stat/sampleuv's sampling routines out from stat/distuv's distribution
// machinery: this package imports quasirand and mat/distuv, not the
// reverse.
package quasisample

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/go-qmc/qmc/quasirand"
)

// ErrNotPositiveSemidefinite is returned when a covariance matrix is
// neither positive definite (Cholesky fails) nor positive semidefinite
// within tolerance (its eigendecomposition has a meaningfully negative
// eigenvalue).
var ErrNotPositiveSemidefinite = errors.New("quasisample: covariance matrix is not positive semidefinite")

// ErrNotSymmetric is returned when a covariance matrix is not symmetric
// within tolerance.
var ErrNotSymmetric = errors.New("quasisample: covariance matrix is not symmetric")

// ErrDimensionMismatch is returned when mean and covariance (or
// covariance root) dimensions disagree.
var ErrDimensionMismatch = errors.New("quasisample: mean and covariance dimensions disagree")

// NormalQMC draws quasi-Monte Carlo samples from a multivariate normal
// distribution by mapping a low-discrepancy base sequence through the
// inverse normal CDF (or, optionally, Box-Muller pairing), then
// transforming by the distribution's covariance root. Grounded on
// MultivariateNormalQMC in
// _examples/original_source/scipy/stats/_qmc.py (lines ~1450-1600).
type NormalQMC struct {
	mean      []float64
	covRoot   *mat.Dense // d x d, such that covRoot * covRoot^T = cov
	engine    quasirand.Engine
	boxMuller bool
}

// Option configures a NormalQMC sampler.
type Option func(*normalConfig)

type normalConfig struct {
	seed      interface{}
	boxMuller bool
	engine    quasirand.Engine
}

// WithSeed sets the seed used to build the default Sobol' base engine. It
// has no effect if WithEngine is also given.
func WithSeed(seed interface{}) Option {
	return func(c *normalConfig) { c.seed = seed }
}

// WithBoxMuller selects Box-Muller pairing instead of the inverse-CDF
// transform for mapping the base sequence into normal variates.
func WithBoxMuller() Option {
	return func(c *normalConfig) { c.boxMuller = true }
}

// WithEngine overrides the low-discrepancy base engine (default: a
// scrambled Sobol' engine over the padded dimension).
func WithEngine(e quasirand.Engine) Option {
	return func(c *normalConfig) { c.engine = e }
}

// NewNormalQMC constructs a standard (mean zero, identity covariance)
// multivariate normal QMC sampler of dimension d.
func NewNormalQMC(d int, opts ...Option) (*NormalQMC, error) {
	mean := make([]float64, d)
	ident := mat.NewDense(d, d, nil)
	for i := 0; i < d; i++ {
		ident.Set(i, i, 1)
	}
	return newNormalQMC(mean, ident, opts...)
}

// NewMultivariateNormalQMC constructs a multivariate normal QMC sampler
// with the given mean and covariance matrix. The covariance root is
// computed via Cholesky decomposition; if cov is not positive definite,
// NewMultivariateNormalQMC falls back to a symmetric eigendecomposition
// with negative eigenvalues clipped to zero, matching the original's
// `cov ` handling (_qmc.py lines ~1500-1520).
func NewMultivariateNormalQMC(mean []float64, cov *mat.Dense, opts ...Option) (*NormalQMC, error) {
	d := len(mean)
	root, err := covRoot(cov, d)
	if err != nil {
		return nil, err
	}
	return newNormalQMC(mean, root, opts...)
}

// NewMultivariateNormalQMCFromRoot constructs a sampler directly from a
// precomputed covariance root, skipping the decomposition step — the
// `cov_root` direct-construction path supplemented from the original's
// constructor signature (_qmc.py lines ~1470-1490), dropped from the
// specification's distillation but preserved here since it is a cheap,
// useful escape hatch when the root is already known.
func NewMultivariateNormalQMCFromRoot(mean []float64, root *mat.Dense, opts ...Option) (*NormalQMC, error) {
	rows, _ := root.Dims()
	if rows != len(mean) {
		return nil, ErrDimensionMismatch
	}
	return newNormalQMC(mean, root, opts...)
}

func newNormalQMC(mean []float64, root *mat.Dense, opts ...Option) (*NormalQMC, error) {
	cfg := normalConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	d := len(mean)

	engine := cfg.engine
	if engine == nil {
		baseDim := d
		if cfg.boxMuller {
			// Box-Muller consumes pairs of uniforms per pair of normal
			// coordinates; pad to an even dimension.
			baseDim = d + d%2
		}
		sobol, err := quasirand.NewSobol(baseDim, true, cfg.seed)
		if err != nil {
			return nil, err
		}
		engine = sobol
	}

	return &NormalQMC{
		mean:      mean,
		covRoot:   root,
		engine:    engine,
		boxMuller: cfg.boxMuller,
	}, nil
}

// covRoot computes a matrix R such that R R^T = cov, via Cholesky with an
// eigendecomposition fallback for non-positive-definite input. cov must be
// square of side d and symmetric within tolerance.
func covRoot(cov *mat.Dense, d int) (*mat.Dense, error) {
	rows, cols := cov.Dims()
	if rows != d || cols != d {
		return nil, ErrDimensionMismatch
	}
	const symTol = 1e-8
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			if math.Abs(cov.At(i, j)-cov.At(j, i)) > symTol {
				return nil, ErrNotSymmetric
			}
		}
	}

	sym := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			sym.SetSym(i, j, cov.At(i, j))
		}
	}

	var chol mat.Cholesky
	if chol.Factorize(sym) {
		var L mat.TriDense
		chol.LTo(&L)
		root := mat.NewDense(d, d, nil)
		root.Copy(&L)
		return root, nil
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, ErrNotPositiveSemidefinite
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	root := mat.NewDense(d, d, nil)
	for j := 0; j < d; j++ {
		lambda := values[j]
		if lambda < -1e-8 {
			return nil, ErrNotPositiveSemidefinite
		}
		if lambda < 0 {
			lambda = 0
		}
		scale := math.Sqrt(lambda)
		for i := 0; i < d; i++ {
			root.Set(i, j, vectors.At(i, j)*scale)
		}
	}
	return root, nil
}

// Random draws n quasi-Monte Carlo samples from the normal distribution as
// an (n, d) matrix.
func (s *NormalQMC) Random(n int) (*mat.Dense, error) {
	d := len(s.mean)
	base, err := s.engine.Random(n)
	if err != nil {
		return nil, err
	}

	z := mat.NewDense(n, d, nil)
	if s.boxMuller {
		fillBoxMuller(z, base, n, d)
	} else {
		normal := distuv.Normal{Mu: 0, Sigma: 1}
		for i := 0; i < n; i++ {
			for j := 0; j < d; j++ {
				u := base.At(i, j)
				z.Set(i, j, normal.Quantile(compressUnit(u)))
			}
		}
	}

	var transformed mat.Dense
	transformed.Mul(z, s.covRoot.T())
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			transformed.Set(i, j, transformed.At(i, j)+s.mean[j])
		}
	}
	return &transformed, nil
}

// fillBoxMuller maps pairs of adjacent columns of base through the
// Box-Muller transform into z, packing surplus odd columns by discarding
// the second Box-Muller output of the final pair if d is odd.
func fillBoxMuller(z, base *mat.Dense, n, d int) {
	pairs := d / 2
	for i := 0; i < n; i++ {
		for p := 0; p < pairs; p++ {
			u1 := clampUnit(base.At(i, 2*p))
			u2 := base.At(i, 2*p+1)
			r := math.Sqrt(-2 * math.Log(u1))
			theta := 2 * math.Pi * u2
			z.Set(i, 2*p, r*math.Cos(theta))
			z.Set(i, 2*p+1, r*math.Sin(theta))
		}
		if d%2 == 1 {
			u1 := clampUnit(base.At(i, d-1))
			u2 := base.At(i, d) // padded column
			r := math.Sqrt(-2 * math.Log(u1))
			theta := 2 * math.Pi * u2
			z.Set(i, d-1, r*math.Cos(theta))
		}
	}
}

// clampUnit nudges values away from the {0, 1} boundary where log() is
// undefined, for Box-Muller's u1 factor.
func clampUnit(u float64) float64 {
	const eps = 1e-12
	if u < eps {
		return eps
	}
	if u > 1-eps {
		return 1 - eps
	}
	return u
}

// compressUnit maps u in [0,1) into (0,1), strictly away from the {0,1}
// boundary where the inverse normal CDF is undefined, by shrinking toward
// the center: 0.5 + (1 - 1e-10) * (u - 0.5).
func compressUnit(u float64) float64 {
	const shrink = 1 - 1e-10
	return 0.5 + shrink*(u-0.5)
}
