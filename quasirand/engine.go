package quasirand

import "gonum.org/v1/gonum/mat"

// Engine is the capability contract shared by every quasi-Monte Carlo
// sampler in this package: a fixed dimension, an ordered cursor, and the
// ability to draw, skip, and rewind. It replaces the abstract base class of
// the original QMCEngine (see
// _examples/original_source/scipy/stats/_qmc.py:527) with a plain interface;
// each concrete engine embeds a base struct for the cursor instead of
// inheriting from a common ancestor.
type Engine interface {
	// Dims returns d, the dimension of the sampled space.
	Dims() int

	// Random draws the next n points as an (n, d) sample block with entries
	// in [0, 1). The k-th call returns the points at cursor positions
	// [prev, prev+n) for prev the cursor position before the call.
	Random(n int) (*mat.Dense, error)

	// Reset sets the cursor back to zero. It does not re-draw any
	// scrambling randomness. Sobol and Halton then replay their sequence
	// from the start; LatinHypercube, OrthogonalLatinHypercube and
	// OptimalDesign do not rewind their random generator, so their draws
	// after Reset differ from those after construction.
	Reset()

	// FastForward advances the cursor by n positions without materializing
	// the skipped points. For Sobol and Halton, FastForward(n) followed by
	// Random(m) yields the same m points as Random(n+m) with the first n
	// discarded; for the Latin hypercube engines and OptimalDesign it only
	// moves the cursor and does not affect later draws.
	FastForward(n int) error
}

// base holds the cursor shared by every engine in this package (spec
// component I, the engine base contract).
type base struct {
	d            int
	numGenerated int
}

func (b *base) Dims() int { return b.d }
