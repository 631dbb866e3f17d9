package quasirand

import "errors"

// Errors returned by the engines and free functions in this package. They
// follow gonum's convention of package-level sentinel errors (see
// gonum.org/v1/gonum's top-level errors.go) rather than a wrapped-error
// hierarchy.
var (
	// ErrBadSeed is returned when a seed argument is neither nil, an
	// integer, nor an existing generator.
	ErrBadSeed = errors.New("quasirand: seed must be nil, an integer, or an existing generator")

	// ErrDimensionTooLarge is returned when a requested dimension exceeds
	// MaxDim.
	ErrDimensionTooLarge = errors.New("quasirand: dimension exceeds MaxDim")

	// ErrNegativeDimension is returned when a requested dimension is negative.
	ErrNegativeDimension = errors.New("quasirand: dimension must be non-negative")

	// ErrUnknownMethod is returned by Discrepancy for an unrecognized method.
	ErrUnknownMethod = errors.New("quasirand: unknown discrepancy method")

	// ErrBalance is returned by Sobol.RandomBase2 when the requested draw
	// would break the power-of-two balance invariant.
	ErrBalance = errors.New("quasirand: draw would break the Sobol' power-of-two balance invariant")

	// ErrNegativeCount is returned when a requested sample count is negative.
	ErrNegativeCount = errors.New("quasirand: n must be non-negative")

	// ErrInvalidBase is returned when a van der Corput base is less than 2.
	ErrInvalidBase = errors.New("quasirand: base must be at least 2")
)
