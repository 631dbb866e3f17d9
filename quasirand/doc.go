// Package quasirand provides quasi-Monte Carlo sequence generators and the
// uniformity metrics used to evaluate and optimize low-discrepancy point
// sets in the half-open unit hypercube [0,1)^d.
//
// The package implements the Sobol' sequence with Owen-style linear-matrix
// scrambling, the Halton sequence built on scrambled van der Corput streams,
// Latin hypercube sampling in both its plain and orthogonal-array forms, the
// centered/wrap-around/mixture/star L2 discrepancy measures and their
// incremental and swap-based update formulas, and an optimal-design search
// that perturbs a Latin hypercube to minimize centered discrepancy.
//
// Every engine produces points as *mat.Dense sample blocks with entries in
// [0, 1); callers combine them with Scale to map onto an arbitrary bounding
// box. Derived samplers built on top of a base engine (multivariate Normal
// and multinomial QMC) live in the quasisample subpackage.
package quasirand
