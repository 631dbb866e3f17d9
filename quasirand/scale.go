package quasirand

import "gonum.org/v1/gonum/mat"

// Scale maps sample (an (n, d) matrix with entries in [0, 1]) into the
// hyperrectangle described by bounds (a (2, d) matrix, row 0 the lower
// bounds, row 1 the upper bounds), or performs the inverse mapping when
// reverse is true. Grounded on scale() in
// _examples/original_source/scipy/stats/_qmc.py (lines ~650-700).
func Scale(sample, bounds *mat.Dense, reverse bool) *mat.Dense {
	n, d := sample.Dims()
	out := mat.NewDense(n, d, nil)
	for k := 0; k < d; k++ {
		lo := bounds.At(0, k)
		hi := bounds.At(1, k)
		width := hi - lo
		for i := 0; i < n; i++ {
			if reverse {
				out.Set(i, k, (sample.At(i, k)-lo)/width)
			} else {
				out.Set(i, k, lo+sample.At(i, k)*width)
			}
		}
	}
	return out
}
