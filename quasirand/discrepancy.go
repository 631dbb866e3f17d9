package quasirand

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Discrepancy methods recognized by Discrepancy. UpdateDiscrepancy and
// PerturbDiscrepancy take no method and always work with MethodCD.
const (
	MethodCD   = "CD"   // centered discrepancy
	MethodWD   = "WD"   // wrap-around discrepancy
	MethodMD   = "MD"   // mixture discrepancy
	MethodStar = "star" // star L2 discrepancy
)

// Discrepancy computes the L2 discrepancy of sample (an (n, d) matrix with
// entries in [0, 1]) under the named method. When iterative is true, the
// sums over the n rows of sample are normalized by n+1 instead of n, giving
// the initialDisc that UpdateDiscrepancy expects, matching the `iterative`
// flag in
// _examples/original_source/scipy/stats/_qmc.py's discrepancy() (lines
// 106-260), whose formulas are translated verbatim below. Note that only
// the star method's result is a square root; CD, WD and MD are already
// squared L2 discrepancies in the original and are returned as such here.
func Discrepancy(sample *mat.Dense, iterative bool, method string) (float64, error) {
	n, d := sample.Dims()
	if n == 0 {
		return 0, nil
	}
	nFloat := float64(n)
	if iterative {
		nFloat++
	}

	switch method {
	case MethodCD:
		return centeredDiscrepancy(sample, n, d, nFloat), nil
	case MethodWD:
		return wraparoundDiscrepancy(sample, n, d, nFloat), nil
	case MethodMD:
		return mixtureDiscrepancy(sample, n, d, nFloat), nil
	case MethodStar:
		return starDiscrepancy(sample, n, d, nFloat), nil
	default:
		return 0, ErrUnknownMethod
	}
}

func centeredDiscrepancy(sample *mat.Dense, n, d int, nFloat float64) float64 {
	abs := math.Abs
	term1 := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for k := 0; k < d; k++ {
			x := sample.At(i, k) - 0.5
			prod *= 1 + 0.5*abs(x) - 0.5*x*x
		}
		term1 += prod
	}
	term1 *= 2 / nFloat

	term2 := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := 1.0
			for k := 0; k < d; k++ {
				xi := sample.At(i, k) - 0.5
				xj := sample.At(j, k) - 0.5
				prod *= 1 + 0.5*abs(xi) + 0.5*abs(xj) - 0.5*abs(xi-xj)
			}
			term2 += prod
		}
	}
	term2 /= nFloat * nFloat

	disc1 := math.Pow(13.0/12.0, float64(d))
	return disc1 - term1 + term2
}

func wraparoundDiscrepancy(sample *mat.Dense, n, d int, nFloat float64) float64 {
	abs := math.Abs
	term1 := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := 1.0
			for k := 0; k < d; k++ {
				x := abs(sample.At(i, k) - sample.At(j, k))
				prod *= 1.5 - x*(1-x)
			}
			term1 += prod
		}
	}
	term1 /= nFloat * nFloat

	disc1 := math.Pow(4.0/3.0, float64(d))
	return -disc1 + term1
}

func mixtureDiscrepancy(sample *mat.Dense, n, d int, nFloat float64) float64 {
	abs := math.Abs
	term1 := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for k := 0; k < d; k++ {
			x := sample.At(i, k)
			prod *= 5.0/3.0 - 0.25*abs(x-0.5) - 0.25*(x-0.5)*(x-0.5)
		}
		term1 += prod
	}
	term1 *= 2 / nFloat

	term2 := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := 1.0
			for k := 0; k < d; k++ {
				xi := sample.At(i, k)
				xj := sample.At(j, k)
				dist := abs(xi - xj)
				prod *= 15.0/8.0 - 0.25*abs(xi-0.5) - 0.25*abs(xj-0.5) - 0.75*dist + 0.5*dist*dist
			}
			term2 += prod
		}
	}
	term2 /= nFloat * nFloat

	disc1 := math.Pow(19.0/12.0, float64(d))
	return disc1 - term1 + term2
}

func starDiscrepancy(sample *mat.Dense, n, d int, nFloat float64) float64 {
	term1 := 1.0 / math.Pow(3.0, float64(d))

	term2 := 0.0
	for i := 0; i < n; i++ {
		prod := 1.0
		for k := 0; k < d; k++ {
			prod *= 1 - sample.At(i, k)*sample.At(i, k)
		}
		term2 += prod
	}
	term2 *= math.Pow(2, 1-float64(d)) / nFloat

	term3 := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			prod := 1.0
			for k := 0; k < d; k++ {
				prod *= 1 - math.Max(sample.At(i, k), sample.At(j, k))
			}
			term3 += prod
		}
	}
	term3 /= nFloat * nFloat

	return math.Sqrt(term1 - term2 + term3)
}

// UpdateDiscrepancy returns the centered discrepancy of sample with xNew
// appended, computed incrementally from initialDisc (the centered
// discrepancy of sample alone, computed by Discrepancy with iterative set to
// true) rather than by recomputing from scratch. Grounded on
// _update_discrepancy in
// _examples/original_source/scipy/stats/_qmc.py (lines 262-308).
func UpdateDiscrepancy(xNew []float64, sample *mat.Dense, initialDisc float64) float64 {
	oldN, d := sample.Dims()
	nFloat := float64(oldN + 1)
	abs := math.Abs

	absXNew := make([]float64, d)
	for k := range absXNew {
		absXNew[k] = abs(xNew[k] - 0.5)
	}

	disc1 := -2.0 / nFloat
	prod := 1.0
	for k := 0; k < d; k++ {
		a := absXNew[k]
		prod *= 1 + 0.5*a - 0.5*a*a
	}
	disc1 *= prod

	disc2 := 0.0
	for i := 0; i < oldN; i++ {
		p := 1.0
		for k := 0; k < d; k++ {
			p *= 1 + 0.5*absXNew[k] + 0.5*abs(sample.At(i, k)-0.5) - 0.5*abs(xNew[k]-sample.At(i, k))
		}
		disc2 += p
	}
	disc2 *= 2.0 / (nFloat * nFloat)

	disc3 := 1.0
	for k := 0; k < d; k++ {
		disc3 *= 1 + absXNew[k]
	}
	disc3 /= nFloat * nFloat

	return initialDisc + disc1 + disc2 + disc3
}

// PerturbDiscrepancy returns the centered discrepancy of sample after
// swapping coordinate k between rows i1 and i2, computed incrementally from
// disc (the centered discrepancy of sample before the swap), via the Jin et
// al. (2005) elementary-perturbation formula translated from
// _perturb_discrepancy in
// _examples/original_source/scipy/stats/_qmc.py (lines 311-398).
func PerturbDiscrepancy(sample *mat.Dense, i1, i2, k int, disc float64) float64 {
	n, d := sample.Dims()
	nFloat := float64(n)
	abs := math.Abs

	z := func(i, j int) float64 { return sample.At(i, j) - 0.5 }

	cAgainst := func(fixed, row int) float64 {
		p := 1.0
		for j := 0; j < d; j++ {
			p *= 0.5 * (2 + abs(z(fixed, j)) + abs(z(row, j)) - abs(z(fixed, j)-z(row, j)))
		}
		return p / (nFloat * nFloat)
	}

	selfTerm := func(row int) float64 {
		g := 1.0
		h := 1.0
		for j := 0; j < d; j++ {
			g *= 1 + abs(z(row, j))
			h *= 1 + 0.5*abs(z(row, j)) - 0.5*z(row, j)*z(row, j)
		}
		return g/(nFloat*nFloat) - 2*h/nFloat
	}

	cI1I1 := selfTerm(i1)
	cI2I2 := selfTerm(i2)

	alpha := (1 + abs(z(i2, k))) / (1 + abs(z(i1, k)))
	beta := (2 - abs(z(i2, k))) / (2 - abs(z(i1, k)))

	gI1, gI2, hI1, hI2 := 1.0, 1.0, 1.0, 1.0
	for j := 0; j < d; j++ {
		gI1 *= 1 + abs(z(i1, j))
		gI2 *= 1 + abs(z(i2, j))
		hI1 *= 1 + 0.5*abs(z(i1, j)) - 0.5*z(i1, j)*z(i1, j)
		hI2 *= 1 + 0.5*abs(z(i2, j)) - 0.5*z(i2, j)*z(i2, j)
	}

	cPI1I1 := gI1*alpha/(nFloat*nFloat) - 2*alpha*beta*hI1/nFloat
	cPI2I2 := gI2/(nFloat*nFloat*alpha) - 2*hI2/(nFloat*alpha*beta)

	sum := 0.0
	for row := 0; row < n; row++ {
		if row == i1 || row == i2 {
			continue
		}
		rowNum := 2 + abs(z(i2, k)) + abs(z(row, k)) - abs(z(i2, k)-z(row, k))
		rowDenum := 2 + abs(z(i1, k)) + abs(z(row, k)) - abs(z(i1, k)-z(row, k))
		gamma := rowNum / rowDenum

		cI1Row := cAgainst(i1, row)
		cI2Row := cAgainst(i2, row)
		cPI1Row := gamma * cI1Row
		cPI2Row := cI2Row / gamma

		sum += (cPI1Row - cI1Row) + (cPI2Row - cI2Row)
	}

	return disc + (cPI1I1 - cI1I1) + (cPI2I2 - cI2I2) + 2*sum
}
