package quasisample

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNormalQMCStandardMoments(t *testing.T) {
	s, err := NewNormalQMC(2, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := s.Random(256)
	if err != nil {
		t.Fatal(err)
	}
	n, d := pts.Dims()
	for j := 0; j < d; j++ {
		mean := 0.0
		for i := 0; i < n; i++ {
			mean += pts.At(i, j)
		}
		mean /= float64(n)
		if math.Abs(mean) > 0.25 {
			t.Errorf("column %d mean = %v, want near 0", j, mean)
		}
	}
}

func TestMultivariateNormalQMCAppliesCovariance(t *testing.T) {
	mean := []float64{5, -5}
	cov := mat.NewDense(2, 2, []float64{4, 0, 0, 9})
	s, err := NewMultivariateNormalQMC(mean, cov, WithSeed(2))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := s.Random(128)
	if err != nil {
		t.Fatal(err)
	}
	n, _ := pts.Dims()
	m0, m1 := 0.0, 0.0
	for i := 0; i < n; i++ {
		m0 += pts.At(i, 0)
		m1 += pts.At(i, 1)
	}
	m0 /= float64(n)
	m1 /= float64(n)
	if math.Abs(m0-5) > 1 {
		t.Errorf("mean[0] = %v, want near 5", m0)
	}
	if math.Abs(m1+5) > 1.5 {
		t.Errorf("mean[1] = %v, want near -5", m1)
	}
}

func TestMultivariateNormalQMCFromRoot(t *testing.T) {
	mean := []float64{0, 0}
	root := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	s, err := NewMultivariateNormalQMCFromRoot(mean, root, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	pts, err := s.Random(10)
	if err != nil {
		t.Fatal(err)
	}
	n, d := pts.Dims()
	if n != 10 || d != 2 {
		t.Errorf("dims = (%d,%d), want (10,2)", n, d)
	}
}

func TestMultivariateNormalQMCRejectsAsymmetricCovariance(t *testing.T) {
	mean := []float64{0, 0}
	cov := mat.NewDense(2, 2, []float64{1, 0.5, 0.2, 1})
	if _, err := NewMultivariateNormalQMC(mean, cov, WithSeed(5)); err != ErrNotSymmetric {
		t.Errorf("got %v, want ErrNotSymmetric", err)
	}
}

func TestMultivariateNormalQMCRejectsDimensionMismatch(t *testing.T) {
	mean := []float64{0, 0, 0}
	cov := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	if _, err := NewMultivariateNormalQMC(mean, cov, WithSeed(6)); err != ErrDimensionMismatch {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestMultivariateNormalQMCFromRootRejectsDimensionMismatch(t *testing.T) {
	mean := []float64{0, 0, 0}
	root := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	if _, err := NewMultivariateNormalQMCFromRoot(mean, root, WithSeed(7)); err != ErrDimensionMismatch {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestNormalQMCBoxMullerOddDimension(t *testing.T) {
	s, err := NewNormalQMC(3, WithSeed(4), WithBoxMuller())
	if err != nil {
		t.Fatal(err)
	}
	pts, err := s.Random(16)
	if err != nil {
		t.Fatal(err)
	}
	n, d := pts.Dims()
	if n != 16 || d != 3 {
		t.Errorf("dims = (%d,%d), want (16,3)", n, d)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			v := pts.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("point (%d,%d) is %v", i, j, v)
			}
		}
	}
}
