package quasirand

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestHaltonUnscrambledFirstColumnIsBase2VanDerCorput(t *testing.T) {
	h, err := NewHalton(2, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := h.Random(5)
	if err != nil {
		t.Fatal(err)
	}
	vdc, err := VanDerCorput(5, 2, 0, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if !scalar.EqualWithinAbsOrRel(pts.At(i, 0), vdc[i], 1e-9, 1e-9) {
			t.Errorf("Halton column 0 row %d = %v, want %v", i, pts.At(i, 0), vdc[i])
		}
	}
}

func TestHaltonContinuesAcrossCalls(t *testing.T) {
	h, err := NewHalton(1, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	first, err := h.Random(3)
	if err != nil {
		t.Fatal(err)
	}
	second, err := h.Random(2)
	if err != nil {
		t.Fatal(err)
	}
	whole, err := VanDerCorput(5, 2, 0, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if !scalar.EqualWithinAbsOrRel(first.At(i, 0), whole[i], 1e-9, 1e-9) {
			t.Errorf("first block row %d = %v, want %v", i, first.At(i, 0), whole[i])
		}
	}
	for i := 0; i < 2; i++ {
		if !scalar.EqualWithinAbsOrRel(second.At(i, 0), whole[3+i], 1e-9, 1e-9) {
			t.Errorf("second block row %d = %v, want %v", i, second.At(i, 0), whole[3+i])
		}
	}
}

func TestHaltonResetRewindsCursor(t *testing.T) {
	h, err := NewHalton(1, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	first, err := h.Random(4)
	if err != nil {
		t.Fatal(err)
	}
	h.Reset()
	second, err := h.Random(4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if first.At(i, 0) != second.At(i, 0) {
			t.Errorf("Reset did not rewind at row %d", i)
		}
	}
}

func TestHaltonScrambleReproducible(t *testing.T) {
	a, err := NewHalton(2, true, 99)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewHalton(2, true, 99)
	if err != nil {
		t.Fatal(err)
	}
	pa, err := a.Random(4)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := b.Random(4)
	if err != nil {
		t.Fatal(err)
	}
	n, d := pa.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			if pa.At(i, j) != pb.At(i, j) {
				t.Errorf("scrambled Halton not reproducible at (%d,%d)", i, j)
			}
		}
	}
}
