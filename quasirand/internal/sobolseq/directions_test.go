package sobolseq

import "testing"

func TestDirectionsDim0(t *testing.T) {
	e, err := Directions(0)
	if err != nil {
		t.Fatal(err)
	}
	if e.Degree != 0 {
		t.Errorf("dimension 0 degree = %d, want 0", e.Degree)
	}
}

func TestDirectionsDim1(t *testing.T) {
	e, err := Directions(1)
	if err != nil {
		t.Fatal(err)
	}
	if e.Degree != 1 || len(e.M) != 1 || e.M[0] != 1 {
		t.Errorf("dimension 1 entry = %+v, want degree 1, M=[1]", e)
	}
}

func TestDirectionsOutOfRange(t *testing.T) {
	if _, err := Directions(-1); err == nil {
		t.Error("Directions(-1): want error")
	}
	if _, err := Directions(MaxDim); err == nil {
		t.Error("Directions(MaxDim): want error")
	}
}

func TestDirectionsMonotoneDegree(t *testing.T) {
	var prevDeg int
	for dim := 2; dim < 40; dim++ {
		e, err := Directions(dim)
		if err != nil {
			t.Fatal(err)
		}
		if e.Degree < 2 {
			t.Errorf("dimension %d: degree %d < 2", dim, e.Degree)
		}
		if e.Degree < prevDeg {
			t.Errorf("dimension %d: degree %d regressed from %d", dim, e.Degree, prevDeg)
		}
		prevDeg = e.Degree
		if len(e.M) != e.Degree {
			t.Errorf("dimension %d: len(M) = %d, want %d", dim, len(e.M), e.Degree)
		}
	}
}

func TestColumnDim0Identity(t *testing.T) {
	col, err := Column(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{8, 4, 2, 1}
	for i, v := range col {
		if v != want[i] {
			t.Errorf("Column(0,4)[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestColumnDim1MatchesClassicSequence(t *testing.T) {
	// Dimension 1's classical direction numbers (m = 1,3,5,15,...) give
	// V_k = m_k << (B-k); with B=4 that's 8,12,10,15.
	col, err := Column(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{8, 12, 10, 15}
	for i, v := range col {
		if v != want[i] {
			t.Errorf("Column(1,4)[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestIsPrimitiveRejectsReducible(t *testing.T) {
	// x^2 + 1 = (x+1)^2 over GF(2), not primitive.
	if isPrimitive(2, 0) {
		t.Error("isPrimitive(2, mid=0) reported primitive for x^2+1, which is reducible")
	}
}

func TestIsPrimitiveAcceptsKnownPrimitive(t *testing.T) {
	// x^2 + x + 1 is the unique primitive polynomial of degree 2.
	if !isPrimitive(2, 1) {
		t.Error("isPrimitive(2, mid=1) should accept x^2+x+1")
	}
}

func TestPolyPowModIdentity(t *testing.T) {
	// x^3 mod (x^2+x+1) should reduce via x^2 = x+1.
	p := fullPoly(2, 1)
	got := polyPowMod(poly(2), 3, p)
	if got != 1 {
		t.Errorf("x^3 mod (x^2+x+1) = %v, want 1 (order-3 element)", got)
	}
}

func TestPrimeFactors(t *testing.T) {
	got := primeFactors(28) // 2^2 * 7
	want := map[uint64]bool{2: true, 7: true}
	if len(got) != 2 {
		t.Fatalf("primeFactors(28) = %v, want 2 distinct factors", got)
	}
	for _, f := range got {
		if !want[f] {
			t.Errorf("primeFactors(28) included unexpected factor %d", f)
		}
	}
}
