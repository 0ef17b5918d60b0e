package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(1337)
	b := NewRNG(1337)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged for identical seeds", i)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Range(2,5) = %v out of bounds", v)
		}
	}
}

func TestGammaPositive(t *testing.T) {
	r := NewRNG(42)
	for _, shape := range []float64{0.5, 1, 2, 5} {
		for i := 0; i < 500; i++ {
			if v := r.Gamma(shape); v <= 0 {
				t.Fatalf("Gamma(%v) = %v, want > 0", shape, v)
			}
		}
	}
}

func TestGammaNonPositiveShape(t *testing.T) {
	r := NewRNG(42)
	if v := r.Gamma(0); v != 0 {
		t.Fatalf("Gamma(0) = %v, want 0", v)
	}
}

func TestBetaInUnitInterval(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		v := r.Beta(2, 5)
		if v <= 0 || v >= 1 {
			t.Fatalf("Beta(2,5) = %v, want in (0,1)", v)
		}
	}
}

func TestBetaSkew(t *testing.T) {
	// Beta(2,5) has mean 2/7; the sample mean should land well below 0.5.
	r := NewRNG(3)
	sum := 0.0
	const n = 5000
	for i := 0; i < n; i++ {
		sum += r.Beta(2, 5)
	}
	mean := sum / n
	if mean < 0.2 || mean > 0.37 {
		t.Fatalf("Beta(2,5) sample mean = %v, want near 2/7", mean)
	}
}
