package noise

import (
	"bytes"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(32, 32, 1234)
	b := Generate(32, 32, 1234)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("identical seeds produced different grids")
	}
}

func TestGenerateSeedsDiverge(t *testing.T) {
	// Sizes that are exact multiples of the frequency sample only lattice
	// points, where gradient noise vanishes for every seed; 32x32 puts three
	// of every four samples between lattice points.
	a := Generate(32, 32, 1)
	b := Generate(32, 32, 2)
	if bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestLatticeAlignedGridIsFlat(t *testing.T) {
	// 8 cycles across 8 samples: every sample sits on a lattice point, so the
	// whole grid quantizes to the midpoint byte.
	g := Generate(8, 8, 3)
	for i, b := range g.Bytes() {
		if b != 127 {
			t.Fatalf("sample %d = %d, want 127 on a lattice-aligned grid", i, b)
		}
	}
}

func TestGenerateFlatSingleSample(t *testing.T) {
	// A 1x1 grid samples the lattice point itself: zero fractional offsets make
	// every gradient dot product vanish, so the value maps to (0+1)/2 -> 127.
	for _, seed := range []int64{0, 1, 42, 1337} {
		g := Generate(1, 1, seed)
		if got := g.Bytes()[0]; got != 127 {
			t.Fatalf("seed %d: 1x1 grid sample = %d, want 127", seed, got)
		}
	}
}

func TestGenerateEmptyDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, -1}} {
		g := Generate(dims[0], dims[1], 9)
		if len(g.Bytes()) != 0 {
			t.Fatalf("dims %v: expected empty grid, got %d samples", dims, len(g.Bytes()))
		}
		if v := g.Sample(0.3, 0.7); v != 0 {
			t.Fatalf("dims %v: empty grid sampled as %v, want 0", dims, v)
		}
	}
}

func TestSampleRange(t *testing.T) {
	g := Generate(16, 16, 5)
	for _, uv := range [][2]float64{{0, 0}, {0.5, 0.25}, {0.999, 0.999}} {
		v := g.Sample(uv[0], uv[1])
		if v < 0 || v > 1 {
			t.Fatalf("Sample(%v,%v) = %v out of [0,1]", uv[0], uv[1], v)
		}
	}
}

func TestSampleTiles(t *testing.T) {
	g := Generate(16, 16, 5)
	base := g.Sample(0.25, 0.75)
	for _, off := range []float64{1, -1, 3, -2} {
		if got := g.Sample(0.25+off, 0.75+off); got != base {
			t.Fatalf("sample offset by %v gave %v, want %v", off, got, base)
		}
	}
}

func TestTableIndependence(t *testing.T) {
	// Two tables with different seeds must coexist without shared state.
	a := NewTable(1)
	b := NewTable(2)
	av := a.At(3.7, 5.1)
	b.At(9.2, 0.4)
	if got := a.At(3.7, 5.1); got != av {
		t.Fatalf("table A changed after using table B: %v != %v", got, av)
	}
	if bv := b.At(3.7, 5.1); bv == av {
		t.Fatalf("different seeds agreed at a generic point: %v", bv)
	}
}

func TestGridHasVariation(t *testing.T) {
	g := Generate(64, 64, 77)
	data := g.Bytes()
	if n := len(data); n != 64*64 {
		t.Fatalf("grid holds %d samples, want %d", n, 64*64)
	}
	first := data[0]
	for _, b := range data {
		if b != first {
			return
		}
	}
	t.Fatal("64x64 grid is completely flat")
}
