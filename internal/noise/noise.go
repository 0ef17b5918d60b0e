// Package noise synthesizes tileable 2D gradient noise grids used to perturb
// cloud density.
package noise

import (
	"math"

	"cloudmarch/internal/core"
)

// Frequency is the number of noise cycles across a generated grid.
const Frequency = 8.0

// Table holds a seeded permutation used for gradient hashing. Each table is an
// independent value; grids built from different tables never share state.
type Table struct {
	p [512]int
}

// NewTable builds a permutation table from the seed. The 256 base values are
// shuffled with a seed-deterministic Fisher-Yates pass and duplicated so corner
// lookups never need an index wrap.
func NewTable(seed int64) *Table {
	var perm [256]int
	for i := range perm {
		perm[i] = i
	}
	rng := core.NewRNG(seed).Source()
	for i := 255; i > 0; i-- {
		j := rng.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	t := &Table{}
	for i, v := range perm {
		t.p[i] = v
		t.p[i+256] = v
	}
	return t
}

// fade is Perlin's quintic interpolant 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad maps the low 3 bits of a hash to one of 8 axis-aligned or diagonal
// gradients and returns its dot product with (x, y).
func grad(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// At evaluates 2D gradient noise at (x, y). The result is nominally in [-1, 1]
// but not hard-bounded.
func (t *Table) At(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	x -= math.Floor(x)
	y -= math.Floor(y)
	u := fade(x)
	v := fade(y)

	a := t.p[xi] + yi
	b := t.p[xi+1] + yi
	return lerp(v,
		lerp(u, grad(t.p[a], x, y), grad(t.p[b], x-1, y)),
		lerp(u, grad(t.p[a+1], x, y-1), grad(t.p[b+1], x-1, y-1)))
}

// Grid is an immutable, tileable field of quantized noise samples.
type Grid struct {
	cells *core.ByteGrid
}

// Generate builds a w*h noise grid from the seed. Identical arguments yield
// byte-identical grids. Non-positive dimensions yield an empty grid.
func Generate(w, h int, seed int64) Grid {
	g := Grid{cells: core.NewByteGrid(w, h)}
	if g.cells.Empty() {
		return g
	}
	table := NewTable(seed)
	data := g.cells.Cells()
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			x := float64(i) / float64(w)
			y := float64(j) / float64(h)
			v := table.At(x*Frequency, y*Frequency)
			v = (v + 1) / 2
			v = math.Min(math.Max(v, 0), 1)
			data[g.cells.Index(i, j)] = uint8(v * 255)
		}
	}
	return g
}

// Size returns the grid dimensions.
func (g Grid) Size() core.Size {
	if g.cells == nil {
		return core.Size{}
	}
	return core.Size{W: g.cells.W, H: g.cells.H}
}

// Bytes exposes the raw quantized samples in row-major order.
func (g Grid) Bytes() []uint8 {
	if g.cells == nil {
		return nil
	}
	return g.cells.Cells()
}

// Sample looks up the grid at normalized coordinates, wrapping them into
// [0, 1) so the field tiles. The stored byte is returned as a value in [0, 1].
// An empty grid samples as 0.
func (g Grid) Sample(u, v float64) float64 {
	if g.cells == nil || g.cells.Empty() {
		return 0
	}
	u -= math.Floor(u)
	v -= math.Floor(v)
	x, y := g.cells.Wrap(int(u*float64(g.cells.W)), int(v*float64(g.cells.H)))
	return float64(g.cells.Cells()[g.cells.Index(x, y)]) / 255
}
