package core

// ByteGrid stores a 2D grid of byte-sized samples in row-major order.
// Zero-area grids are legal; callers must treat them as holding no samples.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive
// dimensions yield an empty grid.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 || h <= 0 {
		return &ByteGrid{}
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Empty reports whether the grid holds no samples.
func (g *ByteGrid) Empty() bool { return g.W == 0 || g.H == 0 }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
