package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{4, 3, 0, 0},
		{-1, -1, 3, 2},
		{9, 7, 1, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestByteGridEmpty(t *testing.T) {
	g := NewByteGrid(0, 5)
	if !g.Empty() {
		t.Fatal("zero-width grid should be empty")
	}
	if len(g.Cells()) != 0 {
		t.Fatalf("empty grid has %d cells", len(g.Cells()))
	}
}
