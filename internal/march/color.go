package march

// Color is a linear RGB triple. Components may exceed 1 during accumulation;
// clamping happens only when a frame is packed for display.
type Color struct {
	R, G, B float64
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Lerp blends t of o into c.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}
