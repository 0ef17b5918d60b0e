package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Spheres int
	BoxSize float64
	Noise   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:   800,
		Height:  600,
		Scale:   2,
		TPS:     60,
		Seed:    42,
		Spheres: 20,
		BoxSize: 10,
		Noise:   256,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "render downscale factor (1 = full resolution)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for cloud and noise generation")
	fs.IntVar(&c.Spheres, "spheres", c.Spheres, "number of cloud spheres (max 64)")
	fs.Float64Var(&c.BoxSize, "box", c.BoxSize, "bounding cube size for cloud generation")
	fs.IntVar(&c.Noise, "noise", c.Noise, "noise grid resolution")
}

// RenderSize returns the internal render resolution after downscaling.
func (c *Config) RenderSize() (int, int) {
	scale := c.Scale
	if scale < 1 {
		scale = 1
	}
	w := c.Width / scale
	h := c.Height / scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
