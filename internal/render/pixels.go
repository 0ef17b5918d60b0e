package render

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"cloudmarch/internal/core"
	"cloudmarch/internal/march"
)

// FillRGBA packs a linear-color frame into buf as 8-bit RGBA. Components are
// clamped into [0,1]; accumulation can push scattered light above 1.
func FillRGBA(buf []byte, frame []march.Color) {
	for i, c := range frame {
		col := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
		r, g, b := col.RGB255()
		base := i * 4
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xff
	}
}

// ToImage converts a frame into a standard image, used by the offline
// renderer to write stills.
func ToImage(frame []march.Color, size core.Size) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	FillRGBA(img.Pix, frame)
	return img
}
