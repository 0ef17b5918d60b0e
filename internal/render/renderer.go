//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"cloudmarch/internal/core"
	"cloudmarch/internal/march"
)

// FramePainter updates a single RGBA image from a rendered frame.
type FramePainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for frames of the given size.
func NewFramePainter(size core.Size) *FramePainter {
	return &FramePainter{
		size: size,
		img:  ebiten.NewImage(size.W, size.H),
		buf:  make([]byte, 4*size.W*size.H),
	}
}

// Blit uploads the frame into the painter image and draws it scaled.
func (fp *FramePainter) Blit(dst *ebiten.Image, frame []march.Color, scale int) {
	if len(frame) != fp.size.W*fp.size.H {
		return
	}
	FillRGBA(fp.buf, frame)
	fp.img.ReplacePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() core.Size { return fp.size }
