//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a small status readout in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles HUD visibility on the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status lines when the HUD is visible.
func (h *HUD) Draw(dst *ebiten.Image, st Status) {
	if !h.visible {
		return
	}
	lines := []string{
		fmt.Sprintf("fps %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("seed %d  spheres %d", st.Seed, st.Spheres),
		fmt.Sprintf("t %.1fs", st.Time),
	}
	if st.Paused {
		lines = append(lines, "paused")
	}
	face := basicfont.Face7x13
	y := 14
	for _, line := range lines {
		text.Draw(dst, line, face, 6, y, color.White)
		y += 14
	}
}
