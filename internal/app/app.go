//go:build ebiten

package app

import (
	"time"

	"cloudmarch/internal/core"
	"cloudmarch/internal/march"
	"cloudmarch/internal/render"
	"cloudmarch/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a cloud scene to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	scene   *march.Scene
	frame   []march.Color
	painter *render.FramePainter
	hud     *ui.HUD
	clock   *core.Clock

	size  core.Size
	scale int
	seed  int64
	now   float64
}

// New constructs a Game around an already-built scene.
func New(cfg *Config, scene *march.Scene) *Game {
	w, h := cfg.RenderSize()
	size := core.Size{W: w, H: h}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}
	return &Game{
		cfg:     cfg,
		scene:   scene,
		frame:   make([]march.Color, w*h),
		painter: render.NewFramePainter(size),
		hud:     ui.NewHUD(),
		clock:   core.NewClock(cfg.TPS),
		size:    size,
		scale:   scale,
		seed:    cfg.Seed,
	}
}

// Reset regenerates the cloud volumes with the provided seed. The swap happens
// between frames, so no per-pixel evaluation ever observes a half-built scene.
func (g *Game) Reset(seed int64) error {
	scene, err := BuildScene(g.cfg, seed)
	if err != nil {
		return err
	}
	g.seed = seed
	g.scene = scene
	g.clock.Reset()
	return nil
}

// Update handles per-frame input and advances the render clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.clock.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	g.hud.Update()
	g.now = g.clock.Tick()
	return nil
}

// Draw renders the current frame and blits it to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Render(g.frame, g.size, g.now)
	g.painter.Blit(screen, g.frame, g.scale)
	g.hud.Draw(screen, ui.Status{
		Seed:    g.seed,
		Time:    g.now,
		Spheres: len(g.scene.Spheres),
		Paused:  g.clock.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W * g.scale, g.size.H * g.scale
}
