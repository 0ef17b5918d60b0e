//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cloudmarch/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.BuildScene(cfg, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg, scene)

	ebiten.SetWindowTitle("cloudmarch")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
