// Command cloudshot renders cloud stills to PNG without a window. With
// -sweep it renders a batch of seeds in parallel, which is handy for picking
// a good-looking cloud before launching the GUI.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"cloudmarch/internal/app"
	"cloudmarch/internal/core"
	"cloudmarch/internal/march"
	"cloudmarch/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	at := flag.Float64("t", 0, "render time in seconds")
	out := flag.String("o", "cloud.png", "output PNG path")
	sweep := flag.Int("sweep", 1, "number of consecutive seeds to render")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel renders in sweep mode")
	flag.Parse()

	if *sweep <= 1 {
		if err := renderOne(cfg, cfg.Seed, *at, *out); err != nil {
			log.Fatal(err)
		}
		return
	}

	seeds := make(chan int64, *sweep)
	for i := 0; i < *sweep; i++ {
		seeds <- cfg.Seed + int64(i)
	}
	close(seeds)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failed []error
	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seeds {
				if err := renderOne(cfg, seed, *at, seedPath(*out, seed)); err != nil {
					mu.Lock()
					failed = append(failed, err)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range failed {
		fmt.Fprintln(os.Stderr, err)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}
}

func renderOne(cfg *app.Config, seed int64, at float64, path string) error {
	scene, err := app.BuildScene(cfg, seed)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	w, h := cfg.RenderSize()
	size := core.Size{W: w, H: h}
	frame := make([]march.Color, w*h)
	scene.Render(frame, size, at)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, render.ToImage(frame, size)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// seedPath inserts the seed before the extension: cloud.png -> cloud-42.png.
func seedPath(path string, seed int64) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%d%s", base, seed, ext)
}
