package app

import (
	"errors"
	"testing"

	"cloudmarch/internal/cloud"
)

func TestBuildSceneDefaults(t *testing.T) {
	cfg := NewConfig()
	scene, err := BuildScene(cfg, cfg.Seed)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(scene.Spheres); got != cfg.Spheres {
		t.Fatalf("scene has %d spheres, want %d", got, cfg.Spheres)
	}
	if scene.Bounding.Radius <= 0 {
		t.Fatalf("bounding radius %v, want > 0", scene.Bounding.Radius)
	}
	if scene.Noise.Size().W != cfg.Noise {
		t.Fatalf("noise grid width %d, want %d", scene.Noise.Size().W, cfg.Noise)
	}
}

func TestBuildSceneDeterministic(t *testing.T) {
	cfg := NewConfig()
	a, err := BuildScene(cfg, 123)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildScene(cfg, 123)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Spheres {
		if a.Spheres[i] != b.Spheres[i] {
			t.Fatalf("sphere %d differs between identical builds", i)
		}
	}
	if a.Bounding != b.Bounding {
		t.Fatalf("bounding differs: %+v vs %+v", a.Bounding, b.Bounding)
	}
}

func TestBuildSceneNoSpheres(t *testing.T) {
	cfg := NewConfig()
	cfg.Spheres = 0
	if _, err := BuildScene(cfg, 1); !errors.Is(err, cloud.ErrEmptyCloud) {
		t.Fatalf("error = %v, want ErrEmptyCloud", err)
	}
}
