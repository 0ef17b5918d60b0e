package app

import (
	"cloudmarch/internal/cloud"
	"cloudmarch/internal/march"
	"cloudmarch/internal/noise"
)

// BuildScene generates the cloud volumes for a seed and freezes them into a
// renderable scene. Generation runs once per seed; frames only read the result.
func BuildScene(cfg *Config, seed int64) (*march.Scene, error) {
	c := cloud.DefaultConfig()
	c.Seed = seed
	c.Count = cfg.Spheres
	c.BoxSize = cfg.BoxSize

	spheres := cloud.Generate(c)
	bounding, err := cloud.Bound(spheres)
	if err != nil {
		return nil, err
	}
	grid := noise.Generate(cfg.Noise, cfg.Noise, seed)
	return march.NewScene(spheres, bounding, grid)
}
