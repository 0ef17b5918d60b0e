// Package cloud builds the set of overlapping spheres that approximates a
// cumulus silhouette inside a bounding cube.
package cloud

import (
	"math"
	"strconv"

	"cloudmarch/internal/core"
	"cloudmarch/pkg/geom"
)

// MaxSpheres is the hard cap the renderer contract allows per cloud set.
const MaxSpheres = 64

// Sphere is an immutable center/radius pair.
type Sphere struct {
	Center geom.Vec3
	Radius float64
}

// Params holds the distribution tunables for sphere placement.
type Params struct {
	// DeltaRatio scales the vertical band near the ground that sphere bases
	// are drawn from.
	DeltaRatio float64
	// SigmaRatio scales the Gaussian horizontal footprint around the cube center.
	SigmaRatio float64
	// Alpha and Beta shape the radius distribution; small Alpha relative to
	// Beta skews toward many small spheres with occasional large ones.
	Alpha float64
	Beta  float64
	// BaseRadiusRatio scales the anchoring base sphere.
	BaseRadiusRatio float64
}

// Config controls cloud generation.
type Config struct {
	BoxSize float64
	Count   int
	Seed    int64
	Params  Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		BoxSize: 10,
		Count:   20,
		Seed:    42,
		Params: Params{
			DeltaRatio:      0.1,
			SigmaRatio:      0.2,
			Alpha:           2,
			Beta:            5,
			BaseRadiusRatio: 0.3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["box"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.BoxSize = parsed
		}
	}
	if v, ok := cfg["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Count = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["delta_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DeltaRatio = parsed
		}
	}
	if v, ok := cfg["sigma_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SigmaRatio = parsed
		}
	}
	if v, ok := cfg["alpha"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Alpha = parsed
		}
	}
	if v, ok := cfg["beta"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Beta = parsed
		}
	}
	if v, ok := cfg["base_radius_ratio"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.BaseRadiusRatio = parsed
		}
	}
	return c
}

// Generate produces the cloud's sphere set. The first sphere anchors the cloud
// near the ground; the rest scatter around the cube center with a Gaussian
// footprint and Beta-distributed radii. Count is clamped to MaxSpheres; a
// non-positive count yields an empty set. The same config always yields the
// same set.
func Generate(cfg Config) []Sphere {
	n := cfg.Count
	if n <= 0 {
		return nil
	}
	if n > MaxSpheres {
		n = MaxSpheres
	}

	L := cfg.BoxSize
	p := cfg.Params
	rng := core.NewRNG(cfg.Seed)

	delta := L * p.DeltaRatio
	sigma := L * p.SigmaRatio

	spheres := make([]Sphere, 0, n)

	// Base sphere: lowest point rests at base_y, centered horizontally.
	baseY := rng.Float64() * (delta / 2)
	maxBaseRadius := math.Min(L/2, (L-baseY)*0.5)
	baseRadius := math.Min(L*p.BaseRadiusRatio, maxBaseRadius)
	spheres = append(spheres, Sphere{
		Center: geom.Vec3{X: L / 2, Y: baseY + baseRadius, Z: L / 2},
		Radius: baseRadius,
	})

	for i := 0; i < n-1; i++ {
		// Clipped Gaussians: plain min/max clamping at the cube walls is the
		// distribution the silhouette was tuned against, so it stays.
		x := math.Max(0, math.Min(L, rng.Normal(L/2, sigma)))
		z := math.Max(0, math.Min(L, rng.Normal(L/2, sigma)))
		dx := math.Min(x, L-x)
		dz := math.Min(z, L-z)
		yBase := rng.Float64() * delta

		dMax := math.Min(math.Min(dx, dz), (L-yBase)*0.5)
		minRadius := math.Max(0.05*L, baseRadius*0.2)
		maxRadius := math.Min(dMax, 0.5*L)

		radius := minRadius
		if maxRadius > minRadius {
			radius = minRadius + rng.Beta(p.Alpha, p.Beta)*(maxRadius-minRadius)
		}

		spheres = append(spheres, Sphere{
			Center: geom.Vec3{X: x, Y: yBase + radius, Z: z},
			Radius: radius,
		})
	}
	return spheres
}
