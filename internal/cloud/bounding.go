package cloud

import (
	"errors"
	"math"

	"cloudmarch/pkg/geom"
)

// ErrEmptyCloud is returned when a bounding sphere is requested for an empty
// sphere set.
var ErrEmptyCloud = errors.New("cloud: cannot bound an empty sphere set")

// Bound reduces a sphere set to a single enclosing sphere. The center is the
// midpoint of the set's axis-aligned bounding box; the radius is grown until
// every input sphere is fully contained.
func Bound(spheres []Sphere) (Sphere, error) {
	if len(spheres) == 0 {
		return Sphere{}, ErrEmptyCloud
	}

	minP := geom.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	maxP := geom.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, s := range spheres {
		minP.X = math.Min(minP.X, s.Center.X-s.Radius)
		minP.Y = math.Min(minP.Y, s.Center.Y-s.Radius)
		minP.Z = math.Min(minP.Z, s.Center.Z-s.Radius)
		maxP.X = math.Max(maxP.X, s.Center.X+s.Radius)
		maxP.Y = math.Max(maxP.Y, s.Center.Y+s.Radius)
		maxP.Z = math.Max(maxP.Z, s.Center.Z+s.Radius)
	}

	center := minP.Add(maxP).Mul(0.5)
	radius := 0.0
	for _, s := range spheres {
		if d := s.Center.Sub(center).Len() + s.Radius; d > radius {
			radius = d
		}
	}
	return Sphere{Center: center, Radius: radius}, nil
}
