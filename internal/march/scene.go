// Package march integrates light transport through the cloud's implicit
// density field, one pixel at a time.
package march

import (
	"errors"
	"fmt"
	"math"

	"cloudmarch/internal/cloud"
	"cloudmarch/internal/core"
	"cloudmarch/internal/noise"
	"cloudmarch/pkg/geom"
)

// Fixed design parameters of the integrator. Step counts bound the work per
// pixel regardless of scene content; the shadow march is deliberately an
// independent tunable, not derived from the primary march resolution.
const (
	// PrimarySteps is the number of uniform samples between the near and far
	// bounding-sphere intersections.
	PrimarySteps = 64
	// ShadowSteps and ShadowStepLen size the secondary march toward the light.
	ShadowSteps   = 16
	ShadowStepLen = 0.05
	// ShadowAbsorption attenuates the shadow factor per occluding sample.
	ShadowAbsorption = 0.3

	// DefaultSigmaA and DefaultSigmaS are the absorption and scattering
	// coefficients of the medium.
	DefaultSigmaA = 0.5
	DefaultSigmaS = 1.0

	// DensityEpsilon is the density below which a primary sample contributes
	// nothing. ShadowDensityMin is the occlusion threshold for shadow samples.
	DensityEpsilon   = 0.001
	ShadowDensityMin = 0.02

	// TransmitCutoff ends the primary march once the remaining light is
	// negligible; ShadowCutoff does the same for the shadow march.
	TransmitCutoff = 0.001
	ShadowCutoff   = 0.01

	// SwirlRate is the angular speed (radians per second) of the internal
	// density rotation. NoiseScale maps world XZ positions onto the grid.
	SwirlRate  = 0.05
	NoiseScale = 0.1

	// DensityEdgeLo and DensityEdgeHi are the smoothstep edges shaping raw
	// noise samples into soft density.
	DensityEdgeLo = 0.3
	DensityEdgeHi = 1.0

	// ScatterBlend is the fraction of light color mixed into the fog color.
	ScatterBlend = 0.3

	// CameraDistance is the eye offset from the bounding center in bounding
	// radii.
	CameraDistance = 2.0
)

// Fixed light and background colors.
var (
	LightDir   = geom.Vec3{X: 0.4, Y: 0.7, Z: 0.5}.Norm()
	LightColor = Color{R: 1.0, G: 0.96, B: 0.9}
	FogColor   = Color{R: 0.9, G: 0.92, B: 0.95}
	Background = Color{R: 0.6, G: 0.6, B: 0.6}
)

// ErrNoSpheres is returned when a scene is built without any spheres.
var ErrNoSpheres = errors.New("march: scene needs at least one sphere")

// Scene freezes everything a frame needs besides time: the sphere set, its
// bounding sphere, the noise grid and the derived camera. Per-pixel evaluation
// never mutates it, so any number of workers may share one Scene.
type Scene struct {
	Spheres  []cloud.Sphere
	Bounding cloud.Sphere
	Noise    noise.Grid

	// SigmaA and SigmaS default to the package constants; tests and offline
	// renders may scale them before rendering.
	SigmaA float64
	SigmaS float64

	eye geom.Vec3
}

// NewScene validates the inputs and derives the camera placement. The sphere
// count is a hard contract with the renderer; sets larger than
// cloud.MaxSpheres are rejected rather than silently truncated.
func NewScene(spheres []cloud.Sphere, bounding cloud.Sphere, grid noise.Grid) (*Scene, error) {
	if len(spheres) == 0 {
		return nil, ErrNoSpheres
	}
	if len(spheres) > cloud.MaxSpheres {
		return nil, fmt.Errorf("march: %d spheres exceeds the cap of %d", len(spheres), cloud.MaxSpheres)
	}
	eye := bounding.Center.Add(geom.Vec3{Z: CameraDistance * bounding.Radius})
	return &Scene{
		Spheres:  spheres,
		Bounding: bounding,
		Noise:    grid,
		SigmaA:   DefaultSigmaA,
		SigmaS:   DefaultSigmaS,
		eye:      eye,
	}, nil
}

// Eye returns the derived camera position.
func (s *Scene) Eye() geom.Vec3 { return s.eye }

// rayDir builds the perspective ray for a pixel center, scaled by the bounding
// radius so the cloud fills a consistent share of the frame.
func (s *Scene) rayDir(px, py int, size core.Size) geom.Vec3 {
	aspect := float64(size.W) / float64(size.H)
	ndcX := (2*(float64(px)+0.5)/float64(size.W) - 1) * aspect
	ndcY := 1 - 2*(float64(py)+0.5)/float64(size.H)
	r := s.Bounding.Radius
	return geom.Vec3{
		X: ndcX * r,
		Y: ndcY * r,
		Z: -CameraDistance * r,
	}.Norm()
}

// SDF is the union-of-spheres distance: negative inside any sphere.
func (s *Scene) SDF(p geom.Vec3) float64 {
	d := math.Inf(1)
	for _, sp := range s.Spheres {
		if sd := p.Sub(sp.Center).Len() - sp.Radius; sd < d {
			d = sd
		}
	}
	return d
}

// Density evaluates the cloud density at p for the given time. Points outside
// every sphere have density zero; inside, the noise grid is sampled at the
// swirl-rotated XZ position and shaped through a smoothstep.
func (s *Scene) Density(p geom.Vec3, t float64) float64 {
	if s.SDF(p) > 0 {
		return 0
	}
	rel := p.Sub(s.Bounding.Center).RotateY(t * SwirlRate)
	q := s.Bounding.Center.Add(rel)
	sample := s.Noise.Sample(q.X*NoiseScale, q.Z*NoiseScale)
	return smoothstep(DensityEdgeLo, DensityEdgeHi, sample)
}

func smoothstep(e0, e1, x float64) float64 {
	t := (x - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// intersectSphere solves the quadratic ray/sphere test, returning entry and
// exit distances along the ray.
func intersectSphere(ro, rd geom.Vec3, sp cloud.Sphere) (t0, t1 float64, ok bool) {
	oc := ro.Sub(sp.Center)
	b := oc.Dot(rd)
	c := oc.Dot(oc) - sp.Radius*sp.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return -b - sq, -b + sq, true
}
