package march

import (
	"math"
	"runtime"
	"sync"

	"cloudmarch/internal/core"
	"cloudmarch/pkg/geom"
)

// Pixel computes the color for one output pixel. It is a pure function of the
// frozen scene, the pixel coordinate and the time scalar.
func (s *Scene) Pixel(px, py int, size core.Size, t float64) Color {
	rd := s.rayDir(px, py, size)
	c, _ := s.marchSteps(s.eye, rd, t, PrimarySteps)
	return c
}

// marchSteps integrates up to steps samples of the fixed primary grid along
// the ray and returns the accumulated color and remaining transmittance. Rays
// that miss the bounding sphere, or for which it lies entirely behind the
// origin, return the background untouched.
func (s *Scene) marchSteps(ro, rd geom.Vec3, t float64, steps int) (Color, float64) {
	tNear, tFar, ok := intersectSphere(ro, rd, s.Bounding)
	if !ok || tFar <= 0 {
		return Background, 1
	}
	if tNear < 0 {
		tNear = 0
	}

	dt := (tFar - tNear) / PrimarySteps
	scatter := FogColor.Lerp(LightColor, ScatterBlend)

	transmit := 1.0
	var col Color
	for i := 0; i < steps; i++ {
		p := ro.Add(rd.Mul(tNear + (float64(i)+0.5)*dt))
		d := s.Density(p, t)
		if d <= DensityEpsilon {
			continue
		}
		shadow := s.shadow(p, t)
		col = col.Add(scatter.Scale(d * s.SigmaS * shadow * transmit * dt))
		transmit *= math.Exp(-d * (s.SigmaA + s.SigmaS) * dt)
		if transmit < TransmitCutoff {
			break
		}
	}
	return col.Add(Background.Scale(transmit)), transmit
}

// shadow marches toward the light and returns the fraction of it that
// survives the occluding medium.
func (s *Scene) shadow(p geom.Vec3, t float64) float64 {
	shadow := 1.0
	for i := 1; i <= ShadowSteps; i++ {
		q := p.Add(LightDir.Mul(float64(i) * ShadowStepLen))
		if q.Sub(s.Bounding.Center).Len() > s.Bounding.Radius {
			break
		}
		if d := s.Density(q, t); d > ShadowDensityMin {
			shadow *= math.Exp(-d * ShadowAbsorption)
		}
		if shadow < ShadowCutoff {
			break
		}
	}
	return shadow
}

// Render fills img (row-major, len size.W*size.H) with the frame at time t,
// fanning rows out over one worker per CPU. Pixels share no mutable state, so
// the worker count never changes the output.
func (s *Scene) Render(img []Color, size core.Size, t float64) {
	s.RenderWorkers(img, size, t, runtime.NumCPU())
}

// RenderWorkers renders with an explicit worker count.
func (s *Scene) RenderWorkers(img []Color, size core.Size, t float64, workers int) {
	if workers < 1 {
		workers = 1
	}
	if workers > size.H {
		workers = size.H
	}
	rowsPer := (size.H + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * rowsPer
		hi := lo + rowsPer
		if hi > size.H {
			hi = size.H
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for py := lo; py < hi; py++ {
				for px := 0; px < size.W; px++ {
					img[py*size.W+px] = s.Pixel(px, py, size, t)
				}
			}
		}(lo, hi)
	}
	wg.Wait()
}
