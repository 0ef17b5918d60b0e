package cloud

import (
	"errors"
	"testing"

	"cloudmarch/pkg/geom"
)

func TestBoundEmpty(t *testing.T) {
	if _, err := Bound(nil); !errors.Is(err, ErrEmptyCloud) {
		t.Fatalf("Bound(nil) error = %v, want ErrEmptyCloud", err)
	}
}

func TestBoundSingleSphere(t *testing.T) {
	s := Sphere{Center: geom.Vec3{X: 1, Y: 2, Z: 3}, Radius: 4}
	b, err := Bound([]Sphere{s})
	if err != nil {
		t.Fatal(err)
	}
	if b.Center != s.Center {
		t.Fatalf("bounding center %+v, want %+v", b.Center, s.Center)
	}
	if b.Radius != s.Radius {
		t.Fatalf("bounding radius %v, want %v", b.Radius, s.Radius)
	}
}

func TestBoundContainment(t *testing.T) {
	const eps = 1e-9
	for seed := int64(0); seed < 100; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		spheres := Generate(cfg)
		b, err := Bound(spheres)
		if err != nil {
			t.Fatal(err)
		}
		for i, s := range spheres {
			if d := s.Center.Sub(b.Center).Len() + s.Radius; d > b.Radius+eps {
				t.Fatalf("seed %d sphere %d: extends %v past bounding radius %v", seed, i, d, b.Radius)
			}
		}
	}
}

func TestBoundDisjointPair(t *testing.T) {
	spheres := []Sphere{
		{Center: geom.Vec3{X: -5}, Radius: 1},
		{Center: geom.Vec3{X: 5}, Radius: 1},
	}
	b, err := Bound(spheres)
	if err != nil {
		t.Fatal(err)
	}
	if b.Center != (geom.Vec3{}) {
		t.Fatalf("bounding center %+v, want origin", b.Center)
	}
	if b.Radius != 6 {
		t.Fatalf("bounding radius %v, want 6", b.Radius)
	}
}
