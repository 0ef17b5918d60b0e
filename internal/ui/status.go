package ui

// Status carries the per-frame readouts shown on the HUD.
type Status struct {
	Seed    int64
	Time    float64
	Spheres int
	Paused  bool
}
