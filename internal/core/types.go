package core

// Size describes the dimensions of a render target in pixels.
type Size struct {
	W int
	H int
}
