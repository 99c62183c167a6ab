// Package camera maps pet-window-local coordinates onto the desktop
// viewport and carries the screen-shake overlay.
package camera

import "math/rand"

// Camera converts window-local simulation coordinates to screen
// coordinates. The shake overlay perturbs rendered positions only; the
// authoritative simulation state is never offset.
type Camera struct {
	// Window origin in desktop coordinates (the pet's position)
	OriginX, OriginY float32

	// Viewport dimensions (desktop size)
	ViewportW, ViewportH float32

	// Shake overlay state
	shakeIntensity float32
	shakeFrames    int32

	// Offset sampled once per tick while shaking
	offsetX, offsetY float32
}

// New creates a camera for the given viewport.
func New(viewportW, viewportH float32) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
}

// SetOrigin moves the pet window origin.
func (c *Camera) SetOrigin(x, y float32) {
	c.OriginX = x
	c.OriginY = y
}

// LocalToScreen converts window-local coordinates to screen
// coordinates, including the current shake offset.
func (c *Camera) LocalToScreen(lx, ly float32) (sx, sy float32) {
	sx = c.OriginX + lx + c.offsetX
	sy = c.OriginY + ly + c.offsetY
	return sx, sy
}

// ScreenToLocal converts screen coordinates to window-local
// coordinates. Shake is excluded: input hit-testing works against the
// authoritative position, not the perturbed render position.
func (c *Camera) ScreenToLocal(sx, sy float32) (lx, ly float32) {
	lx = sx - c.OriginX
	ly = sy - c.OriginY
	return lx, ly
}

// StartShake begins a screen shake of the given intensity lasting the
// given number of ticks. A new shake replaces any shake in progress.
func (c *Camera) StartShake(intensity float32, frames int32) {
	if intensity < 0 {
		intensity = -intensity
	}
	if frames <= 0 {
		return
	}
	c.shakeIntensity = intensity
	c.shakeFrames = frames
}

// Step samples the shake offset for this tick and decrements the
// remaining frame counter. Called once per tick, after the simulation
// phases, so every consumer of the snapshot sees the same offset.
func (c *Camera) Step(rng *rand.Rand) {
	if c.shakeFrames <= 0 {
		c.offsetX = 0
		c.offsetY = 0
		c.shakeIntensity = 0
		return
	}
	c.offsetX = (rng.Float32()*2 - 1) * c.shakeIntensity
	c.offsetY = (rng.Float32()*2 - 1) * c.shakeIntensity
	c.shakeFrames--
}

// Offset returns the shake offset sampled for the current tick.
func (c *Camera) Offset() (x, y float32) {
	return c.offsetX, c.offsetY
}

// Shaking reports whether a shake is still in progress.
func (c *Camera) Shaking() bool {
	return c.shakeFrames > 0
}

// ShakeFramesRemaining returns the remaining shake duration in ticks.
func (c *Camera) ShakeFramesRemaining() int32 {
	return c.shakeFrames
}

// Resize updates the viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}
