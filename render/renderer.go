// Package render draws the simulation snapshot with raylib. It holds no
// simulation state; everything it needs arrives in the snapshot.
package render

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/scamp/components"
	"github.com/pthm-cable/scamp/config"
	"github.com/pthm-cable/scamp/effects"
	"github.com/pthm-cable/scamp/sim"
)

var (
	backgroundColor = rl.Color{R: 24, G: 26, B: 33, A: 255}
	floorColor      = rl.Color{R: 60, G: 64, B: 78, A: 255}
	bodyColor       = rl.Color{R: 250, G: 250, B: 252, A: 255}
	bodyDragColor   = rl.Color{R: 210, G: 225, B: 255, A: 255}
	eyeColor        = rl.Color{R: 30, G: 30, B: 40, A: 255}
	auraColor       = rl.Color{R: 255, G: 80, B: 40, A: 255}
	shotColor       = rl.Color{R: 255, G: 230, B: 80, A: 255}
	shadowColor     = rl.Color{R: 0, G: 0, B: 0, A: 180}
)

// Renderer draws snapshots onto the current raylib frame.
type Renderer struct {
	cfg *config.Config
}

// New creates a renderer.
func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw renders one snapshot. Assumes rl.BeginDrawing was already
// called.
func (r *Renderer) Draw(snap sim.Snapshot) {
	rl.ClearBackground(backgroundColor)

	r.drawFloor()

	// Everything window-local shifts by the window origin plus the
	// per-tick shake offset.
	offX := snap.Pet.X + snap.ShakeX
	offY := snap.Pet.Y + snap.ShakeY

	r.drawParticles(snap.Particles, offX, offY)
	r.drawPet(snap.Pet, offX, offY)
	r.drawProjectiles(snap.Projectiles, offX, offY)
	r.drawMessages(snap.Messages, offX, offY)
}

// drawFloor marks the resting line the pet settles on.
func (r *Renderer) drawFloor() {
	floorY := r.cfg.Derived.FloorY + r.cfg.Derived.WindowH32/2
	rl.DrawLine(0, int32(floorY), int32(r.cfg.Screen.Width), int32(floorY), floorColor)
}

// drawPet draws the pet body with squash, spin, and the attack aura.
func (r *Renderer) drawPet(pet sim.PetView, offX, offY float32) {
	cx := offX + r.cfg.Derived.WindowW32/2
	cy := offY + r.cfg.Derived.WindowH32/2

	w := float32(r.cfg.Window.SpriteWidth) * pet.Scale
	h := float32(r.cfg.Window.SpriteHeight) * pet.Scale

	// Squash preserves area: vertical compression widens the body.
	if pet.Squash > 0 {
		h *= pet.Squash
		w /= pet.Squash
	}

	if pet.AuraVisible {
		r.drawAura(cx, cy, w, h, pet.AuraFrame)
	}

	body := bodyColor
	if pet.Motion == sim.MotionDragging {
		body = bodyDragColor
	}

	rect := rl.Rectangle{X: cx, Y: cy, Width: w, Height: h}
	origin := rl.Vector2{X: w / 2, Y: h / 2}
	rl.DrawRectanglePro(rect, origin, pet.RotationDeg, body)

	// Eyes only while upright; a spinning pet is a blur anyway.
	if pet.RotationDeg == 0 {
		r.drawEyes(cx, cy, w, h, pet.FacingRight)
	}
}

// drawEyes places two eyes on the facing side of the body.
func (r *Renderer) drawEyes(cx, cy, w, h float32, facingRight bool) {
	eyeY := cy - h*0.22
	side := float32(1)
	if !facingRight {
		side = -1
	}
	rl.DrawCircleV(rl.Vector2{X: cx + side*w*0.10, Y: eyeY}, w*0.06, eyeColor)
	rl.DrawCircleV(rl.Vector2{X: cx + side*w*0.28, Y: eyeY}, w*0.06, eyeColor)
}

// drawAura draws the pulsing attack ring behind the body.
func (r *Renderer) drawAura(cx, cy, w, h float32, frame int32) {
	frames := float32(r.cfg.Behavior.AuraFrameCount)
	phase := float64(frame) / float64(frames) * 2 * math.Pi
	pulse := float32(math.Sin(phase))*4 + 6

	radius := float32(math.Hypot(float64(w), float64(h)))/2 + pulse
	color := auraColor
	color.A = uint8(140 + 60*float32(math.Sin(phase)))
	rl.DrawRingLines(rl.Vector2{X: cx, Y: cy}, radius, radius+3, 0, 360, 32, color)
}

// drawParticles draws each particle as a square fading with remaining
// life.
func (r *Renderer) drawParticles(views []effects.ParticleView, offX, offY float32) {
	for _, v := range views {
		frac := float32(v.Life) / float32(v.MaxLife)
		color := toRaylib(v.Color)
		color.A = uint8(255 * frac)
		half := v.Size / 2
		rl.DrawRectangle(int32(offX+v.X-half), int32(offY+v.Y-half), int32(v.Size), int32(v.Size), color)
	}
}

// drawProjectiles draws each shot as a bright circle with a dim trail
// dot.
func (r *Renderer) drawProjectiles(views []effects.ProjectileView, offX, offY float32) {
	for _, v := range views {
		pos := rl.Vector2{X: offX + v.X, Y: offY + v.Y}
		trail := shotColor
		trail.A = 90
		rl.DrawCircleV(pos, 9, trail)
		rl.DrawCircleV(pos, 5, shotColor)
	}
}

// drawMessages draws floating text with a drop shadow, fading out over
// its life.
func (r *Renderer) drawMessages(views []effects.MessageView, offX, offY float32) {
	fontSize := int32(r.cfg.Messages.FontSize)
	shadow := int32(r.cfg.Messages.ShadowOffset)

	for _, v := range views {
		alpha := uint8(255 * v.LifeFrac)

		width := rl.MeasureText(v.Text, fontSize)
		x := int32(offX+v.X) - width/2
		y := int32(offY + v.Y)

		sc := shadowColor
		sc.A = uint8(float32(sc.A) * v.LifeFrac)
		rl.DrawText(v.Text, x+shadow, y+shadow, fontSize, sc)
		rl.DrawText(v.Text, x, y, fontSize, rl.Color{R: 255, G: 255, B: 255, A: alpha})
	}
}

// toRaylib converts a component color to a raylib color.
func toRaylib(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
