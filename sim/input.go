package sim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/pthm-cable/scamp/components"
)

// dragSampleInterval gates throw-velocity sampling so slow frames don't
// produce wild release velocities.
const dragSampleInterval = 0.02

// throwVelocityScale converts sampled pointer displacement into release
// velocity.
const throwVelocityScale = 0.5

// SetMode switches the behavior mode. Re-entering the current mode is a
// no-op: no message, no velocity change, no counter.
func (s *Simulation) SetMode(mode BehaviorMode) {
	if mode == s.pet.Mode {
		return
	}
	s.pet.Mode = mode
	s.collector.RecordModeChange()
	s.postMessage("MODE: " + mode.String())
	slog.Info("mode change", "mode", mode.String(), "tick", s.tick)

	switch mode {
	case ModeAttack:
		// Kill most momentum so the attack glide starts controlled.
		s.pet.VX *= 0.1
		s.pet.VY *= 0.1
		if s.pet.Motion == MotionFalling {
			s.pet.Motion = MotionIdle
		}
		s.pet.AttackCooldown = int32(s.cfg.Behavior.AttackCooldown)
		s.auraFrame = 0
		s.auraTick = 0
	case ModeIdle:
		if s.pet.Motion == MotionIdle {
			s.pet.IdleJumpCooldown = s.reseedIdleJump()
		}
	}
}

// SuperJump launches the pet upward with a burst and a spin flourish.
// Triggered by double-click. Ignored while dragging or paused.
func (s *Simulation) SuperJump() {
	if s.pet.Motion == MotionDragging || s.pet.Motion == MotionPaused {
		return
	}

	bhv := &s.cfg.Behavior
	s.pet.VY = -float32(bhv.SuperJumpSpeed)
	s.pet.Motion = MotionFalling
	s.pet.SpinFrames = int32(bhv.SpinFrames)

	ax, ay := s.anchor()
	n := s.particles.Emit(bhv.SuperJumpBurst, components.ParticleExplosion, ax, ay)
	s.collector.RecordParticlesSpawned(n)
	s.postMessage(superJumpShouts[s.rng.Intn(len(superJumpShouts))])
	s.collector.RecordSuperJump()
}

// StartDrag begins a drag if the pointer is within the scaled sprite's
// hit radius. screenX and screenY are desktop coordinates; now is the
// wall-clock time in seconds. Returns false if the grab missed.
func (s *Simulation) StartDrag(screenX, screenY float32, now float64) bool {
	if s.pet.Motion == MotionPaused {
		return false
	}

	lx := screenX - s.pet.X
	ly := screenY - s.pet.Y
	ax, ay := s.anchor()
	radius := float32(s.cfg.Window.SpriteWidth) * s.pet.Scale / 2
	if math.Hypot(float64(lx-ax), float64(ly-ay)) > float64(radius) {
		return false
	}

	s.pet.Motion = MotionDragging
	s.pet.VX = 0
	s.pet.VY = 0
	s.pet.Squash = 0.8

	s.dragOffsetX = lx
	s.dragOffsetY = ly
	s.lastDragX = screenX
	s.lastDragY = screenY
	s.lastDragTime = now
	s.throwVX = 0
	s.throwVY = 0

	n := s.particles.Emit(s.cfg.Behavior.DragBurst, components.ParticleDrag, ax, ay)
	s.collector.RecordParticlesSpawned(n)
	s.collector.RecordDragSession()
	return true
}

// DragMove pins the pet to the pointer and samples throw velocity at
// the gated interval.
func (s *Simulation) DragMove(screenX, screenY float32, now float64) {
	if s.pet.Motion != MotionDragging {
		return
	}

	s.pet.X = screenX - s.dragOffsetX
	s.pet.Y = screenY - s.dragOffsetY

	if now-s.lastDragTime > dragSampleInterval {
		s.throwVX = (screenX - s.lastDragX) * throwVelocityScale
		s.throwVY = (screenY - s.lastDragY) * throwVelocityScale
		s.lastDragX = screenX
		s.lastDragY = screenY
		s.lastDragTime = now
	}
}

// EndDrag releases the pet with the last sampled throw velocity.
func (s *Simulation) EndDrag() {
	if s.pet.Motion != MotionDragging {
		return
	}

	s.pet.VX = s.throwVX
	s.pet.VY = s.throwVY
	if s.throwVX != 0 || s.throwVY != 0 {
		s.collector.RecordThrow()
	}
	s.throwVX = 0
	s.throwVY = 0
	s.pet.Motion = MotionFalling
}

// AdjustScale steps the sprite scale up or down, clamped to the
// configured range.
func (s *Simulation) AdjustScale(steps int) {
	win := &s.cfg.Window
	scale := float64(s.pet.Scale) + float64(steps)*win.ScaleStep
	if scale < win.MinScale {
		scale = win.MinScale
	}
	if scale > win.MaxScale {
		scale = win.MaxScale
	}
	s.pet.Scale = float32(scale)
	s.postMessage(fmt.Sprintf("SCALE: %.1f", scale))
}

// SetScale sets the sprite scale directly, clamped to the configured
// range. Used by the UI slider; it skips the step announcement so a
// slider drag doesn't spam messages.
func (s *Simulation) SetScale(scale float32) {
	win := &s.cfg.Window
	v := float64(scale)
	if v < win.MinScale {
		v = win.MinScale
	}
	if v > win.MaxScale {
		v = win.MaxScale
	}
	s.pet.Scale = float32(v)
}

// SetPaused suspends or resumes physics and behavior. Effects,
// projectiles, messages, and the camera keep running while paused.
func (s *Simulation) SetPaused(paused bool) {
	if paused && s.pet.Motion != MotionPaused {
		s.prevMotion = s.pet.Motion
		s.pet.Motion = MotionPaused
		slog.Info("paused", "tick", s.tick)
		return
	}
	if !paused && s.pet.Motion == MotionPaused {
		s.pet.Motion = s.prevMotion
		slog.Info("resumed", "tick", s.tick)
	}
}

// Paused reports whether the simulation is paused.
func (s *Simulation) Paused() bool {
	return s.pet.Motion == MotionPaused
}
