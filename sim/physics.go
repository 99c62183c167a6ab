package sim

import (
	"log/slog"

	"github.com/pthm-cable/scamp/components"
)

// stepPhysics integrates one tick of pet motion and resolves floor,
// edge, and lost-window collisions. Gravity is suppressed only for the
// attack glide; an attacking pet that is actively falling still
// accelerates downward.
func (s *Simulation) stepPhysics() {
	phys := &s.cfg.Physics

	if s.pet.Mode != ModeAttack || s.pet.Motion == MotionFalling {
		s.pet.VY += float32(phys.Gravity)
		if s.pet.VY > float32(phys.MaxFallSpeed) {
			s.pet.VY = float32(phys.MaxFallSpeed)
		}
	}

	s.pet.X += s.pet.VX
	s.pet.Y += s.pet.VY

	s.resolveFloor()

	// Air drag; the glide keeps its horizontal speed.
	if s.pet.Motion == MotionFalling && s.pet.Mode != ModeAttack {
		s.pet.VX *= float32(phys.FrictionX)
	}

	s.resolveEdges()
	s.resolveLost()
}

// resolveFloor bounces or settles the pet on the floor line, and marks
// it falling whenever it ends the tick airborne.
func (s *Simulation) resolveFloor() {
	floorY := s.cfg.Derived.FloorY
	if s.pet.Y < floorY {
		s.pet.Motion = MotionFalling
		return
	}
	s.pet.Y = floorY

	phys := &s.cfg.Physics
	if abs32(s.pet.VY) > float32(phys.SettleSpeed) {
		s.pet.VY *= float32(phys.Bounce)
		s.pet.VX *= float32(phys.FrictionY)

		// Squash and burst scale with the rebound speed, not the
		// incoming impact speed.
		rebound := abs32(s.pet.VY)
		s.pet.Squash = 1.25 - rebound*0.01

		ax, _ := s.anchor()
		footY := s.cfg.Derived.WindowH32/2 + float32(s.cfg.Window.SpriteHeight)/2*s.pet.Scale
		n := s.particles.Emit(int(rebound), components.ParticleImpact, ax, footY)
		s.collector.RecordParticlesSpawned(n)
		s.collector.RecordBounce()
		return
	}

	s.pet.VY = 0
	s.pet.VX *= float32(phys.FrictionY)
	if abs32(s.pet.VX) < float32(phys.SnapSpeed) {
		s.pet.VX = 0
	}
	if s.pet.Motion != MotionIdle {
		s.pet.Motion = MotionIdle
		s.pet.IdleJumpCooldown = s.reseedIdleJump()
		s.collector.RecordSettle()
	}
}

// resolveEdges reflects the pet off both screen edges with partial
// energy loss.
func (s *Simulation) resolveEdges() {
	edgeBounce := float32(s.cfg.Physics.EdgeBounce)

	if s.pet.X < s.cfg.Derived.EdgeMinX {
		s.pet.X = s.cfg.Derived.EdgeMinX
		s.pet.VX *= edgeBounce
		s.collector.RecordEdgeHit()
	} else if s.pet.X > s.cfg.Derived.EdgeMaxX {
		s.pet.X = s.cfg.Derived.EdgeMaxX
		s.pet.VX *= edgeBounce
		s.collector.RecordEdgeHit()
	}
}

// resolveLost recovers the pet when it sails off the top of the screen
// (a hard throw, a runaway glide): drop it back on the floor with the
// velocity cleared. The floor and edge clamps bound every other escape
// direction.
func (s *Simulation) resolveLost() {
	if s.pet.Y >= -s.cfg.Derived.WindowH32 {
		return
	}

	slog.Warn("pet lost off-screen, resetting",
		"x", s.pet.X, "y", s.pet.Y, "tick", s.tick)

	s.pet.Y = s.cfg.Derived.FloorY
	s.pet.VX = 0
	s.pet.VY = 0
	s.postMessage("RESET!")
	s.collector.RecordReset()
}

// abs32 returns the absolute value of a float32.
func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// clamp32 limits v to [-bound, bound].
func clamp32(v, bound float32) float32 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}
