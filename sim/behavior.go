package sim

import (
	"math"

	"github.com/pthm-cable/scamp/components"
)

var (
	lungeShouts     = []string{"POUNCE!", "GOTCHA!", "RAWR!"}
	superJumpShouts = []string{"BOING!", "WHEE!", "YAHOO!", "TO THE MOON!"}
)

// stepBehavior runs one tick of the active behavior branch. px and py
// are the pointer position in window-local coordinates; pok is false
// when no pointer data is available, which suppresses all
// pointer-driven movement.
func (s *Simulation) stepBehavior(now float64, px, py float32, pok bool) {
	ax, _ := s.anchor()
	distX := px - ax

	if pok && distX != 0 {
		s.pet.FacingRight = distX > 0
	}

	switch s.pet.Mode {
	case ModeChase:
		s.stepChase(distX, pok)
	case ModeAttack:
		s.stepAttack(px, py, pok)
	case ModeIdle:
		s.stepIdle(now)
	}
}

// stepChase accelerates toward the pointer, leaving a trail at speed.
func (s *Simulation) stepChase(distX float32, pok bool) {
	bhv := &s.cfg.Behavior
	if !pok || abs32(distX) <= float32(bhv.ChaseDeadzone) {
		return
	}

	if distX > 0 {
		s.pet.VX += float32(bhv.ChaseAccel)
	} else {
		s.pet.VX -= float32(bhv.ChaseAccel)
	}
	s.pet.VX = clamp32(s.pet.VX, float32(bhv.ChaseMaxSpeed))

	if abs32(s.pet.VX) > float32(bhv.TrailSpeed) {
		ax, ay := s.anchor()
		n := s.particles.Emit(1, components.ParticleTrail, ax, ay)
		s.collector.RecordParticlesSpawned(n)
	}
}

// stepAttack glides toward the pointer, fires on a cooldown, and rolls
// a lunge chance while the pointer is in range.
func (s *Simulation) stepAttack(px, py float32, pok bool) {
	bhv := &s.cfg.Behavior
	ax, ay := s.anchor()
	distX := px - ax

	// Holding IDLE every tick keeps the gravity guard engaged while
	// airborne; a lunge below re-enters FALLING for its launch tick.
	s.pet.Motion = MotionIdle

	if pok && abs32(distX) > float32(bhv.AttackDeadzone) {
		if distX > 0 {
			s.pet.VX += float32(bhv.AttackAccel)
		} else {
			s.pet.VX -= float32(bhv.AttackAccel)
		}
		s.pet.VX = clamp32(s.pet.VX, float32(bhv.AttackMaxSpeed))
	}

	if pok {
		dist := math.Hypot(float64(px-ax), float64(py-ay))
		if dist <= bhv.LungeRange && s.rng.Float64() < bhv.LungeChance {
			dir := float32(1)
			if distX < 0 {
				dir = -1
			}
			s.pet.VX = dir * float32(bhv.LungeSpeed)
			s.pet.VY = -float32(bhv.LungePop)
			s.pet.Motion = MotionFalling
			s.pet.SpinFrames = int32(bhv.SpinFrames)
			s.postMessage(lungeShouts[s.rng.Intn(len(lungeShouts))])
			s.collector.RecordLunge()
		}
	}

	// The cooldown holds at zero until pointer data is available again.
	if s.pet.AttackCooldown > 0 {
		s.pet.AttackCooldown--
	}
	if s.pet.AttackCooldown <= 0 && pok {
		s.shots.Launch(ax, ay, px, py)
		s.pet.AttackCooldown = int32(bhv.AttackCooldown)
		s.pet.Squash = 1.1
		s.collector.RecordShotFired()
	}
}

// stepIdle bobs in place and occasionally hops. Only runs while the pet
// is settled; a falling pet finishes its arc first.
func (s *Simulation) stepIdle(now float64) {
	if s.pet.Motion != MotionIdle {
		return
	}

	bhv := &s.cfg.Behavior
	s.pet.Y += float32(math.Sin(now*bhv.IdleBobRate) * bhv.IdleBobAmplitude)

	s.pet.IdleJumpCooldown--
	if s.pet.IdleJumpCooldown > 0 {
		return
	}

	s.pet.VX = s.uniform(float32(bhv.IdleJumpSpeedX))
	spread := bhv.IdleJumpMaxSpeedY - bhv.IdleJumpMinSpeedY
	s.pet.VY = -float32(bhv.IdleJumpMinSpeedY + s.rng.Float64()*spread)
	s.pet.Motion = MotionFalling
	s.pet.IdleJumpCooldown = s.reseedIdleJump()
	s.collector.RecordIdleHop()
}
