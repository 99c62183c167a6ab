package sim

import (
	"log/slog"

	"github.com/pthm-cable/scamp/components"
)

// Enqueue queues an external event (a chat line, a notification) for
// the next tick. Safe to call from any goroutine; everything else in
// the reaction path runs on the simulation goroutine.
func (s *Simulation) Enqueue(text string) {
	s.mu.Lock()
	s.pending = append(s.pending, text)
	s.mu.Unlock()
}

// drainEvents processes every queued event at the start of the tick.
func (s *Simulation) drainEvents() {
	s.mu.Lock()
	events := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, text := range events {
		s.react(text)
	}
}

// react applies the full feedback for one external event: a floating
// message, a startle jump with spin, an explosion burst, and a screen
// shake.
func (s *Simulation) react(text string) {
	rc := &s.cfg.Reaction

	runes := []rune(text)
	if len(runes) > rc.MaxLen {
		text = string(runes[:rc.MaxLen]) + "…"
	}
	s.postMessage(text)

	// The startle only moves the pet when physics is live.
	if s.pet.Motion != MotionDragging && s.pet.Motion != MotionPaused {
		s.pet.VY -= float32(rc.Impulse)
		s.pet.VX += s.uniform(float32(rc.Jitter))
		s.pet.Motion = MotionFalling
		s.pet.SpinFrames = int32(s.cfg.Behavior.SpinFrames)
	}

	ax, ay := s.anchor()
	n := s.particles.Emit(rc.BurstCount, components.ParticleExplosion, ax, ay)
	s.collector.RecordParticlesSpawned(n)

	s.cam.StartShake(float32(rc.ShakeIntensity), int32(rc.ShakeFrames))
	s.collector.RecordReaction()
	slog.Debug("reaction", "len", len(runes), "tick", s.tick)
}
