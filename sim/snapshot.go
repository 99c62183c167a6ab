package sim

import "github.com/pthm-cable/scamp/effects"

// PetView is the render state of the pet.
type PetView struct {
	X, Y        float32 // Window origin in desktop coordinates
	Scale       float32
	Squash      float32
	RotationDeg float32
	FacingRight bool
	Motion      MotionState
	Mode        BehaviorMode
	AuraVisible bool
	AuraFrame   int32
}

// Snapshot is everything the renderer needs for one frame. Effect
// positions are window-local; the shake offset applies to the whole
// scene at draw time.
type Snapshot struct {
	Tick int32

	Pet PetView

	ShakeX, ShakeY float32

	Particles   []effects.ParticleView
	Projectiles []effects.ProjectileView
	Messages    []effects.MessageView
}

// Snapshot captures the current render state. The returned slices are
// reused between calls; the renderer must consume them before the next
// Snapshot call.
func (s *Simulation) Snapshot() Snapshot {
	s.particleViews = s.particles.Views(s.particleViews[:0])
	s.shotViews = s.shots.Views(s.shotViews[:0])
	s.messageViews = s.messages.Views(s.messageViews[:0])

	var rotation float32
	if s.pet.SpinFrames > 0 {
		total := int32(s.cfg.Behavior.SpinFrames)
		rotation = float32(total-s.pet.SpinFrames) * 360 / float32(total)
	}

	shakeX, shakeY := s.cam.Offset()

	return Snapshot{
		Tick: s.tick,
		Pet: PetView{
			X:           s.pet.X,
			Y:           s.pet.Y,
			Scale:       s.pet.Scale,
			Squash:      s.pet.Squash,
			RotationDeg: rotation,
			FacingRight: s.pet.FacingRight,
			Motion:      s.pet.Motion,
			Mode:        s.pet.Mode,
			AuraVisible: s.pet.Mode == ModeAttack,
			AuraFrame:   s.auraFrame,
		},
		ShakeX:      shakeX,
		ShakeY:      shakeY,
		Particles:   s.particleViews,
		Projectiles: s.shotViews,
		Messages:    s.messageViews,
	}
}
