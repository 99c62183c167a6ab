// Package components defines ECS components for the effect populations.
package components

// Position represents a window-local position.
type Position struct {
	X, Y float32
}

// Velocity represents a per-tick velocity.
// Effect velocities are fixed at spawn and never re-integrated.
type Velocity struct {
	X, Y float32
}

// Lifetime counts down remaining ticks; the owning system removes the
// entity when Remaining hits zero.
type Lifetime struct {
	Remaining int32
}

// Color is an RGBA color. Kept free of render-layer types so component
// data stays portable between the headless and graphical builds.
type Color struct {
	R, G, B, A uint8
}

// ParticleKind identifies the emission profile of a particle.
type ParticleKind uint8

const (
	ParticleImpact ParticleKind = iota
	ParticleExplosion
	ParticleDrag
	ParticleTrail
	ParticleMicro
)

// String returns the kind name for logs and telemetry.
func (k ParticleKind) String() string {
	switch k {
	case ParticleImpact:
		return "impact"
	case ParticleExplosion:
		return "explosion"
	case ParticleDrag:
		return "drag"
	case ParticleTrail:
		return "trail"
	case ParticleMicro:
		return "micro"
	default:
		return "unknown"
	}
}

// ParticleStyle holds the visual attributes fixed at spawn.
// Its presence also marks an entity as a particle.
type ParticleStyle struct {
	Kind  ParticleKind
	Size  float32
	Color Color
}

// Projectile marks an entity as a projectile and carries its identity.
// Position and velocity live in the shared components; velocity is
// computed once at launch from the firing angle.
type Projectile struct {
	ID uint32
}

// Message holds a floating text message. Position is the fixed anchor;
// the rendered offset is a deterministic function of elapsed life plus
// per-tick jitter, both stored here so the snapshot stays pure.
type Message struct {
	Text        string
	InitialLife float32
	JitterX     float32
	JitterY     float32
}

// MessageLife is the fractional life counter for messages. Separate
// from Lifetime because message decay is non-integral (1.5 per tick).
type MessageLife struct {
	Remaining float32
}
