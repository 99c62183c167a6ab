// Package effects contains the transient effect populations: particles,
// projectiles, and floating messages. Each population lives in its own
// ECS archetype so the collections stay homogeneous and removal during
// a tick can never skip a live entity.
package effects

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/components"
	"github.com/pthm-cable/scamp/config"
)

// Emission palettes per particle kind.
var (
	impactColors = []components.Color{
		{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	explosionColors = []components.Color{
		{R: 0xFF, G: 0x55, B: 0xFF, A: 0xFF},
		{R: 0xAA, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xDD, B: 0x00, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	}
	dragColors = []components.Color{
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xAA, G: 0xFF, B: 0xAA, A: 0xFF},
		{R: 0xDD, G: 0xAA, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	trailColors = []components.Color{
		{R: 0xAA, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0x55, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	}
	microColor = components.Color{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
)

// ParticleView is the read-only per-particle render state.
type ParticleView struct {
	X, Y    float32
	Size    float32
	Color   components.Color
	Kind    components.ParticleKind
	Life    int32
	MaxLife int32
}

// ParticleSystem owns the particle population.
type ParticleSystem struct {
	cfg config.ParticlesConfig
	rng *rand.Rand

	mapper *ecs.Map4[components.Position, components.Velocity, components.Lifetime, components.ParticleStyle]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Lifetime, components.ParticleStyle]

	count    int
	lifespan int32
}

// NewParticleSystem creates a particle system backed by the given world.
func NewParticleSystem(world *ecs.World, cfg config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		cfg:      cfg,
		rng:      rng,
		mapper:   ecs.NewMap4[components.Position, components.Velocity, components.Lifetime, components.ParticleStyle](world),
		filter:   ecs.NewFilter4[components.Position, components.Velocity, components.Lifetime, components.ParticleStyle](world),
		lifespan: int32(cfg.Lifespan),
	}
}

// Emit spawns count particles of the given kind around (x, y) with the
// configured positional jitter. Returns the number actually spawned
// (the population cap may truncate the burst).
func (s *ParticleSystem) Emit(count int, kind components.ParticleKind, x, y float32) int {
	spawned := 0
	for i := 0; i < count; i++ {
		if s.count >= s.cfg.MaxParticles {
			break
		}

		var vx, vy, size float32
		var color components.Color
		life := s.lifespan

		switch kind {
		case components.ParticleImpact:
			color = impactColors[s.rng.Intn(len(impactColors))]
			size = 3 + s.rng.Float32()*4
			vx = s.uniform(4)
			vy = -1 - s.rng.Float32()*3
		case components.ParticleExplosion:
			color = explosionColors[s.rng.Intn(len(explosionColors))]
			size = 4 + s.rng.Float32()*6
			vx = s.uniform(10)
			vy = s.uniform(10)
		case components.ParticleDrag:
			color = dragColors[s.rng.Intn(len(dragColors))]
			size = 4 + s.rng.Float32()*6
			vx = s.uniform(2)
			vy = 2 + s.rng.Float32()*3
		case components.ParticleTrail:
			color = trailColors[s.rng.Intn(len(trailColors))]
			size = 2 + s.rng.Float32()*3
			vx = s.uniform(0.5)
			vy = s.uniform(0.5)
		case components.ParticleMicro:
			color = microColor
			size = 5
			vx = s.uniform(float32(s.cfg.MicroSpeed))
			vy = s.uniform(float32(s.cfg.MicroSpeed))
			life = int32(s.cfg.MicroLife)
		default:
			continue
		}

		jitter := float32(s.cfg.SpawnJitter)
		px := x + s.uniform(jitter)
		py := y + s.uniform(jitter)

		pos := components.Position{X: px, Y: py}
		vel := components.Velocity{X: vx, Y: vy}
		lt := components.Lifetime{Remaining: life}
		style := components.ParticleStyle{Kind: kind, Size: size, Color: color}
		s.mapper.NewEntity(&pos, &vel, &lt, &style)
		s.count++
		spawned++
	}
	return spawned
}

// EmitMicroBurst spawns the secondary explosion at an exact position,
// without the anchor jitter used by primary emissions.
func (s *ParticleSystem) EmitMicroBurst(x, y float32) int {
	spawned := 0
	for i := 0; i < s.cfg.MicroCount; i++ {
		if s.count >= s.cfg.MaxParticles {
			break
		}
		pos := components.Position{X: x, Y: y}
		vel := components.Velocity{
			X: s.uniform(float32(s.cfg.MicroSpeed)),
			Y: s.uniform(float32(s.cfg.MicroSpeed)),
		}
		lt := components.Lifetime{Remaining: int32(s.cfg.MicroLife)}
		style := components.ParticleStyle{Kind: components.ParticleMicro, Size: 5, Color: microColor}
		s.mapper.NewEntity(&pos, &vel, &lt, &style)
		s.count++
		spawned++
	}
	return spawned
}

// Update integrates every live particle and removes the expired ones.
// Removal is two-pass: the query completes before any entity is
// touched, so in-tick emission can never invalidate the iteration.
// Returns the number of particles removed this tick.
func (s *ParticleSystem) Update() int {
	var expired []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		pos, vel, lt, _ := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		lt.Remaining--

		if lt.Remaining <= 0 {
			expired = append(expired, query.Entity())
		}
	}

	for _, e := range expired {
		s.mapper.Remove(e)
		s.count--
	}
	return len(expired)
}

// Views appends the render state of every live particle to dst.
func (s *ParticleSystem) Views(dst []ParticleView) []ParticleView {
	query := s.filter.Query()
	for query.Next() {
		pos, _, lt, style := query.Get()
		maxLife := s.lifespan
		if style.Kind == components.ParticleMicro {
			maxLife = int32(s.cfg.MicroLife)
		}
		dst = append(dst, ParticleView{
			X:       pos.X,
			Y:       pos.Y,
			Size:    style.Size,
			Color:   style.Color,
			Kind:    style.Kind,
			Life:    lt.Remaining,
			MaxLife: maxLife,
		})
	}
	return dst
}

// Count returns the current number of live particles.
func (s *ParticleSystem) Count() int {
	return s.count
}

// uniform returns a value drawn uniformly from [-bound, bound).
func (s *ParticleSystem) uniform(bound float32) float32 {
	return (s.rng.Float32()*2 - 1) * bound
}
