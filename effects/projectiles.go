package effects

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/components"
	"github.com/pthm-cable/scamp/config"
)

// ProjectileView is the read-only per-projectile render state.
type ProjectileView struct {
	X, Y float32
	ID   uint32
}

// ProjectileResult summarizes one Update pass.
type ProjectileResult struct {
	Hits    int // removed by target collision
	Expired int // removed by life expiry
}

// ProjectileSystem owns the projectile population. Every removal, by
// collision or expiry, detonates a micro-explosion burst at the
// projectile's last position.
type ProjectileSystem struct {
	cfg       config.ShotsConfig
	particles *ParticleSystem

	mapper *ecs.Map4[components.Position, components.Velocity, components.Lifetime, components.Projectile]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Lifetime, components.Projectile]

	count    int
	nextID   uint32
	radiusSq float32
}

// NewProjectileSystem creates a projectile system backed by the given
// world. The particle system receives the secondary bursts.
func NewProjectileSystem(world *ecs.World, cfg config.ShotsConfig, particles *ParticleSystem) *ProjectileSystem {
	r := float32(cfg.CollisionRadius)
	return &ProjectileSystem{
		cfg:       cfg,
		particles: particles,
		mapper:    ecs.NewMap4[components.Position, components.Velocity, components.Lifetime, components.Projectile](world),
		filter:    ecs.NewFilter4[components.Position, components.Velocity, components.Lifetime, components.Projectile](world),
		radiusSq:  r * r,
	}
}

// Launch fires a projectile from (originX, originY) toward the target
// point, both in the pet's local frame. The velocity vector is derived
// once from the launch angle and never recomputed.
func (s *ProjectileSystem) Launch(originX, originY, targetX, targetY float32) uint32 {
	angle := math.Atan2(float64(targetY-originY), float64(targetX-originX))
	speed := s.cfg.Speed

	pos := components.Position{X: originX, Y: originY}
	vel := components.Velocity{
		X: float32(math.Cos(angle) * speed),
		Y: float32(math.Sin(angle) * speed),
	}
	lt := components.Lifetime{Remaining: int32(s.cfg.Lifespan)}

	s.nextID++
	proj := components.Projectile{ID: s.nextID}
	s.mapper.NewEntity(&pos, &vel, &lt, &proj)
	s.count++
	return proj.ID
}

// Update integrates every projectile and checks collision against the
// target's current local position. Collision uses the live target each
// tick, not a precomputed path, so hits stay robust to target movement.
// targetOK is false when no pointer data is available; collision checks
// are skipped and projectiles only die by expiry.
func (s *ProjectileSystem) Update(targetX, targetY float32, targetOK bool) ProjectileResult {
	type detonation struct {
		entity ecs.Entity
		x, y   float32
		hit    bool
	}
	var dead []detonation

	query := s.filter.Query()
	for query.Next() {
		pos, vel, lt, _ := query.Get()

		pos.X += vel.X
		pos.Y += vel.Y
		lt.Remaining--

		hit := false
		if targetOK {
			dx := pos.X - targetX
			dy := pos.Y - targetY
			hit = dx*dx+dy*dy < s.radiusSq
		}

		if hit || lt.Remaining <= 0 {
			dead = append(dead, detonation{entity: query.Entity(), x: pos.X, y: pos.Y, hit: hit})
		}
	}

	var res ProjectileResult
	for _, d := range dead {
		// Burst at the last known position, then remove
		s.particles.EmitMicroBurst(d.x, d.y)
		s.mapper.Remove(d.entity)
		s.count--
		if d.hit {
			res.Hits++
		} else {
			res.Expired++
		}
	}
	return res
}

// Views appends the render state of every live projectile to dst.
func (s *ProjectileSystem) Views(dst []ProjectileView) []ProjectileView {
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, proj := query.Get()
		dst = append(dst, ProjectileView{X: pos.X, Y: pos.Y, ID: proj.ID})
	}
	return dst
}

// Count returns the current number of live projectiles.
func (s *ProjectileSystem) Count() int {
	return s.count
}
