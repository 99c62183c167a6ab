package effects

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/config"
)

func newTestProjectiles(t *testing.T) (*ProjectileSystem, *ParticleSystem) {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	world := ecs.NewWorld()
	particles := NewParticleSystem(world, cfg.Particles, rand.New(rand.NewSource(11)))
	return NewProjectileSystem(world, cfg.Shots, particles), particles
}

func TestLaunchVelocityHasConfiguredSpeed(t *testing.T) {
	shots, _ := newTestProjectiles(t)
	shots.Launch(250, 250, 1000, 600)

	before := shots.Views(nil)
	shots.Update(1e6, 1e6, true) // target far away, no collision
	after := shots.Views(nil)

	dx := float64(after[0].X - before[0].X)
	dy := float64(after[0].Y - before[0].Y)
	speed := math.Hypot(dx, dy)
	if math.Abs(speed-20) > 1e-3 {
		t.Errorf("per-tick displacement %v, want 20", speed)
	}

	// Direction points from origin toward the target
	wantAngle := math.Atan2(600-250, 1000-250)
	gotAngle := math.Atan2(dy, dx)
	if math.Abs(wantAngle-gotAngle) > 1e-4 {
		t.Errorf("launch angle %v, want %v", gotAngle, wantAngle)
	}
}

func TestCollisionRemovesAndBursts(t *testing.T) {
	shots, particles := newTestProjectiles(t)

	// Target sits 10 units away, inside the 30-unit collision radius:
	// the first tick must detonate.
	shots.Launch(250, 250, 260, 250)
	res := shots.Update(260, 250, true)

	if res.Hits != 1 || res.Expired != 0 {
		t.Fatalf("result = %+v, want 1 hit, 0 expired", res)
	}
	if shots.Count() != 0 {
		t.Errorf("projectile count = %d after hit, want 0", shots.Count())
	}
	if particles.Count() != 7 {
		t.Errorf("secondary particles = %d, want exactly 7 in the same tick", particles.Count())
	}
}

func TestExpiryAfterLifespanBursts(t *testing.T) {
	shots, particles := newTestProjectiles(t)
	shots.Launch(0, 0, 1, 0)

	// Default lifespan is 40 ticks; no collision target available.
	for i := 0; i < 39; i++ {
		res := shots.Update(0, 0, false)
		if res.Hits != 0 || res.Expired != 0 {
			t.Fatalf("projectile died early at tick %d: %+v", i+1, res)
		}
	}
	res := shots.Update(0, 0, false)
	if res.Expired != 1 {
		t.Fatalf("expired = %d on tick 40, want 1", res.Expired)
	}
	if particles.Count() != 7 {
		t.Errorf("secondary particles = %d, want 7", particles.Count())
	}
}

func TestNoTargetDataSkipsCollision(t *testing.T) {
	shots, _ := newTestProjectiles(t)
	shots.Launch(0, 0, 100, 0)

	// Even sitting on top of the nominal target, targetOK=false means
	// no collision is evaluated.
	res := shots.Update(0, 0, false)
	if res.Hits != 0 {
		t.Errorf("hit recorded with no target data: %+v", res)
	}
	if shots.Count() != 1 {
		t.Errorf("projectile removed with no target data")
	}
}

func TestCollisionTracksLiveTarget(t *testing.T) {
	shots, _ := newTestProjectiles(t)

	// Launched toward a point the target has since left: no hit there.
	shots.Launch(0, 0, 1000, 0)

	// Move the target onto the projectile's path at tick 3 (x ≈ 60).
	var hit bool
	for i := 0; i < 5; i++ {
		res := shots.Update(60, 0, true)
		if res.Hits > 0 {
			hit = true
			break
		}
	}
	if !hit {
		t.Error("projectile never hit the moved target")
	}
}
