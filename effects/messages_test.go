package effects

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/config"
)

func newTestMessages(t *testing.T, mutate func(*config.MessagesConfig)) *MessageSystem {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	if mutate != nil {
		mutate(&cfg.Messages)
	}
	world := ecs.NewWorld()
	return NewMessageSystem(world, cfg.Messages, rand.New(rand.NewSource(21)))
}

func TestMessageExpiresAfter67Ticks(t *testing.T) {
	s := newTestMessages(t, nil)
	s.Post("MEOW!", 250, 130)

	// life 100 at 1.5/tick: still alive after 66 ticks (remaining 1.0),
	// removed on tick 67.
	for i := 0; i < 66; i++ {
		if removed := s.Update(); removed != 0 {
			t.Fatalf("message removed early at tick %d", i+1)
		}
	}
	if removed := s.Update(); removed != 1 {
		t.Fatalf("message not removed on tick 67")
	}
	if s.Count() != 0 {
		t.Errorf("count = %d after expiry, want 0", s.Count())
	}
}

func TestMessageRisesWithElapsedLife(t *testing.T) {
	s := newTestMessages(t, func(m *config.MessagesConfig) {
		m.Jitter = 0 // isolate the deterministic rise
	})
	s.Post("SCALE: 1.5", 250, 130)

	s.Update()
	first := s.Views(nil)[0]
	s.Update()
	second := s.Views(nil)[0]

	// Rise is elapsed * lift_rate: 1.5 decay * 1.5 lift = 2.25 per tick.
	if got := first.Y - second.Y; absDiff(got, 2.25) > 1e-4 {
		t.Errorf("per-tick rise = %v, want 2.25", got)
	}
	if first.X != 250 {
		t.Errorf("anchor X moved to %v with zero jitter", first.X)
	}
}

func TestMessageJitterBounded(t *testing.T) {
	s := newTestMessages(t, nil)
	s.Post("BOING!", 250, 130)

	for i := 0; i < 30; i++ {
		s.Update()
		views := s.Views(nil)
		if len(views) == 0 {
			break
		}
		v := views[0]
		if v.X < 249 || v.X > 251 {
			t.Fatalf("jitter moved X to %v, want within ±1 of 250", v.X)
		}
	}
}

func TestMessageLifeFraction(t *testing.T) {
	s := newTestMessages(t, nil)
	s.Post("HUH!", 0, 0)

	s.Update()
	v := s.Views(nil)[0]
	if absDiff(v.LifeFrac, 0.985) > 1e-4 {
		t.Errorf("life fraction = %v after one tick, want 0.985", v.LifeFrac)
	}
}

func TestMultipleMessagesIndependent(t *testing.T) {
	s := newTestMessages(t, nil)
	s.Post("first", 0, 0)
	for i := 0; i < 30; i++ {
		s.Update()
	}
	s.Post("second", 0, 0)

	// First expires 30 ticks earlier than the second.
	for i := 0; i < 37; i++ {
		s.Update()
	}
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1 (first expired, second alive)", s.Count())
	}
	if v := s.Views(nil)[0]; v.Text != "second" {
		t.Errorf("surviving message = %q, want %q", v.Text, "second")
	}
}
