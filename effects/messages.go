package effects

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/components"
	"github.com/pthm-cable/scamp/config"
)

// MessageView is the read-only per-message render state. X and Y
// already include the per-tick jitter and the life-proportional rise;
// the shadow is drawn at a fixed offset from them.
type MessageView struct {
	Text     string
	X, Y     float32
	LifeFrac float32 // 1.0 fresh, approaches 0.0 at expiry
}

// MessageSystem owns the floating message population. Messages are
// anchored where they spawn and drift upward as a deterministic
// function of elapsed life; only the jitter is random.
type MessageSystem struct {
	cfg config.MessagesConfig
	rng *rand.Rand

	mapper *ecs.Map3[components.Position, components.MessageLife, components.Message]
	filter *ecs.Filter3[components.Position, components.MessageLife, components.Message]

	count int
}

// NewMessageSystem creates a message system backed by the given world.
func NewMessageSystem(world *ecs.World, cfg config.MessagesConfig, rng *rand.Rand) *MessageSystem {
	return &MessageSystem{
		cfg:    cfg,
		rng:    rng,
		mapper: ecs.NewMap3[components.Position, components.MessageLife, components.Message](world),
		filter: ecs.NewFilter3[components.Position, components.MessageLife, components.Message](world),
	}
}

// Post spawns a message anchored at (anchorX, anchorY) in the pet's
// local frame.
func (s *MessageSystem) Post(text string, anchorX, anchorY float32) {
	pos := components.Position{X: anchorX, Y: anchorY}
	life := components.MessageLife{Remaining: float32(s.cfg.Life)}
	msg := components.Message{Text: text, InitialLife: float32(s.cfg.Life)}
	s.mapper.NewEntity(&pos, &life, &msg)
	s.count++
}

// Update resamples the jitter, decays life, and removes expired
// messages. Returns the number removed this tick.
func (s *MessageSystem) Update() int {
	jitter := s.cfg.Jitter
	var expired []ecs.Entity

	query := s.filter.Query()
	for query.Next() {
		_, life, msg := query.Get()

		if jitter > 0 {
			msg.JitterX = float32(s.rng.Intn(2*jitter+1) - jitter)
			msg.JitterY = float32(s.rng.Intn(2*jitter+1) - jitter)
		}

		life.Remaining -= float32(s.cfg.Decay)
		if life.Remaining <= 0 {
			expired = append(expired, query.Entity())
		}
	}

	for _, e := range expired {
		s.mapper.Remove(e)
		s.count--
	}
	return len(expired)
}

// Views appends the render state of every live message to dst.
func (s *MessageSystem) Views(dst []MessageView) []MessageView {
	lift := float32(s.cfg.LiftRate)

	query := s.filter.Query()
	for query.Next() {
		pos, life, msg := query.Get()

		elapsed := msg.InitialLife - life.Remaining
		dst = append(dst, MessageView{
			Text:     msg.Text,
			X:        pos.X + msg.JitterX,
			Y:        pos.Y + msg.JitterY - elapsed*lift,
			LifeFrac: life.Remaining / msg.InitialLife,
		})
	}
	return dst
}

// Count returns the current number of live messages.
func (s *MessageSystem) Count() int {
	return s.count
}
