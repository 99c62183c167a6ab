package sim

import (
	"strings"
	"testing"
)

func TestReactionAppliesOnNextTick(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Y = 300
	s.Enqueue("hello!")

	s.Step(0)

	if s.messages.Count() != 1 {
		t.Fatalf("messages = %d after reaction, want 1", s.messages.Count())
	}
	if s.pet.VY >= 0 {
		t.Errorf("vy = %v after startle, want upward", s.pet.VY)
	}
	if s.pet.Motion != MotionFalling {
		t.Errorf("motion = %v after startle, want FALLING", s.pet.Motion)
	}
	if s.particles.Count() != s.cfg.Reaction.BurstCount {
		t.Errorf("particles = %d, want burst of %d", s.particles.Count(), s.cfg.Reaction.BurstCount)
	}
	if !s.cam.Shaking() {
		t.Error("screen shake not started")
	}
}

func TestReactionTruncatesLongText(t *testing.T) {
	s := newTestSim(t, nil)
	s.Enqueue(strings.Repeat("я", 80)) // multi-byte runes

	s.Step(0)

	snap := s.Snapshot()
	if len(snap.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(snap.Messages))
	}
	got := []rune(snap.Messages[0].Text)
	// max_len runes plus the ellipsis
	if len(got) != s.cfg.Reaction.MaxLen+1 {
		t.Errorf("message length = %d runes, want %d", len(got), s.cfg.Reaction.MaxLen+1)
	}
	if got[len(got)-1] != '…' {
		t.Error("truncated message missing ellipsis")
	}
}

func TestShortReactionKeptVerbatim(t *testing.T) {
	s := newTestSim(t, nil)
	s.Enqueue("nice jump")

	s.Step(0)

	snap := s.Snapshot()
	if snap.Messages[0].Text != "nice jump" {
		t.Errorf("message = %q, want verbatim text", snap.Messages[0].Text)
	}
}

func TestReactionWhileDraggingSkipsStartle(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Motion = MotionDragging
	s.Enqueue("boo")

	s.Step(0)

	if s.pet.VY != 0 || s.pet.Motion != MotionDragging {
		t.Errorf("startle moved a dragged pet: vy=%v motion=%v", s.pet.VY, s.pet.Motion)
	}
	// The visual feedback still fires
	if s.messages.Count() != 1 {
		t.Error("message suppressed during drag")
	}
	if !s.cam.Shaking() {
		t.Error("shake suppressed during drag")
	}
}

func TestMultipleEventsDrainInOneTick(t *testing.T) {
	s := newTestSim(t, nil)
	s.Enqueue("one")
	s.Enqueue("two")
	s.Enqueue("three")

	s.Step(0)

	if s.messages.Count() != 3 {
		t.Errorf("messages = %d, want all 3 drained", s.messages.Count())
	}

	s.Step(0)
	if s.messages.Count() != 3 {
		t.Errorf("messages = %d on the next tick, want no re-processing", s.messages.Count())
	}
}

func TestSnapshotRotationDuringSpin(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Motion = MotionDragging // hold still
	s.pet.SpinFrames = int32(s.cfg.Behavior.SpinFrames)

	first := s.Snapshot().Pet.RotationDeg
	if first != 0 {
		t.Errorf("rotation = %v at spin start, want 0", first)
	}

	s.Step(0)
	mid := s.Snapshot().Pet.RotationDeg
	if mid <= 0 || mid >= 360 {
		t.Errorf("rotation = %v mid-spin, want in (0, 360)", mid)
	}

	for i := 0; i < s.cfg.Behavior.SpinFrames; i++ {
		s.Step(0)
	}
	if got := s.Snapshot().Pet.RotationDeg; got != 0 {
		t.Errorf("rotation = %v after the spin ended, want 0", got)
	}
}
