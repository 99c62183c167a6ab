package sim

import "testing"

func TestSetModeReentryIsNoOp(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.VX = 5

	s.SetMode(ModeIdle) // already in IDLE

	if s.messages.Count() != 0 {
		t.Error("re-entering the current mode posted a message")
	}
	if s.pet.VX != 5 {
		t.Errorf("vx = %v after re-entry, want untouched 5", s.pet.VX)
	}
}

func TestSetModeAttackDampsVelocity(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.VX = 10
	s.pet.VY = -20

	s.SetMode(ModeAttack)

	if absDiff32(s.pet.VX, 1) > 1e-4 || absDiff32(s.pet.VY, -2) > 1e-4 {
		t.Errorf("velocity (%v, %v) entering attack, want damped (1, -2)", s.pet.VX, s.pet.VY)
	}
	if s.messages.Count() != 1 {
		t.Errorf("messages = %d on mode change, want the announcement", s.messages.Count())
	}
}

func TestAdjustScaleClamps(t *testing.T) {
	s := newTestSim(t, nil)

	s.AdjustScale(100)
	if s.pet.Scale != float32(s.cfg.Window.MaxScale) {
		t.Errorf("scale = %v, want clamp at %v", s.pet.Scale, s.cfg.Window.MaxScale)
	}
	s.AdjustScale(-100)
	if s.pet.Scale != float32(s.cfg.Window.MinScale) {
		t.Errorf("scale = %v, want clamp at %v", s.pet.Scale, s.cfg.Window.MinScale)
	}
	if s.messages.Count() != 2 {
		t.Errorf("messages = %d after two scale changes, want 2", s.messages.Count())
	}
}

func TestStartDragHitRadius(t *testing.T) {
	s := newTestSim(t, nil)
	ax := s.pet.X + s.cfg.Derived.WindowW32/2
	ay := s.pet.Y + s.cfg.Derived.WindowH32/2

	// Default scale 1.0: hit radius is half the 120px sprite width.
	if !s.StartDrag(ax+50, ay, 0) {
		t.Error("grab 50px from center missed, want hit within the 60px radius")
	}
	s.EndDrag()

	if s.StartDrag(ax+70, ay, 0) {
		t.Error("grab 70px from center hit, want miss outside the 60px radius")
	}
}

func TestDragPinsAndThrows(t *testing.T) {
	s := newTestSim(t, nil)
	startX, startY := s.pet.X, s.pet.Y
	ax := startX + s.cfg.Derived.WindowW32/2
	ay := startY + s.cfg.Derived.WindowH32/2

	if !s.StartDrag(ax, ay, 0) {
		t.Fatal("grab at center missed")
	}
	if s.pet.Motion != MotionDragging || s.pet.VX != 0 {
		t.Fatalf("motion = %v vx = %v after grab", s.pet.Motion, s.pet.VX)
	}

	// Move 40px right after the 20ms sample gate
	s.DragMove(ax+40, ay, 0.05)
	if s.pet.X != startX+40 {
		t.Errorf("x = %v after drag move, want %v", s.pet.X, startX+40)
	}

	s.EndDrag()
	if s.pet.Motion != MotionFalling {
		t.Errorf("motion = %v after release, want FALLING", s.pet.Motion)
	}
	if absDiff32(s.pet.VX, 20) > 1e-3 {
		t.Errorf("vx = %v after throw, want 40 * 0.5 = 20", s.pet.VX)
	}
}

func TestDragMoveInsideGateKeepsStaleVelocity(t *testing.T) {
	s := newTestSim(t, nil)
	ax := s.pet.X + s.cfg.Derived.WindowW32/2
	ay := s.pet.Y + s.cfg.Derived.WindowH32/2

	s.StartDrag(ax, ay, 0)
	s.DragMove(ax+100, ay, 0.01) // inside the 20ms gate: no sample
	s.EndDrag()

	if s.pet.VX != 0 {
		t.Errorf("vx = %v from an unsampled move, want 0", s.pet.VX)
	}
}

func TestSuperJump(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Motion = MotionIdle
	s.pet.Y = s.cfg.Derived.FloorY

	s.SuperJump()

	if s.pet.VY != -float32(s.cfg.Behavior.SuperJumpSpeed) {
		t.Errorf("vy = %v, want %v", s.pet.VY, -s.cfg.Behavior.SuperJumpSpeed)
	}
	if s.pet.Motion != MotionFalling {
		t.Errorf("motion = %v after super jump, want FALLING", s.pet.Motion)
	}
	if s.pet.SpinFrames != int32(s.cfg.Behavior.SpinFrames) {
		t.Errorf("spin frames = %d, want %d", s.pet.SpinFrames, s.cfg.Behavior.SpinFrames)
	}
	if s.particles.Count() != s.cfg.Behavior.SuperJumpBurst {
		t.Errorf("particles = %d, want %d", s.particles.Count(), s.cfg.Behavior.SuperJumpBurst)
	}
	if s.messages.Count() != 1 {
		t.Errorf("messages = %d, want the shout", s.messages.Count())
	}
}

func TestSuperJumpIgnoredWhileDragging(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Motion = MotionDragging

	s.SuperJump()

	if s.pet.VY != 0 || s.pet.Motion != MotionDragging {
		t.Errorf("super jump acted during a drag: vy=%v motion=%v", s.pet.VY, s.pet.Motion)
	}
}

func TestPauseRestoresPreviousMotion(t *testing.T) {
	s := newTestSim(t, nil)
	s.pet.Motion = MotionIdle

	s.SetPaused(true)
	if s.pet.Motion != MotionPaused || !s.Paused() {
		t.Fatalf("motion = %v after pause, want PAUSED", s.pet.Motion)
	}
	if s.StartDrag(s.pet.X+250, s.pet.Y+250, 0) {
		t.Error("drag started while paused")
	}

	s.SetPaused(false)
	if s.pet.Motion != MotionIdle {
		t.Errorf("motion = %v after resume, want restored IDLE", s.pet.Motion)
	}
}
