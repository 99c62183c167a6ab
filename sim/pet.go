package sim

// MotionState is the physics state of the pet window.
type MotionState uint8

const (
	// MotionFalling integrates gravity until the pet reaches the floor.
	MotionFalling MotionState = iota
	// MotionIdle glides horizontally without gravity.
	MotionIdle
	// MotionDragging pins the pet to the pointer; physics is suspended.
	MotionDragging
	// MotionPaused freezes physics and behavior; effects keep running.
	MotionPaused
)

// String returns the motion state name.
func (m MotionState) String() string {
	switch m {
	case MotionFalling:
		return "FALLING"
	case MotionIdle:
		return "IDLE"
	case MotionDragging:
		return "DRAGGING"
	case MotionPaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// BehaviorMode selects which behavior branch runs each tick.
type BehaviorMode uint8

const (
	// ModeIdle bobs in place and occasionally hops.
	ModeIdle BehaviorMode = iota
	// ModeChase accelerates horizontally toward the pointer.
	ModeChase
	// ModeAttack glides toward the pointer, fires projectiles, and
	// occasionally lunges.
	ModeAttack
)

// String returns the behavior mode name.
func (m BehaviorMode) String() string {
	switch m {
	case ModeIdle:
		return "IDLE"
	case ModeChase:
		return "CHASE"
	case ModeAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}

// Pet holds the pet's kinematic and behavioral state. X and Y are the
// window origin in desktop coordinates; everything the effects see is
// window-local.
type Pet struct {
	X, Y   float32
	VX, VY float32

	Scale  float32
	Squash float32

	FacingRight bool

	Motion MotionState
	Mode   BehaviorMode

	// Behavior timers, in ticks
	AttackCooldown   int32
	IdleJumpCooldown int32
	SpinFrames       int32
}
