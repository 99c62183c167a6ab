// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Behavior  BehaviorConfig  `yaml:"behavior"`
	Particles ParticlesConfig `yaml:"particles"`
	Shots     ShotsConfig     `yaml:"shots"`
	Messages  MessagesConfig  `yaml:"messages"`
	Reaction  ReactionConfig  `yaml:"reaction"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-" json:"-"`
}

// ScreenConfig holds desktop/display settings.
type ScreenConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	TargetFPS     int `yaml:"target_fps"`
	TaskbarOffset int `yaml:"taskbar_offset"` // Pixels reserved for the taskbar (may be negative)
}

// WindowConfig holds the pet window and sprite geometry.
type WindowConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	SpriteWidth  int     `yaml:"sprite_width"`
	SpriteHeight int     `yaml:"sprite_height"`
	MinScale     float64 `yaml:"min_scale"`
	MaxScale     float64 `yaml:"max_scale"`
	ScaleStep    float64 `yaml:"scale_step"`
}

// PhysicsConfig holds the integrator constants.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`             // Seconds per tick
	Gravity       float64 `yaml:"gravity"`        // Per-tick vertical acceleration
	MaxFallSpeed  float64 `yaml:"max_fall_speed"` // Terminal velocity clamp
	FrictionX     float64 `yaml:"friction_x"`     // Airborne horizontal damping
	FrictionY     float64 `yaml:"friction_y"`     // Horizontal damping on floor contact
	Bounce        float64 `yaml:"bounce"`         // Floor restitution (negative, |x| < 1)
	EdgeBounce    float64 `yaml:"edge_bounce"`    // Screen-edge restitution (negative, |x| < 1)
	EdgeMargin    float64 `yaml:"edge_margin"`    // Allowed off-screen travel at both edges
	FloorMargin   float64 `yaml:"floor_margin"`   // Sprite inset above the computed floor line
	SettleSpeed   float64 `yaml:"settle_speed"`   // |vy| at or below this settles instead of bouncing
	SnapSpeed     float64 `yaml:"snap_speed"`     // |vx| below this snaps to zero on the floor
	SquashDamping float64 `yaml:"squash_damping"` // Per-tick squash recovery toward 1.0
}

// BehaviorConfig holds the behavior state machine parameters.
type BehaviorConfig struct {
	ChaseAccel        float64 `yaml:"chase_accel"`
	ChaseMaxSpeed     float64 `yaml:"chase_max_speed"`
	ChaseDeadzone     float64 `yaml:"chase_deadzone"` // Horizontal distance below which chasing stops
	TrailSpeed        float64 `yaml:"trail_speed"`    // |vx| above this emits trail particles
	AttackAccel       float64 `yaml:"attack_accel"`
	AttackMaxSpeed    float64 `yaml:"attack_max_speed"`
	AttackDeadzone    float64 `yaml:"attack_deadzone"`
	AttackCooldown    int     `yaml:"attack_cooldown"` // Ticks between projectile launches
	LungeRange        float64 `yaml:"lunge_range"`     // Pointer distance that arms a lunge
	LungeChance       float64 `yaml:"lunge_chance"`    // Per-tick lunge probability within range
	LungeSpeed        float64 `yaml:"lunge_speed"`     // Horizontal lunge burst
	LungePop          float64 `yaml:"lunge_pop"`       // Upward lunge burst (positive)
	IdleBobRate       float64 `yaml:"idle_bob_rate"`   // Sinusoid angular rate (rad/s)
	IdleBobAmplitude  float64 `yaml:"idle_bob_amplitude"`
	IdleJumpMinTicks  int     `yaml:"idle_jump_min_ticks"` // Hop cooldown reseed range
	IdleJumpMaxTicks  int     `yaml:"idle_jump_max_ticks"`
	IdleJumpSpeedX    float64 `yaml:"idle_jump_speed_x"` // Hop vx drawn from ±this
	IdleJumpMinSpeedY float64 `yaml:"idle_jump_min_speed_y"`
	IdleJumpMaxSpeedY float64 `yaml:"idle_jump_max_speed_y"`
	SuperJumpSpeed    float64 `yaml:"super_jump_speed"` // Double-click launch speed (positive)
	SuperJumpBurst    int     `yaml:"super_jump_burst"` // Explosion particles per super jump
	DragBurst         int     `yaml:"drag_burst"`       // Drag particles on pickup
	SpinFrames        int     `yaml:"spin_frames"`      // Frames per spin flourish
	AuraFrameTicks    int     `yaml:"aura_frame_ticks"` // Ticks per aura animation frame
	AuraFrameCount    int     `yaml:"aura_frame_count"`
}

// ParticlesConfig holds particle subsystem parameters.
type ParticlesConfig struct {
	Lifespan     int     `yaml:"lifespan"`      // Primary kind lifespan in ticks
	MicroLife    int     `yaml:"micro_life"`    // Micro-explosion lifespan in ticks
	MicroCount   int     `yaml:"micro_count"`   // Particles per micro-explosion
	MicroSpeed   float64 `yaml:"micro_speed"`   // Micro-explosion velocity drawn from ±this
	SpawnJitter  float64 `yaml:"spawn_jitter"`  // Positional jitter around the anchor
	MaxParticles int     `yaml:"max_particles"` // Hard cap on the live population
}

// ShotsConfig holds projectile subsystem parameters.
type ShotsConfig struct {
	Speed           float64 `yaml:"speed"`
	Lifespan        int     `yaml:"lifespan"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

// MessagesConfig holds floating message parameters.
type MessagesConfig struct {
	Life         float64 `yaml:"life"`          // Initial life counter
	Decay        float64 `yaml:"decay"`         // Life subtracted per tick
	LiftRate     float64 `yaml:"lift_rate"`     // Rise per unit of elapsed life
	Jitter       int     `yaml:"jitter"`        // Per-tick positional jitter (±)
	ShadowOffset float64 `yaml:"shadow_offset"` // Shadow displacement
	AnchorRise   float64 `yaml:"anchor_rise"`   // Spawn height above the pet anchor
	FontSize     int     `yaml:"font_size"`
}

// ReactionConfig holds the external-event feedback parameters.
type ReactionConfig struct {
	MaxLen         int     `yaml:"max_len"`         // Message truncation length in runes
	Impulse        float64 `yaml:"impulse"`         // Upward velocity kick (positive)
	Jitter         float64 `yaml:"jitter"`          // Horizontal velocity jitter (±)
	BurstCount     int     `yaml:"burst_count"`     // Explosion particles per reaction
	ShakeIntensity float64 `yaml:"shake_intensity"` // Screen-shake offset bound
	ShakeFrames    int     `yaml:"shake_frames"`    // Screen-shake duration in ticks
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Window length in simulation seconds
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Rolling perf window in ticks
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32
	ScreenH32 float32
	WindowW32 float32
	WindowH32 float32
	FloorY    float32 // Resting window-origin Y (screen height - taskbar - window + margin)
	EdgeMinX  float32 // Leftmost allowed window-origin X
	EdgeMaxX  float32 // Rightmost allowed window-origin X
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.WindowW32 = float32(c.Window.Width)
	c.Derived.WindowH32 = float32(c.Window.Height)

	c.Derived.FloorY = float32(c.Screen.Height-c.Screen.TaskbarOffset-c.Window.Height) + float32(c.Physics.FloorMargin)
	c.Derived.EdgeMinX = float32(-c.Physics.EdgeMargin)
	c.Derived.EdgeMaxX = float32(c.Screen.Width-c.Window.Width) + float32(c.Physics.EdgeMargin)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
