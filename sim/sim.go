// Package sim runs the fixed-tick pet simulation: physics, the behavior
// state machine, input application, external-event reactions, and the
// effect populations. The package is headless; rendering consumes the
// snapshot it produces.
package sim

import (
	"log/slog"
	"math"
	"math/rand"
	"sync"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/scamp/camera"
	"github.com/pthm-cable/scamp/config"
	"github.com/pthm-cable/scamp/effects"
	"github.com/pthm-cable/scamp/telemetry"
)

// PointerSource supplies the pointer position in desktop coordinates.
// ok is false when no pointer data is available (headless runs, pointer
// off-screen); the behavior layer then treats the target distance as
// zero and suppresses movement instead of faulting.
type PointerSource interface {
	Pointer() (x, y float32, ok bool)
}

// Options configures a new simulation.
type Options struct {
	Seed      int64
	Pointer   PointerSource
	OutputDir string
	LogStats  bool
}

// Simulation owns the full simulation state and advances it one fixed
// tick at a time. All methods must be called from the simulation
// goroutine except Enqueue, which is safe from any goroutine.
type Simulation struct {
	cfg *config.Config
	rng *rand.Rand

	world *ecs.World
	pet   Pet

	// Motion to restore when unpausing
	prevMotion MotionState

	particles *effects.ParticleSystem
	shots     *effects.ProjectileSystem
	messages  *effects.MessageSystem
	cam       *camera.Camera

	pointer PointerSource

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	tick int32

	// External events queued between ticks
	mu      sync.Mutex
	pending []string

	// Drag state
	dragOffsetX, dragOffsetY float32
	lastDragX, lastDragY     float32
	lastDragTime             float64
	throwVX, throwVY         float32

	// Attack aura animation
	auraFrame int32
	auraTick  int32

	// Reused snapshot buffers
	particleViews []effects.ParticleView
	shotViews     []effects.ProjectileView
	messageViews  []effects.MessageView
}

// New creates a simulation from the given configuration.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	world := ecs.NewWorld()

	particles := effects.NewParticleSystem(world, cfg.Particles, rng)

	s := &Simulation{
		cfg:       cfg,
		rng:       rng,
		world:     world,
		particles: particles,
		shots:     effects.NewProjectileSystem(world, cfg.Shots, particles),
		messages:  effects.NewMessageSystem(world, cfg.Messages, rng),
		cam:       camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		pointer:   opts.Pointer,
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT32),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    output,
		logStats:  opts.LogStats,
	}

	s.pet = Pet{
		X:           (cfg.Derived.ScreenW32 - cfg.Derived.WindowW32) / 2,
		Y:           100,
		Scale:       1,
		Squash:      1,
		FacingRight: true,
		Motion:      MotionFalling,
		Mode:        ModeIdle,
	}
	s.pet.IdleJumpCooldown = s.reseedIdleJump()
	s.cam.SetOrigin(s.pet.X, s.pet.Y)

	return s, nil
}

// Pet returns a copy of the current pet state.
func (s *Simulation) Pet() Pet {
	return s.pet
}

// Tick returns the current tick count.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// SetPointerSource replaces the pointer source.
func (s *Simulation) SetPointerSource(p PointerSource) {
	s.pointer = p
}

// Step advances the simulation one tick. now is the wall-clock time in
// seconds, sampled once per tick so the idle bob is a pure function of
// its input.
func (s *Simulation) Step(now float64) {
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseEvents)
	s.drainEvents()

	px, py, pok := s.pointerLocal()
	active := s.pet.Motion != MotionDragging && s.pet.Motion != MotionPaused

	s.perf.StartPhase(telemetry.PhasePhysics)
	if active {
		s.stepPhysics()
	}

	s.perf.StartPhase(telemetry.PhaseBehavior)
	if active {
		s.stepBehavior(now, px, py, pok)
	}
	s.stepVisuals()

	s.perf.StartPhase(telemetry.PhaseParticles)
	s.collector.RecordParticlesExpired(s.particles.Update())

	s.perf.StartPhase(telemetry.PhaseProjectiles)
	res := s.shots.Update(px, py, pok)
	s.collector.RecordShotsResolved(res.Hits, res.Expired)

	s.perf.StartPhase(telemetry.PhaseMessages)
	s.collector.RecordMessagesExpired(s.messages.Update())

	s.perf.StartPhase(telemetry.PhaseCamera)
	s.cam.SetOrigin(s.pet.X, s.pet.Y)
	s.cam.Step(s.rng)

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.collector.RecordSpeed(math.Hypot(float64(s.pet.VX), float64(s.pet.VY)))
	s.tick++
	if s.collector.ShouldFlush(s.tick) {
		s.flushWindow()
	}

	s.perf.EndTick()
}

// stepVisuals recovers squash toward rest and advances the spin and
// aura animations. Runs every tick, including while dragging or paused.
func (s *Simulation) stepVisuals() {
	s.pet.Squash += (1 - s.pet.Squash) * float32(s.cfg.Physics.SquashDamping)

	if s.pet.SpinFrames > 0 {
		s.pet.SpinFrames--
	}

	if s.pet.Mode == ModeAttack {
		s.auraTick++
		if s.auraTick >= int32(s.cfg.Behavior.AuraFrameTicks) {
			s.auraTick = 0
			s.auraFrame = (s.auraFrame + 1) % int32(s.cfg.Behavior.AuraFrameCount)
		}
	}
}

// pointerLocal returns the pointer position in window-local
// coordinates.
func (s *Simulation) pointerLocal() (x, y float32, ok bool) {
	if s.pointer == nil {
		return 0, 0, false
	}
	sx, sy, ok := s.pointer.Pointer()
	if !ok {
		return 0, 0, false
	}
	return sx - s.pet.X, sy - s.pet.Y, true
}

// anchor returns the pet's window-local center.
func (s *Simulation) anchor() (x, y float32) {
	return s.cfg.Derived.WindowW32 / 2, s.cfg.Derived.WindowH32 / 2
}

// postMessage spawns a floating message above the pet anchor.
func (s *Simulation) postMessage(text string) {
	ax, ay := s.anchor()
	s.messages.Post(text, ax, ay-float32(s.cfg.Messages.AnchorRise))
	s.collector.RecordMessagePosted()
}

// reseedIdleJump draws the next idle hop cooldown.
func (s *Simulation) reseedIdleJump() int32 {
	lo := s.cfg.Behavior.IdleJumpMinTicks
	hi := s.cfg.Behavior.IdleJumpMaxTicks
	if hi <= lo {
		return int32(lo)
	}
	return int32(lo + s.rng.Intn(hi-lo))
}

// uniform returns a value drawn uniformly from [-bound, bound).
func (s *Simulation) uniform(bound float32) float32 {
	return (s.rng.Float32()*2 - 1) * bound
}

// flushWindow emits the telemetry for the completed stats window.
func (s *Simulation) flushWindow() {
	stats := s.collector.Flush(s.tick,
		telemetry.LiveCounts{
			Particles:   s.particles.Count(),
			Projectiles: s.shots.Count(),
			Messages:    s.messages.Count(),
		},
		telemetry.PetSample{
			X:      float64(s.pet.X),
			Y:      float64(s.pet.Y),
			Scale:  float64(s.pet.Scale),
			Mode:   s.pet.Mode.String(),
			Motion: s.pet.Motion.String(),
		})

	if s.logStats {
		stats.LogStats()
	}
	if err := s.output.WriteTelemetry(stats); err != nil {
		slog.Error("writing telemetry", "error", err)
	}

	perfStats := s.perf.Stats()
	if s.logStats {
		perfStats.LogStats()
	}
	if err := s.output.WritePerf(perfStats, s.tick); err != nil {
		slog.Error("writing perf", "error", err)
	}
}

// Close flushes and closes the output files.
func (s *Simulation) Close() error {
	return s.output.Close()
}
