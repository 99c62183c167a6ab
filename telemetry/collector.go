package telemetry

import "math"

// Collector accumulates simulation events within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	bounces          int
	settles          int
	edgeHits         int
	resets           int
	idleHops         int
	superJumps       int
	lunges           int
	shotsFired       int
	shotsHit         int
	shotsExpired     int
	particlesSpawned int
	particlesExpired int
	messagesPosted   int
	messagesExpired  int
	reactions        int
	modeChanges      int
	dragSessions     int
	throws           int

	// Per-tick pet speed samples for distribution stats
	speedSamples []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Round, don't truncate: a float32 dt of 0.016 widens to slightly
	// above 0.016, which would shave a tick off every window.
	ticksPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
		speedSamples:        make([]float64, 0, ticksPerWindow),
	}
}

// RecordBounce records a floor bounce.
func (c *Collector) RecordBounce() {
	c.bounces++
}

// RecordSettle records a floor settle (bounce energy fell below the
// settle threshold).
func (c *Collector) RecordSettle() {
	c.settles++
}

// RecordEdgeHit records a screen-edge reflection.
func (c *Collector) RecordEdgeHit() {
	c.edgeHits++
}

// RecordReset records an off-screen position reset.
func (c *Collector) RecordReset() {
	c.resets++
}

// RecordIdleHop records a spontaneous idle hop.
func (c *Collector) RecordIdleHop() {
	c.idleHops++
}

// RecordSuperJump records a double-click super jump.
func (c *Collector) RecordSuperJump() {
	c.superJumps++
}

// RecordLunge records an attack-mode lunge.
func (c *Collector) RecordLunge() {
	c.lunges++
}

// RecordShotFired records a projectile launch.
func (c *Collector) RecordShotFired() {
	c.shotsFired++
}

// RecordShotsResolved records projectile hits and expiries for a tick.
func (c *Collector) RecordShotsResolved(hits, expired int) {
	c.shotsHit += hits
	c.shotsExpired += expired
}

// RecordParticlesSpawned records newly emitted particles.
func (c *Collector) RecordParticlesSpawned(n int) {
	c.particlesSpawned += n
}

// RecordParticlesExpired records particles removed this tick.
func (c *Collector) RecordParticlesExpired(n int) {
	c.particlesExpired += n
}

// RecordMessagePosted records a floating message spawn.
func (c *Collector) RecordMessagePosted() {
	c.messagesPosted++
}

// RecordMessagesExpired records messages removed this tick.
func (c *Collector) RecordMessagesExpired(n int) {
	c.messagesExpired += n
}

// RecordReaction records a processed external event.
func (c *Collector) RecordReaction() {
	c.reactions++
}

// RecordModeChange records a behavior mode switch.
func (c *Collector) RecordModeChange() {
	c.modeChanges++
}

// RecordDragSession records a completed pick-up.
func (c *Collector) RecordDragSession() {
	c.dragSessions++
}

// RecordThrow records a drag release with nonzero velocity.
func (c *Collector) RecordThrow() {
	c.throws++
}

// RecordSpeed records the pet's speed for this tick.
func (c *Collector) RecordSpeed(speed float64) {
	c.speedSamples = append(c.speedSamples, speed)
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// LiveCounts holds the live effect populations at window end.
type LiveCounts struct {
	Particles   int
	Projectiles int
	Messages    int
}

// PetSample holds the pet state sampled at window end.
type PetSample struct {
	X, Y   float64
	Scale  float64
	Mode   string
	Motion string
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, live LiveCounts, pet PetSample) WindowStats {
	var hitRate float64
	if c.shotsFired > 0 {
		hitRate = float64(c.shotsHit) / float64(c.shotsFired)
	}

	speedMean, speedP50, speedP95 := SummarizeSamples(c.speedSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		PetX:      pet.X,
		PetY:      pet.Y,
		PetScale:  pet.Scale,
		PetMode:   pet.Mode,
		PetMotion: pet.Motion,

		Particles:   live.Particles,
		Projectiles: live.Projectiles,
		Messages:    live.Messages,

		Bounces:    c.bounces,
		Settles:    c.settles,
		EdgeHits:   c.edgeHits,
		Resets:     c.resets,
		IdleHops:   c.idleHops,
		SuperJumps: c.superJumps,
		Lunges:     c.lunges,

		ShotsFired:   c.shotsFired,
		ShotsHit:     c.shotsHit,
		ShotsExpired: c.shotsExpired,
		HitRate:      hitRate,

		ParticlesSpawned: c.particlesSpawned,
		ParticlesExpired: c.particlesExpired,
		MessagesPosted:   c.messagesPosted,
		MessagesExpired:  c.messagesExpired,

		Reactions:    c.reactions,
		ModeChanges:  c.modeChanges,
		DragSessions: c.dragSessions,
		Throws:       c.throws,

		SpeedMean: speedMean,
		SpeedP50:  speedP50,
		SpeedP95:  speedP95,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.bounces = 0
	c.settles = 0
	c.edgeHits = 0
	c.resets = 0
	c.idleHops = 0
	c.superJumps = 0
	c.lunges = 0
	c.shotsFired = 0
	c.shotsHit = 0
	c.shotsExpired = 0
	c.particlesSpawned = 0
	c.particlesExpired = 0
	c.messagesPosted = 0
	c.messagesExpired = 0
	c.reactions = 0
	c.modeChanges = 0
	c.dragSessions = 0
	c.throws = 0
	c.speedSamples = c.speedSamples[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
