package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Pet state at window end
	PetX      float64 `csv:"pet_x"`
	PetY      float64 `csv:"pet_y"`
	PetScale  float64 `csv:"pet_scale"`
	PetMode   string  `csv:"pet_mode"`
	PetMotion string  `csv:"pet_motion"`

	// Live effect populations at window end
	Particles   int `csv:"particles"`
	Projectiles int `csv:"projectiles"`
	Messages    int `csv:"messages"`

	// Movement events during window
	Bounces    int `csv:"bounces"`
	Settles    int `csv:"settles"`
	EdgeHits   int `csv:"edge_hits"`
	Resets     int `csv:"resets"`
	IdleHops   int `csv:"idle_hops"`
	SuperJumps int `csv:"super_jumps"`
	Lunges     int `csv:"lunges"`

	// Projectiles
	ShotsFired   int     `csv:"shots_fired"`
	ShotsHit     int     `csv:"shots_hit"`
	ShotsExpired int     `csv:"shots_expired"`
	HitRate      float64 `csv:"hit_rate"`

	// Effect churn
	ParticlesSpawned int `csv:"particles_spawned"`
	ParticlesExpired int `csv:"particles_expired"`
	MessagesPosted   int `csv:"messages_posted"`
	MessagesExpired  int `csv:"messages_expired"`

	// Interaction
	Reactions    int `csv:"reactions"`
	ModeChanges  int `csv:"mode_changes"`
	DragSessions int `csv:"drag_sessions"`
	Throws       int `csv:"throws"`

	// Speed distribution (per-tick samples)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP95  float64 `csv:"speed_p95"`
}

// SummarizeSamples computes the mean, median, and 95th percentile of a
// sample set. Returns zeros for an empty set.
func SummarizeSamples(values []float64) (mean, p50, p95 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return mean, p50, p95
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("pet_x", s.PetX),
		slog.Float64("pet_y", s.PetY),
		slog.Float64("pet_scale", s.PetScale),
		slog.String("pet_mode", s.PetMode),
		slog.String("pet_motion", s.PetMotion),
		slog.Int("particles", s.Particles),
		slog.Int("projectiles", s.Projectiles),
		slog.Int("messages", s.Messages),
		slog.Int("bounces", s.Bounces),
		slog.Int("settles", s.Settles),
		slog.Int("edge_hits", s.EdgeHits),
		slog.Int("resets", s.Resets),
		slog.Int("idle_hops", s.IdleHops),
		slog.Int("super_jumps", s.SuperJumps),
		slog.Int("lunges", s.Lunges),
		slog.Int("shots_fired", s.ShotsFired),
		slog.Int("shots_hit", s.ShotsHit),
		slog.Int("shots_expired", s.ShotsExpired),
		slog.Float64("hit_rate", s.HitRate),
		slog.Int("particles_spawned", s.ParticlesSpawned),
		slog.Int("particles_expired", s.ParticlesExpired),
		slog.Int("messages_posted", s.MessagesPosted),
		slog.Int("messages_expired", s.MessagesExpired),
		slog.Int("reactions", s.Reactions),
		slog.Int("mode_changes", s.ModeChanges),
		slog.Int("drag_sessions", s.DragSessions),
		slog.Int("throws", s.Throws),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p95", s.SpeedP95),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"pet_x", s.PetX,
		"pet_y", s.PetY,
		"pet_scale", s.PetScale,
		"pet_mode", s.PetMode,
		"pet_motion", s.PetMotion,
		"particles", s.Particles,
		"projectiles", s.Projectiles,
		"messages", s.Messages,
		"bounces", s.Bounces,
		"settles", s.Settles,
		"edge_hits", s.EdgeHits,
		"resets", s.Resets,
		"idle_hops", s.IdleHops,
		"super_jumps", s.SuperJumps,
		"lunges", s.Lunges,
		"shots_fired", s.ShotsFired,
		"shots_hit", s.ShotsHit,
		"shots_expired", s.ShotsExpired,
		"hit_rate", s.HitRate,
		"reactions", s.Reactions,
		"mode_changes", s.ModeChanges,
		"drag_sessions", s.DragSessions,
		"throws", s.Throws,
		"speed_mean", s.SpeedMean,
		"speed_p95", s.SpeedP95,
	)
}
