package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorRecordsSamples(t *testing.T) {
	p := NewPerfCollector(10)

	for i := 0; i < 3; i++ {
		p.StartTick()
		p.StartPhase(PhasePhysics)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseParticles)
		p.EndTick()
	}

	stats := p.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("average tick duration not recorded")
	}
	if stats.MaxTickDuration < stats.MinTickDuration {
		t.Errorf("max %v < min %v", stats.MaxTickDuration, stats.MinTickDuration)
	}
	if _, ok := stats.PhaseAvg[PhasePhysics]; !ok {
		t.Error("physics phase missing from breakdown")
	}
}

func TestPerfCollectorEmptyStats(t *testing.T) {
	p := NewPerfCollector(10)
	stats := p.Stats()
	if stats.AvgTickDuration != 0 {
		t.Errorf("avg tick = %v with no samples, want 0", stats.AvgTickDuration)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("phase maps must be non-nil for empty stats")
	}
}

func TestPerfCollectorWindowRolls(t *testing.T) {
	p := NewPerfCollector(2)

	for i := 0; i < 5; i++ {
		p.StartTick()
		p.EndTick()
	}

	// Window holds at most 2 samples regardless of tick count.
	if p.sampleCount != 2 {
		t.Errorf("sample count = %d, want window size 2", p.sampleCount)
	}
}

func TestPerfStatsCSVRoundTrip(t *testing.T) {
	p := NewPerfCollector(4)
	p.StartTick()
	p.StartPhase(PhaseBehavior)
	p.EndTick()

	csv := p.Stats().ToCSV(1234)
	if csv.WindowEnd != 1234 {
		t.Errorf("window end = %d, want 1234", csv.WindowEnd)
	}
}
