package main

import (
	"math"

	"github.com/pthm-cable/scamp/config"
	"github.com/pthm-cable/scamp/sim"
)

// disturbances is the number of super jumps thrown at the pet per run,
// after the initial spawn drop.
const disturbances = 3

// settleCap bounds the ticks charged for a single settle; a candidate
// that never settles pays the full cap.
const settleCap = 3000

// Evaluator scores a parameter vector by running headless simulations
// and measuring how quickly the pet comes to rest after each
// disturbance.
type Evaluator struct {
	params     *ParamVector
	configPath string
	seeds      []int64
}

// NewEvaluator creates a fitness evaluator.
func NewEvaluator(params *ParamVector, configPath string, seeds []int64) *Evaluator {
	return &Evaluator{
		params:     params,
		configPath: configPath,
		seeds:      seeds,
	}
}

// Evaluate returns the mean settle time in ticks across all seeds.
// Lower is better.
func (e *Evaluator) Evaluate(raw []float64) float64 {
	var total float64
	for _, seed := range e.seeds {
		cfg, err := config.Load(e.configPath)
		if err != nil {
			return math.Inf(1)
		}
		e.params.ApplyToConfig(cfg, raw)

		ticks, err := e.run(cfg, seed)
		if err != nil {
			return math.Inf(1)
		}
		total += ticks
	}
	return total / float64(len(e.seeds))
}

// run measures the total settle time for one seeded simulation: the
// initial spawn drop plus a series of super jumps.
func (e *Evaluator) run(cfg *config.Config, seed int64) (float64, error) {
	s, err := sim.New(cfg, sim.Options{Seed: seed})
	if err != nil {
		return 0, err
	}
	defer s.Close()

	now := 0.0
	step := func() {
		s.Step(now)
		now += cfg.Physics.DT
	}

	settled := func() bool {
		pet := s.Pet()
		return pet.Motion == sim.MotionIdle &&
			math.Abs(float64(pet.VX)) < cfg.Physics.SnapSpeed
	}

	var total float64
	measure := func() {
		for i := 0; i < settleCap; i++ {
			step()
			if settled() {
				total += float64(i + 1)
				return
			}
		}
		total += settleCap
	}

	measure() // spawn drop
	for i := 0; i < disturbances; i++ {
		s.SuperJump()
		measure()
	}
	return total, nil
}
