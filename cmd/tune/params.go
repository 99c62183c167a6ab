// Package main provides CMA-ES tuning for the physics feel parameters:
// it searches for restitution and friction values that settle a thrown
// pet quickly without killing the bounce entirely.
package main

import (
	"github.com/pthm-cable/scamp/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "bounce", Path: "physics.bounce", Min: -0.9, Max: -0.2, Default: -0.6},
			{Name: "edge_bounce", Path: "physics.edge_bounce", Min: -0.95, Max: -0.3, Default: -0.8},
			{Name: "friction_x", Path: "physics.friction_x", Min: 0.80, Max: 0.99, Default: 0.95},
			{Name: "friction_y", Path: "physics.friction_y", Min: 0.50, Max: 0.95, Default: 0.8},
			{Name: "settle_speed", Path: "physics.settle_speed", Min: 0.5, Max: 3.0, Default: 1.0},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Physics.Bounce = clamped[0]
	cfg.Physics.EdgeBounce = clamped[1]
	cfg.Physics.FrictionX = clamped[2]
	cfg.Physics.FrictionY = clamped[3]
	cfg.Physics.SettleSpeed = clamped[4]
}
