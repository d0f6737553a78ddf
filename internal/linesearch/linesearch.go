// Package linesearch provides the one-dimensional training-rate algorithms
// used by the trainers to pick a step length along a search direction.
//
// An Algorithm minimizes g(t) = f(parameters + t·direction) over t > 0. It
// never reports bracketing failure as an error: it returns the best rate it
// found, and the trainer's warning/error training-rate thresholds decide how
// to classify a degenerate step.
package linesearch

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/cgtrain/internal/functional"
)

// Algorithm computes a training rate along a search direction.
//
// performance is the objective value at the functional's current parameters,
// passed in so implementations don't re-evaluate the starting point. The
// functional's stored parameters are restored before Search returns; only
// the caller applies the chosen step.
type Algorithm interface {
	Search(f functional.PerformanceFunctional, direction []float64, performance float64) (rate, resultingPerformance float64)
}

// probe evaluates g(t) = f(base + t·direction) without permanently moving
// the functional. Callers restore base when done probing.
func probe(f functional.PerformanceFunctional, base, direction []float64, t float64) float64 {
	trial := make([]float64, len(base))
	copy(trial, base)
	floats.AddScaled(trial, t, direction)
	f.SetParameters(trial)
	return f.Performance()
}

// Fixed always returns the configured rate. It is the degenerate line search
// used when the caller wants plain fixed-step descent.
type Fixed struct {
	Rate float64 // step length (default: 0.01)
}

// Search returns the fixed rate and the performance it yields.
func (s *Fixed) Search(f functional.PerformanceFunctional, direction []float64, performance float64) (float64, float64) {
	rate := s.Rate
	if rate == 0 {
		rate = 0.01
	}
	base := f.Parameters()
	result := probe(f, base, direction, rate)
	f.SetParameters(base)
	return rate, result
}
