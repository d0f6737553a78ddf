// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package functional

import (
	"github.com/born-ml/cgtrain/internal/functional"
)

// PerformanceFunctional is the scalar objective being minimized together
// with its gradient with respect to the parameters.
type PerformanceFunctional = functional.PerformanceFunctional

// SelectionEvaluator is the optional held-out selection metric used for
// early stopping.
type SelectionEvaluator = functional.SelectionEvaluator

// Quadratic is a separable quadratic objective with analytic gradient.
type Quadratic = functional.Quadratic

// Rosenbrock is the classic banana-valley benchmark.
type Rosenbrock = functional.Rosenbrock

// Func adapts plain closures into a PerformanceFunctional.
type Func = functional.Func

// WithNumericGradient replaces a functional's gradient with a central
// finite-difference estimate.
type WithNumericGradient = functional.WithNumericGradient

// NewQuadratic creates an isotropic quadratic of the given dimension.
func NewQuadratic(dimension int) *Quadratic {
	return functional.NewQuadratic(dimension)
}

// NewWeightedQuadratic creates a quadratic with per-axis weights and center.
func NewWeightedQuadratic(weights, center []float64) *Quadratic {
	return functional.NewWeightedQuadratic(weights, center)
}

// NewRosenbrock creates a Rosenbrock objective of the given dimension.
func NewRosenbrock(dimension int) *Rosenbrock {
	return functional.NewRosenbrock(dimension)
}

// NewFunc wraps an objective closure. Pass a nil grad to fall back to
// finite differences.
func NewFunc(eval func(x []float64) float64, grad func(x []float64) []float64, initial []float64) *Func {
	return functional.NewFunc(eval, grad, initial)
}
