// Package train implements the conjugate-gradient training algorithm: the
// direction updater, the stopping-criteria evaluator, the training-history
// recorder and the orchestration loop that ties them to the external
// performance functional and line search.
package train

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Method selects the formula used to compute the conjugate-gradient
// coefficient β. It is fixed for the whole training run.
type Method int

// Available training-direction methods.
const (
	// PolakRibiere uses β = g·(g - gPrev) / ‖gPrev‖², clamped to zero when
	// negative (the PR+ safeguard, which restarts with gradient descent).
	PolakRibiere Method = iota

	// FletcherReeves uses β = ‖g‖² / ‖gPrev‖². The ratio of squared norms
	// can never be negative, so no clamp is applied.
	FletcherReeves
)

// String returns the short method name, "PR" or "FR".
func (m Method) String() string {
	switch m {
	case PolakRibiere:
		return "PR"
	case FletcherReeves:
		return "FR"
	default:
		return "unknown"
	}
}

// ParseMethod converts a short method name back into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "PR":
		return PolakRibiere, nil
	case "FR":
		return FletcherReeves, nil
	default:
		return 0, fmt.Errorf("train: unknown training direction method %q", s)
	}
}

// PRBeta computes the Polak-Ribière coefficient
//
//	β = g·(g - gPrev) / ‖gPrev‖²
//
// clamped to zero when negative. A zero previous-gradient norm also yields
// zero, degrading the update to plain gradient descent instead of failing.
func PRBeta(prevGradient, gradient []float64) float64 {
	denominator := floats.Dot(prevGradient, prevGradient)
	if denominator == 0 {
		return 0
	}
	numerator := floats.Dot(gradient, gradient) - floats.Dot(gradient, prevGradient)
	beta := numerator / denominator
	if beta < 0 {
		return 0
	}
	return beta
}

// FRBeta computes the Fletcher-Reeves coefficient
//
//	β = ‖g‖² / ‖gPrev‖²
//
// with the same zero-denominator guard as PRBeta. The result is always ≥ 0.
func FRBeta(prevGradient, gradient []float64) float64 {
	denominator := floats.Dot(prevGradient, prevGradient)
	if denominator == 0 {
		return 0
	}
	return floats.Dot(gradient, gradient) / denominator
}

// Direction computes the next conjugate search direction
//
//	d = -g + β·dPrev
//
// with β given by the selected method. It is a pure function: a fresh slice
// is returned and no input is mutated.
func Direction(method Method, prevGradient, gradient, prevDirection []float64) []float64 {
	var beta float64
	switch method {
	case FletcherReeves:
		beta = FRBeta(prevGradient, gradient)
	default:
		beta = PRBeta(prevGradient, gradient)
	}

	direction := SteepestDescent(gradient)
	floats.AddScaled(direction, beta, prevDirection)
	return direction
}

// SteepestDescent returns -g, the direction used at the first iteration of
// every run, before a previous gradient exists.
func SteepestDescent(gradient []float64) []float64 {
	direction := make([]float64, len(gradient))
	for i, g := range gradient {
		direction[i] = -g
	}
	return direction
}
