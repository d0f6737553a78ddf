// Package functional defines the performance functional contract consumed by
// the training algorithms, together with a small set of built-in objectives
// used for tests, examples and the CLI.
//
// A performance functional owns the parameter vector of the model being
// trained. The trainer reads the vector, writes updated parameters back, and
// asks for the performance (the scalar objective being minimized) and its
// gradient at the stored parameters.
package functional

// PerformanceFunctional is the scalar objective being minimized together
// with its gradient with respect to the parameters.
//
// Implementations own the parameter vector: Performance and Gradient are
// evaluated at whatever parameters were last stored via SetParameters.
// Parameters and Gradient must always return vectors of equal length.
type PerformanceFunctional interface {
	// Parameters returns the current parameter vector. Callers must not
	// assume the returned slice aliases internal storage.
	Parameters() []float64

	// SetParameters stores a new parameter vector.
	SetParameters(parameters []float64)

	// Performance evaluates the objective at the stored parameters.
	Performance() float64

	// Gradient evaluates the objective gradient at the stored parameters.
	Gradient() []float64
}

// SelectionEvaluator is an optional extension of PerformanceFunctional for
// objectives that can also be evaluated on held-out selection data. Trainers
// use it for early stopping; a functional that does not implement it simply
// disables that criterion.
type SelectionEvaluator interface {
	// SelectionPerformance evaluates the objective on the selection data
	// at the stored parameters.
	SelectionPerformance() float64
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
