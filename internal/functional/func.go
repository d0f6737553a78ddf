package functional

import "gonum.org/v1/gonum/diff/fd"

// Func adapts plain closures into a PerformanceFunctional.
//
// Eval is required. Grad is optional: when nil, the gradient is estimated
// with central finite differences (gonum diff/fd), which is accurate enough
// for smooth objectives but costs 2n evaluations per call.
type Func struct {
	// Eval computes the objective at a parameter vector.
	Eval func(x []float64) float64

	// Grad computes the analytic gradient at a parameter vector.
	// Optional; see the type comment.
	Grad func(x []float64) []float64

	parameters []float64
}

// NewFunc wraps an objective closure, starting from the given initial
// parameters. Pass a nil grad to fall back to finite differences.
func NewFunc(eval func(x []float64) float64, grad func(x []float64) []float64, initial []float64) *Func {
	if eval == nil {
		panic("functional: nil objective closure")
	}
	return &Func{Eval: eval, Grad: grad, parameters: cloneVector(initial)}
}

// Parameters returns a copy of the stored parameter vector.
func (f *Func) Parameters() []float64 {
	return cloneVector(f.parameters)
}

// SetParameters stores a new parameter vector.
func (f *Func) SetParameters(parameters []float64) {
	f.parameters = cloneVector(parameters)
}

// Performance evaluates the wrapped closure at the stored parameters.
func (f *Func) Performance() float64 {
	return f.Eval(f.parameters)
}

// Gradient evaluates the analytic gradient if one was supplied, otherwise
// a central finite-difference estimate.
func (f *Func) Gradient() []float64 {
	if f.Grad != nil {
		return f.Grad(f.parameters)
	}
	grad := make([]float64, len(f.parameters))
	fd.Gradient(grad, f.Eval, f.parameters, &fd.Settings{Formula: fd.Central})
	return grad
}

// WithNumericGradient wraps an existing functional, replacing its gradient
// with a central finite-difference estimate of its Performance. Useful for
// checking analytic gradients against a numeric baseline.
type WithNumericGradient struct {
	PerformanceFunctional
}

// Gradient returns the finite-difference gradient of the wrapped
// functional's performance at its stored parameters.
func (w WithNumericGradient) Gradient() []float64 {
	base := w.PerformanceFunctional.Parameters()
	grad := make([]float64, len(base))
	eval := func(x []float64) float64 {
		w.PerformanceFunctional.SetParameters(x)
		p := w.PerformanceFunctional.Performance()
		return p
	}
	fd.Gradient(grad, eval, base, &fd.Settings{Formula: fd.Central})
	w.PerformanceFunctional.SetParameters(base)
	return grad
}
