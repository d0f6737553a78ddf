package functional

// Rosenbrock is the classic banana-valley benchmark
//
//	f(x) = Σ 100·(xᵢ₊₁ - xᵢ²)² + (1 - xᵢ)²
//
// summed over i = 0..n-2, with analytic gradient. Its global minimum is at
// x = (1, ..., 1) with performance 0. The narrow curved valley makes it a
// good stress test for conjugate directions versus plain gradient descent.
type Rosenbrock struct {
	parameters []float64
}

// NewRosenbrock creates a Rosenbrock objective of the given dimension
// (at least 2), with parameters initialized to the conventional starting
// point (-1.2, 1, -1.2, 1, ...).
func NewRosenbrock(dimension int) *Rosenbrock {
	if dimension < 2 {
		panic("functional: rosenbrock needs dimension >= 2")
	}
	parameters := make([]float64, dimension)
	for i := range parameters {
		if i%2 == 0 {
			parameters[i] = -1.2
		} else {
			parameters[i] = 1
		}
	}
	return &Rosenbrock{parameters: parameters}
}

// Parameters returns a copy of the stored parameter vector.
func (r *Rosenbrock) Parameters() []float64 {
	return cloneVector(r.parameters)
}

// SetParameters stores a new parameter vector.
func (r *Rosenbrock) SetParameters(parameters []float64) {
	r.parameters = cloneVector(parameters)
}

// Performance evaluates the Rosenbrock sum at the stored parameters.
func (r *Rosenbrock) Performance() float64 {
	x := r.parameters
	sum := 0.0
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		b := 1 - x[i]
		sum += 100*a*a + b*b
	}
	return sum
}

// Gradient evaluates the analytic Rosenbrock gradient.
func (r *Rosenbrock) Gradient() []float64 {
	x := r.parameters
	grad := make([]float64, len(x))
	for i := 0; i < len(x)-1; i++ {
		a := x[i+1] - x[i]*x[i]
		grad[i] += -400*x[i]*a - 2*(1-x[i])
		grad[i+1] += 200 * a
	}
	return grad
}
