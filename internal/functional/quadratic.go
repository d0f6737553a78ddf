package functional

// Quadratic is a separable quadratic objective
//
//	f(x) = 1/2 * Σ wᵢ·(xᵢ - cᵢ)²
//
// with analytic gradient wᵢ·(xᵢ - cᵢ). Its unique minimum is at x = c with
// performance 0, which makes it the standard smoke-test objective for the
// trainers in this module.
type Quadratic struct {
	weights    []float64
	center     []float64
	parameters []float64
}

// NewQuadratic creates an isotropic quadratic (all weights 1, center at the
// origin) of the given dimension, with parameters initialized to 1.
func NewQuadratic(dimension int) *Quadratic {
	weights := make([]float64, dimension)
	center := make([]float64, dimension)
	parameters := make([]float64, dimension)
	for i := range weights {
		weights[i] = 1
		parameters[i] = 1
	}
	return &Quadratic{weights: weights, center: center, parameters: parameters}
}

// NewWeightedQuadratic creates a quadratic with per-axis weights and center.
// The two slices must have equal length; parameters start at zero.
func NewWeightedQuadratic(weights, center []float64) *Quadratic {
	if len(weights) != len(center) {
		panic("functional: weights and center length mismatch")
	}
	return &Quadratic{
		weights:    cloneVector(weights),
		center:     cloneVector(center),
		parameters: make([]float64, len(weights)),
	}
}

// Parameters returns a copy of the stored parameter vector.
func (q *Quadratic) Parameters() []float64 {
	return cloneVector(q.parameters)
}

// SetParameters stores a new parameter vector.
func (q *Quadratic) SetParameters(parameters []float64) {
	q.parameters = cloneVector(parameters)
}

// Performance returns 1/2 * Σ wᵢ·(xᵢ-cᵢ)².
func (q *Quadratic) Performance() float64 {
	sum := 0.0
	for i, x := range q.parameters {
		d := x - q.center[i]
		sum += q.weights[i] * d * d
	}
	return 0.5 * sum
}

// Gradient returns the analytic gradient wᵢ·(xᵢ-cᵢ).
func (q *Quadratic) Gradient() []float64 {
	grad := make([]float64, len(q.parameters))
	for i, x := range q.parameters {
		grad[i] = q.weights[i] * (x - q.center[i])
	}
	return grad
}
