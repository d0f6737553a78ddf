package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cgtrain/internal/train"
)

func TestFRBeta_RatioOfSquaredNorms(t *testing.T) {
	// ‖g‖² = 5, ‖gPrev‖² = 25 → β = 0.2
	beta := train.FRBeta([]float64{3, 4}, []float64{1, 2})
	assert.InDelta(t, 0.2, beta, 1e-15)
}

func TestFRBeta_NeverNegative(t *testing.T) {
	gradients := [][]float64{
		{1, 2, 3},
		{-1, -2, -3},
		{0.5, -0.5, 0},
	}
	for _, prev := range gradients {
		for _, cur := range gradients {
			assert.GreaterOrEqual(t, train.FRBeta(prev, cur), 0.0)
		}
	}
}

func TestPRBeta_ClampedToZeroWhenNegative(t *testing.T) {
	// g·(g - gPrev) = 0.5·(0.5-1) = -0.25 < 0 → clamped
	prev := []float64{1, 0}
	cur := []float64{0.5, 0}

	assert.Zero(t, train.PRBeta(prev, cur))

	// The clamped update must degenerate to plain gradient descent even
	// with a nonzero previous direction.
	direction := train.Direction(train.PolakRibiere, prev, cur, []float64{7, -7})
	assert.Equal(t, train.SteepestDescent(cur), direction)
}

func TestPRBeta_PositiveCase(t *testing.T) {
	// g·(g - gPrev) = [2,0]·[1,0] = 2, ‖gPrev‖² = 1 → β = 2
	beta := train.PRBeta([]float64{1, 0}, []float64{2, 0})
	assert.InDelta(t, 2.0, beta, 1e-15)
}

func TestBeta_ZeroPreviousGradientGuard(t *testing.T) {
	zero := []float64{0, 0}
	cur := []float64{1, 2}

	assert.Zero(t, train.PRBeta(zero, cur))
	assert.Zero(t, train.FRBeta(zero, cur))
}

func TestDirection_FletcherReeves(t *testing.T) {
	// βFR = ‖(0,2)‖²/‖(1,0)‖² = 4 → d = -(0,2) + 4·(1,1) = (4,2)
	direction := train.Direction(train.FletcherReeves,
		[]float64{1, 0}, []float64{0, 2}, []float64{1, 1})
	assert.InDeltaSlice(t, []float64{4, 2}, direction, 1e-15)
}

func TestSteepestDescent_NegatesGradient(t *testing.T) {
	assert.Equal(t, []float64{-1, 2, -0.5}, train.SteepestDescent([]float64{1, -2, 0.5}))
}

func TestDirection_PureAndIdempotent(t *testing.T) {
	prevGradient := []float64{1, 2}
	gradient := []float64{0.5, 1.5}
	prevDirection := []float64{-1, -2}

	first := train.Direction(train.PolakRibiere, prevGradient, gradient, prevDirection)
	second := train.Direction(train.PolakRibiere, prevGradient, gradient, prevDirection)

	assert.Equal(t, first, second, "identical inputs must yield identical output")
	assert.Equal(t, []float64{1, 2}, prevGradient, "inputs must not be mutated")
	assert.Equal(t, []float64{0.5, 1.5}, gradient)
	assert.Equal(t, []float64{-1, -2}, prevDirection)
}

func TestParseMethod_RoundTrip(t *testing.T) {
	for _, m := range []train.Method{train.PolakRibiere, train.FletcherReeves} {
		parsed, err := train.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := train.ParseMethod("BFGS")
	assert.Error(t, err)
}
