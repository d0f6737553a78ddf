package train

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_OnlyReservedBuffersAllocated(t *testing.T) {
	h := newHistory(Reserve{Performance: true, GradientNorm: true}, 8)

	assert.NotNil(t, h.Performance)
	assert.NotNil(t, h.GradientNorm)
	assert.Nil(t, h.Parameters)
	assert.Nil(t, h.Gradient)
	assert.Nil(t, h.Direction)
	assert.Nil(t, h.Rate)
	assert.Nil(t, h.ElapsedTime)
	assert.Nil(t, h.ParametersNorm)
	assert.Nil(t, h.SelectionPerformance)

	assert.Equal(t, 8, cap(h.Performance), "reserved buffers are pre-sized")
	assert.Empty(t, h.Performance)
}

func TestHistory_RecordAppendsReservedOnly(t *testing.T) {
	h := newHistory(Reserve{Performance: true, Rate: true}, 4)

	h.record(snapshot{performance: 2.5, rate: 0.1, gradientNorm: 9})
	h.record(snapshot{performance: 1.5, rate: 0.2, gradientNorm: 8})

	assert.Equal(t, []float64{2.5, 1.5}, h.Performance)
	assert.Equal(t, []float64{0.1, 0.2}, h.Rate)
	assert.Nil(t, h.GradientNorm, "disabled quantity is never recorded")
	assert.Equal(t, 2, h.Entries())
}

func TestHistory_VectorsAreDeepCopied(t *testing.T) {
	h := newHistory(Reserve{Parameters: true, Gradient: true, Direction: true}, 2)

	parameters := []float64{1, 2}
	gradient := []float64{3, 4}
	direction := []float64{-3, -4}
	h.record(snapshot{parameters: parameters, gradient: gradient, direction: direction})

	// The trainer mutates its working vectors in place between iterations;
	// recorded entries must not follow.
	parameters[0] = 99
	gradient[0] = 99
	direction[0] = 99

	assert.Equal(t, []float64{1, 2}, h.Parameters[0])
	assert.Equal(t, []float64{3, 4}, h.Gradient[0])
	assert.Equal(t, []float64{-3, -4}, h.Direction[0])
}

func TestHistory_ReserveAllRecordsEverything(t *testing.T) {
	h := newHistory(ReserveAll(), 1)

	h.record(snapshot{
		parameters:           []float64{1},
		parametersNorm:       1,
		performance:          2,
		selectionPerformance: 3,
		gradient:             []float64{4},
		gradientNorm:         4,
		direction:            []float64{-4},
		rate:                 0.5,
		elapsedSeconds:       0.25,
	})

	assert.Equal(t, 1, h.Entries())
	assert.Len(t, h.Parameters, 1)
	assert.Equal(t, []float64{1}, h.ParametersNorm)
	assert.Equal(t, []float64{2}, h.Performance)
	assert.Equal(t, []float64{3}, h.SelectionPerformance)
	assert.Len(t, h.Gradient, 1)
	assert.Equal(t, []float64{4}, h.GradientNorm)
	assert.Len(t, h.Direction, 1)
	assert.Equal(t, []float64{0.5}, h.Rate)
	assert.Equal(t, []float64{0.25}, h.ElapsedTime)
}

func TestHistory_EntriesZeroWhenNothingReserved(t *testing.T) {
	h := newHistory(Reserve{}, 4)
	h.record(snapshot{performance: 1})
	assert.Zero(t, h.Entries())
}

func TestHistory_GrowsPastPreSize(t *testing.T) {
	// Pre-sizing is an optimization, not a capacity limit.
	h := newHistory(Reserve{Performance: true}, 1)
	for i := 0; i < 5; i++ {
		h.record(snapshot{performance: float64(i)})
	}
	assert.Equal(t, 5, h.Entries())
}
