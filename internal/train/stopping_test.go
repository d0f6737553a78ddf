package train_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/cgtrain/internal/train"
)

// looseCriteria returns criteria that never fire for the running state used
// in these tests, so individual thresholds can be tightened one at a time.
func looseCriteria() train.StoppingCriteria {
	return train.StoppingCriteria{
		MinParametersIncrementNorm: -1,
		MinPerformanceIncrease:     -1,
		PerformanceGoal:            math.Inf(-1),
		GradientNormGoal:           0,
		MaxSelectionFailures:       1000,
		MaxIterations:              1000,
		MaxTime:                    3600,
	}
}

// runningState is a mid-run state that satisfies none of looseCriteria.
func runningState() train.IterationState {
	return train.IterationState{
		Iteration:               5,
		Performance:             1.0,
		PreviousPerformance:     2.0,
		GradientNorm:            0.5,
		ParametersIncrementNorm: 0.1,
		Elapsed:                 time.Second,
		SelectionFailures:       0,
		HasSelection:            false,
	}
}

func TestEvaluate_ContinueWhenNothingFires(t *testing.T) {
	reason, stop := looseCriteria().Evaluate(runningState())
	assert.False(t, stop)
	assert.Equal(t, train.ReasonNone, reason)
}

func TestEvaluate_EachCriterion(t *testing.T) {
	tests := []struct {
		name   string
		adjust func(*train.StoppingCriteria, *train.IterationState)
		want   train.Reason
	}{
		{
			name: "gradient norm goal",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.GradientNormGoal = 0.5
			},
			want: train.GradientNormGoalReached,
		},
		{
			name: "performance goal",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.PerformanceGoal = 1.0
			},
			want: train.PerformanceGoalReached,
		},
		{
			name: "minimum parameters increment",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.MinParametersIncrementNorm = 0.1
			},
			want: train.MinimumParameterIncrementReached,
		},
		{
			name: "minimum performance increase",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.MinPerformanceIncrease = 1.0 // improvement is exactly 1.0
			},
			want: train.MinimumPerformanceIncreaseReached,
		},
		{
			name: "early stopping on selection",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.MaxSelectionFailures = 3
				s.HasSelection = true
				s.SelectionFailures = 3
			},
			want: train.EarlyStoppingOnSelection,
		},
		{
			name: "maximum time",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.MaxTime = 1.0 // elapsed is exactly one second
			},
			want: train.MaximumTimeReached,
		},
		{
			name: "maximum iterations",
			adjust: func(c *train.StoppingCriteria, s *train.IterationState) {
				c.MaxIterations = 5
			},
			want: train.MaximumIterationsReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := looseCriteria()
			state := runningState()
			tt.adjust(&criteria, &state)

			reason, stop := criteria.Evaluate(state)
			assert.True(t, stop)
			assert.Equal(t, tt.want, reason)
		})
	}
}

func TestEvaluate_PriorityOrder(t *testing.T) {
	// Gradient norm goal and performance goal both satisfied: gradient
	// norm wins because it is checked first.
	criteria := looseCriteria()
	criteria.GradientNormGoal = 1.0
	criteria.PerformanceGoal = 10.0

	reason, stop := criteria.Evaluate(runningState())
	assert.True(t, stop)
	assert.Equal(t, train.GradientNormGoalReached, reason)
}

func TestEvaluate_IncrementCriteriaSkippedAtIterationZero(t *testing.T) {
	criteria := looseCriteria()
	criteria.MinParametersIncrementNorm = 10
	criteria.MinPerformanceIncrease = 10

	state := runningState()
	state.Iteration = 0

	reason, stop := criteria.Evaluate(state)
	assert.False(t, stop, "no previous iteration exists at iteration 0")
	assert.Equal(t, train.ReasonNone, reason)
}

func TestEvaluate_SelectionInactiveWithoutMetric(t *testing.T) {
	criteria := looseCriteria()
	criteria.MaxSelectionFailures = 0

	state := runningState()
	state.HasSelection = false
	state.SelectionFailures = 100

	_, stop := criteria.Evaluate(state)
	assert.False(t, stop)
}

func TestReason_StringAndFatal(t *testing.T) {
	reasons := []train.Reason{
		train.ReasonNone,
		train.GradientNormGoalReached,
		train.PerformanceGoalReached,
		train.MinimumParameterIncrementReached,
		train.MinimumPerformanceIncreaseReached,
		train.EarlyStoppingOnSelection,
		train.MaximumTimeReached,
		train.MaximumIterationsReached,
		train.ParametersNormExceeded,
		train.GradientNormExceeded,
		train.TrainingRateBracketingFailed,
	}
	for _, r := range reasons {
		assert.NotEqual(t, "unknown", r.String())
	}

	assert.False(t, train.MaximumIterationsReached.Fatal())
	assert.True(t, train.ParametersNormExceeded.Fatal())
	assert.True(t, train.GradientNormExceeded.Fatal())
	assert.True(t, train.TrainingRateBracketingFailed.Fatal())
}
