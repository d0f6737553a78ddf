package train

import "time"

// Reason identifies why a training run terminated.
type Reason int

// Termination reasons, in the priority order the criteria are evaluated.
// The three *Exceeded/Failed values are run-fatal conditions raised by the
// trainer's error thresholds rather than by the stopping criteria.
const (
	// ReasonNone means training has not terminated.
	ReasonNone Reason = iota

	GradientNormGoalReached
	PerformanceGoalReached
	MinimumParameterIncrementReached
	MinimumPerformanceIncreaseReached
	EarlyStoppingOnSelection
	MaximumTimeReached
	MaximumIterationsReached

	ParametersNormExceeded
	GradientNormExceeded
	TrainingRateBracketingFailed
)

// String returns a human-readable description of the termination reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "training in progress"
	case GradientNormGoalReached:
		return "gradient norm goal reached"
	case PerformanceGoalReached:
		return "performance goal reached"
	case MinimumParameterIncrementReached:
		return "minimum parameters increment norm reached"
	case MinimumPerformanceIncreaseReached:
		return "minimum performance increase reached"
	case EarlyStoppingOnSelection:
		return "early stopping on selection performance"
	case MaximumTimeReached:
		return "maximum training time reached"
	case MaximumIterationsReached:
		return "maximum number of iterations reached"
	case ParametersNormExceeded:
		return "parameters norm exceeded error threshold"
	case GradientNormExceeded:
		return "gradient norm exceeded error threshold"
	case TrainingRateBracketingFailed:
		return "line search unable to bracket a minimum"
	default:
		return "unknown"
	}
}

// Fatal reports whether the reason is a run-fatal error rather than a
// regular stopping criterion.
func (r Reason) Fatal() bool {
	switch r {
	case ParametersNormExceeded, GradientNormExceeded, TrainingRateBracketingFailed:
		return true
	default:
		return false
	}
}

// StoppingCriteria holds the independent termination thresholds. All fields
// are read-only during a run.
type StoppingCriteria struct {
	// MinParametersIncrementNorm stops training when the norm of the
	// parameter update falls to this value or below.
	MinParametersIncrementNorm float64 `yaml:"minimum_parameters_increment_norm"`

	// MinPerformanceIncrease stops training when the improvement between
	// two successive iterations falls to this value or below.
	MinPerformanceIncrease float64 `yaml:"minimum_performance_increase"`

	// PerformanceGoal stops training when the performance reaches this
	// value or below.
	PerformanceGoal float64 `yaml:"performance_goal"`

	// GradientNormGoal stops training when the gradient norm reaches this
	// value or below.
	GradientNormGoal float64 `yaml:"gradient_norm_goal"`

	// MaxSelectionFailures stops training after this many consecutive
	// iterations in which the selection performance failed to improve.
	MaxSelectionFailures int `yaml:"maximum_selection_performance_decreases"`

	// MaxIterations stops training after this many iterations.
	MaxIterations int `yaml:"maximum_iterations_number"`

	// MaxTime stops training after this many seconds of wall-clock time.
	MaxTime float64 `yaml:"maximum_time"`
}

// IterationState is the per-iteration snapshot the stopping criteria are
// evaluated against. The trainer accumulates the running quantities
// (previous performance, selection-failure count); Evaluate itself holds
// no state.
type IterationState struct {
	Iteration               int
	Performance             float64
	PreviousPerformance     float64
	GradientNorm            float64
	ParametersIncrementNorm float64
	Elapsed                 time.Duration
	SelectionFailures       int
	HasSelection            bool
}

// Evaluate decides whether training should stop at the given state. The
// criteria are checked in a fixed priority order and the first match wins.
// The increment-norm and performance-increase criteria need a completed
// previous iteration, so they are skipped at iteration 0.
func (c StoppingCriteria) Evaluate(s IterationState) (Reason, bool) {
	switch {
	case s.GradientNorm <= c.GradientNormGoal:
		return GradientNormGoalReached, true
	case s.Performance <= c.PerformanceGoal:
		return PerformanceGoalReached, true
	case s.Iteration > 0 && s.ParametersIncrementNorm <= c.MinParametersIncrementNorm:
		return MinimumParameterIncrementReached, true
	case s.Iteration > 0 && s.PreviousPerformance-s.Performance <= c.MinPerformanceIncrease:
		return MinimumPerformanceIncreaseReached, true
	case s.HasSelection && s.SelectionFailures >= c.MaxSelectionFailures:
		return EarlyStoppingOnSelection, true
	case s.Elapsed.Seconds() >= c.MaxTime:
		return MaximumTimeReached, true
	case s.Iteration >= c.MaxIterations:
		return MaximumIterationsReached, true
	}
	return ReasonNone, false
}
