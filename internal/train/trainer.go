package train

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/cgtrain/internal/functional"
	"github.com/born-ml/cgtrain/internal/linesearch"
)

// Configuration errors raised before any iteration runs.
var (
	// ErrNoPerformanceFunctional is returned when PerformTraining is called
	// without a performance functional attached.
	ErrNoPerformanceFunctional = errors.New("train: no performance functional attached")

	// ErrNoLineSearch is returned when PerformTraining is called without a
	// training rate algorithm attached.
	ErrNoLineSearch = errors.New("train: no training rate algorithm attached")
)

// ConjugateGradient trains the parameters of a performance functional with
// the nonlinear conjugate-gradient method: each iteration computes a search
// direction conjugate to the previous ones (Polak-Ribière or
// Fletcher-Reeves), asks the line search for a step length along it, updates
// the parameters, and evaluates the stopping criteria.
//
// The algorithm is single-threaded and synchronous; a ConjugateGradient
// must not be shared across goroutines during a run.
//
// Example:
//
//	cg := train.New(
//	    functional.NewRosenbrock(2),
//	    &linesearch.Brent{},
//	    train.DefaultConfig(),
//	)
//	results, err := cg.PerformTraining()
type ConjugateGradient struct {
	// Config may be adjusted freely before PerformTraining is invoked.
	Config Config

	functional functional.PerformanceFunctional
	lineSearch linesearch.Algorithm
	reporter   Reporter
	saver      Saver
}

// New creates a trainer for the given functional and line search. Progress
// and warnings go to a logrus-backed reporter and checkpoints are discarded;
// override with SetReporter and SetSaver.
func New(f functional.PerformanceFunctional, lineSearch linesearch.Algorithm, config Config) *ConjugateGradient {
	return &ConjugateGradient{
		Config:     config,
		functional: f,
		lineSearch: lineSearch,
		reporter:   NewLogReporter(nil),
		saver:      NopSaver{},
	}
}

// SetReporter replaces the progress/warning sink.
func (cg *ConjugateGradient) SetReporter(r Reporter) {
	if r == nil {
		r = NopReporter{}
	}
	cg.reporter = r
}

// SetSaver replaces the checkpoint sink.
func (cg *ConjugateGradient) SetSaver(s Saver) {
	if s == nil {
		s = NopSaver{}
	}
	cg.saver = s
}

// PerformTraining runs the full training loop and returns the terminal
// Results. Configuration errors are returned before any evaluation; run-
// fatal threshold crossings terminate the run with the last stable
// iteration's state preserved in the Results and a fatal Reason recorded.
func (cg *ConjugateGradient) PerformTraining() (*Results, error) {
	if cg.functional == nil {
		return nil, ErrNoPerformanceFunctional
	}
	if cg.lineSearch == nil {
		return nil, ErrNoLineSearch
	}
	config := cg.Config
	if err := config.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	parameters := cg.functional.Parameters()
	performance := cg.functional.Performance()
	gradient := cg.functional.Gradient()
	if len(gradient) != len(parameters) {
		return nil, errors.Errorf("train: gradient length %d does not match parameters length %d",
			len(gradient), len(parameters))
	}

	selection, hasSelection := cg.functional.(functional.SelectionEvaluator)

	history := newHistory(config.Reserve, config.Stopping.MaxIterations+1)

	var (
		prevParameters []float64
		prevGradient   []float64
		prevDirection  []float64
		direction      []float64

		rate          float64
		incrementNorm float64

		prevPerformance      = math.Inf(1)
		selectionPerformance float64
		prevSelection        = math.Inf(1)
		selectionFailures    int

		reason    Reason
		iteration int
	)

	for iteration = 0; ; iteration++ {
		parametersNorm := floats.Norm(parameters, 2)
		gradientNorm := floats.Norm(gradient, 2)

		// Error thresholds on the state produced by the previous update.
		// The failed iteration is rolled back and never recorded.
		if parametersNorm >= config.ErrorParametersNorm || gradientNorm >= config.ErrorGradientNorm {
			if parametersNorm >= config.ErrorParametersNorm {
				reason = ParametersNormExceeded
			} else {
				reason = GradientNormExceeded
			}
			if iteration > 0 {
				parameters = prevParameters
				performance = prevPerformance
				gradient = prevGradient
				cg.functional.SetParameters(parameters)
				iteration--
			}
			break
		}
		if parametersNorm >= config.WarningParametersNorm {
			cg.reporter.Warning("parameters norm %g exceeds warning threshold %g",
				parametersNorm, config.WarningParametersNorm)
		}
		if gradientNorm >= config.WarningGradientNorm {
			cg.reporter.Warning("gradient norm %g exceeds warning threshold %g",
				gradientNorm, config.WarningGradientNorm)
		}

		if hasSelection {
			selectionPerformance = selection.SelectionPerformance()
			if iteration > 0 {
				if selectionPerformance >= prevSelection {
					selectionFailures++
				} else {
					selectionFailures = 0
				}
			}
			prevSelection = selectionPerformance
		}

		if iteration == 0 {
			direction = SteepestDescent(gradient)
		} else {
			direction = Direction(config.Method, prevGradient, gradient, prevDirection)
		}

		elapsed := time.Since(start)
		history.record(snapshot{
			parameters:           parameters,
			parametersNorm:       parametersNorm,
			performance:          performance,
			selectionPerformance: selectionPerformance,
			gradient:             gradient,
			gradientNorm:         gradientNorm,
			direction:            direction,
			rate:                 rate,
			elapsedSeconds:       elapsed.Seconds(),
		})

		var stop bool
		reason, stop = config.Stopping.Evaluate(IterationState{
			Iteration:               iteration,
			Performance:             performance,
			PreviousPerformance:     prevPerformance,
			GradientNorm:            gradientNorm,
			ParametersIncrementNorm: incrementNorm,
			Elapsed:                 elapsed,
			SelectionFailures:       selectionFailures,
			HasSelection:            hasSelection,
		})
		if stop {
			break
		}

		if config.DisplayPeriod > 0 && iteration%config.DisplayPeriod == 0 {
			cg.reporter.Progress(iteration, performance, gradientNorm)
		}
		if config.SavePeriod > 0 && iteration > 0 && iteration%config.SavePeriod == 0 {
			if err := cg.saver.Save(parameters, iteration); err != nil {
				cg.reporter.Warning("checkpoint save failed at iteration %d: %v", iteration, err)
			}
		}

		var newPerformance float64
		rate, newPerformance = cg.lineSearch.Search(cg.functional, direction, performance)
		if rate <= config.ErrorTrainingRate {
			reason = TrainingRateBracketingFailed
			break
		}
		if rate <= config.WarningTrainingRate {
			cg.reporter.Warning("training rate %g below warning threshold %g",
				rate, config.WarningTrainingRate)
		}

		prevParameters = parameters
		parameters = cloneVector(parameters)
		floats.AddScaled(parameters, rate, direction)
		incrementNorm = rate * floats.Norm(direction, 2)
		cg.functional.SetParameters(parameters)

		prevPerformance = performance
		performance = newPerformance
		prevGradient = gradient
		gradient = cg.functional.Gradient()
		prevDirection = direction
	}

	return &Results{
		FinalParameters:           cloneVector(parameters),
		FinalParametersNorm:       floats.Norm(parameters, 2),
		FinalPerformance:          performance,
		FinalSelectionPerformance: selectionPerformance,
		FinalGradient:             cloneVector(gradient),
		FinalGradientNorm:         floats.Norm(gradient, 2),
		FinalDirection:            cloneVector(direction),
		FinalRate:                 rate,
		Elapsed:                   time.Since(start),
		Iterations:                iteration,
		Reason:                    reason,
		History:                   history,
	}, nil
}
