// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/sirupsen/logrus"

	"github.com/born-ml/cgtrain/internal/functional"
	"github.com/born-ml/cgtrain/internal/linesearch"
	"github.com/born-ml/cgtrain/internal/train"
)

// Method selects the conjugate-direction formula used during training.
type Method = train.Method

// Available training-direction methods.
const (
	PolakRibiere   = train.PolakRibiere
	FletcherReeves = train.FletcherReeves
)

// ParseMethod converts a short method name ("PR" or "FR") into a Method.
func ParseMethod(s string) (Method, error) {
	return train.ParseMethod(s)
}

// Reason identifies why a training run terminated.
type Reason = train.Reason

// Termination reasons.
const (
	ReasonNone                        = train.ReasonNone
	GradientNormGoalReached           = train.GradientNormGoalReached
	PerformanceGoalReached            = train.PerformanceGoalReached
	MinimumParameterIncrementReached  = train.MinimumParameterIncrementReached
	MinimumPerformanceIncreaseReached = train.MinimumPerformanceIncreaseReached
	EarlyStoppingOnSelection          = train.EarlyStoppingOnSelection
	MaximumTimeReached                = train.MaximumTimeReached
	MaximumIterationsReached          = train.MaximumIterationsReached
	ParametersNormExceeded            = train.ParametersNormExceeded
	GradientNormExceeded              = train.GradientNormExceeded
	TrainingRateBracketingFailed      = train.TrainingRateBracketingFailed
)

// Configuration errors raised before any iteration runs.
var (
	ErrNoPerformanceFunctional = train.ErrNoPerformanceFunctional
	ErrNoLineSearch            = train.ErrNoLineSearch
)

// Config is the full configuration surface of the trainer.
type Config = train.Config

// StoppingCriteria holds the independent termination thresholds.
type StoppingCriteria = train.StoppingCriteria

// IterationState is the snapshot the stopping criteria evaluate.
type IterationState = train.IterationState

// Reserve selects which quantities are recorded into the training history.
type Reserve = train.Reserve

// History holds the recorded per-iteration quantities.
type History = train.History

// Results is the immutable outcome of a training run.
type Results = train.Results

// Reporter receives progress notifications and warnings.
type Reporter = train.Reporter

// Saver receives periodic checkpoint requests.
type Saver = train.Saver

// LogReporter reports through a logrus logger.
type LogReporter = train.LogReporter

// NopReporter discards all notifications.
type NopReporter = train.NopReporter

// NopSaver discards all checkpoint requests.
type NopSaver = train.NopSaver

// FileSaver writes checkpoints as YAML documents.
type FileSaver = train.FileSaver

// ConjugateGradient trains a performance functional with the nonlinear
// conjugate-gradient method.
type ConjugateGradient = train.ConjugateGradient

// New creates a trainer for the given functional and line search.
//
// Example:
//
//	cg := train.New(
//	    functional.NewRosenbrock(2),
//	    &linesearch.Brent{},
//	    train.DefaultConfig(),
//	)
//	results, err := cg.PerformTraining()
func New(f functional.PerformanceFunctional, lineSearch linesearch.Algorithm, config Config) *ConjugateGradient {
	return train.New(f, lineSearch, config)
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return train.DefaultConfig()
}

// LoadConfig reads a YAML configuration document.
func LoadConfig(path string) (Config, error) {
	return train.LoadConfig(path)
}

// ReserveAll returns a Reserve with every quantity enabled.
func ReserveAll() Reserve {
	return train.ReserveAll()
}

// NewLogReporter creates a reporter backed by the given logger, or by the
// standard logrus logger when nil.
func NewLogReporter(log *logrus.Logger) *LogReporter {
	return train.NewLogReporter(log)
}

// FinalResultsTable renders the final values as label/value rows.
func FinalResultsTable(r *Results, config Config) [][2]string {
	return train.FinalResultsTable(r, config)
}

// PRBeta computes the Polak-Ribière coefficient with the PR+ clamp.
func PRBeta(prevGradient, gradient []float64) float64 {
	return train.PRBeta(prevGradient, gradient)
}

// FRBeta computes the Fletcher-Reeves coefficient.
func FRBeta(prevGradient, gradient []float64) float64 {
	return train.FRBeta(prevGradient, gradient)
}

// Direction computes the next conjugate search direction.
func Direction(method Method, prevGradient, gradient, prevDirection []float64) []float64 {
	return train.Direction(method, prevGradient, gradient, prevDirection)
}

// SteepestDescent returns the negated gradient.
func SteepestDescent(gradient []float64) []float64 {
	return train.SteepestDescent(gradient)
}
