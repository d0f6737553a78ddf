// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides the nonlinear conjugate-gradient training
// algorithm for minimizing a performance functional.
//
// # Overview
//
// This package contains:
//   - ConjugateGradient: the training loop, with Polak-Ribière and
//     Fletcher-Reeves direction updates and gradient-descent restarts
//   - StoppingCriteria: seven independent termination thresholds
//   - Reserve/History: optional per-iteration training history
//   - Results: the terminal snapshot of a run
//   - Config: the full YAML-serializable configuration surface
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/cgtrain/functional"
//	    "github.com/born-ml/cgtrain/linesearch"
//	    "github.com/born-ml/cgtrain/train"
//	)
//
//	func main() {
//	    config := train.DefaultConfig()
//	    config.Stopping.GradientNormGoal = 1e-6
//	    config.Reserve = train.ReserveAll()
//
//	    cg := train.New(
//	        functional.NewRosenbrock(2),
//	        &linesearch.Brent{},
//	        config,
//	    )
//
//	    results, err := cg.PerformTraining()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(results)
//	}
//
// # Direction updates
//
// Each iteration computes d = -g + β·dPrev, where β is the Polak-Ribière
// or Fletcher-Reeves coefficient. A negative Polak-Ribière β is clamped to
// zero (the PR+ safeguard), restarting with plain gradient descent. The
// first iteration always uses steepest descent.
//
// # Stopping
//
// The criteria are evaluated in a fixed priority order each iteration:
// gradient norm goal, performance goal, minimum parameter increment,
// minimum performance increase, early stopping on selection performance,
// maximum time, maximum iterations. Warning thresholds on parameter norm,
// gradient norm and training rate emit diagnostics without stopping; error
// thresholds terminate the run with the last stable iteration's state
// preserved in the Results.
package train
