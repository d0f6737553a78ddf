// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package functional defines the performance-functional contract consumed
// by the trainers, plus built-in objectives for tests and examples.
//
// A performance functional owns the parameter vector of the model being
// trained: the trainer reads it, writes updated parameters back, and asks
// for the objective value and gradient at the stored parameters. An
// implementation that also satisfies SelectionEvaluator enables early
// stopping on a held-out selection metric.
//
// Built-in objectives:
//   - Quadratic: separable quadratic, the standard smoke test
//   - Rosenbrock: curved-valley benchmark with analytic gradient
//   - Func: closure adapter, with finite-difference gradient fallback
package functional
