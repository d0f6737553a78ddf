// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linesearch provides one-dimensional training-rate algorithms: a
// fixed step, golden-section search, and Brent's method.
//
// An Algorithm minimizes g(t) = f(parameters + t·direction) over t > 0 and
// returns the chosen rate together with the resulting performance. A failed
// bracketing is reported through the returned rate (a tiny step), which the
// trainer classifies against its warning and error training-rate
// thresholds; it is never an error value.
package linesearch
