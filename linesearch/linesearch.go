// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linesearch

import (
	"github.com/born-ml/cgtrain/internal/linesearch"
)

// Algorithm computes a training rate along a search direction.
type Algorithm = linesearch.Algorithm

// Fixed always returns the configured rate.
type Fixed = linesearch.Fixed

// GoldenSection minimizes along the direction with golden-section bracket
// shrinking.
type GoldenSection = linesearch.GoldenSection

// Brent minimizes along the direction with successive parabolic
// interpolation and golden-section fallback.
type Brent = linesearch.Brent
