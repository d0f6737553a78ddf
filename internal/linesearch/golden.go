package linesearch

import (
	"math"

	"github.com/born-ml/cgtrain/internal/functional"
)

// invPhi is the golden-section interior ratio (√5-1)/2.
var invPhi = (math.Sqrt(5) - 1) / 2

// maxBracketGrowth bounds the interval-doubling phase; a bracket that keeps
// descending past 2^40 step lengths means the objective is unbounded along
// the direction.
const maxBracketGrowth = 40

// maxShrink bounds the initial-step halving phase when the first trial step
// overshoots the minimum.
const maxShrink = 32

// GoldenSection minimizes along the direction by bracketing a minimum
// (halving the initial step until descent, then doubling until the
// objective rises again) and shrinking the bracket with golden-section
// steps until it is narrower than Tolerance.
type GoldenSection struct {
	InitialRate float64 // first trial step (default: 0.01)
	Tolerance   float64 // final bracket width (default: 1e-6)
}

// Search returns the rate at the center of the final bracket and the
// performance there. When no descent step can be found at all, the tiny
// last-probed rate is returned so the trainer's rate thresholds can flag
// the failed bracketing.
func (g *GoldenSection) Search(f functional.PerformanceFunctional, direction []float64, performance float64) (float64, float64) {
	initial, tolerance := g.InitialRate, g.Tolerance
	if initial == 0 {
		initial = 0.01
	}
	if tolerance == 0 {
		tolerance = 1e-6
	}

	base := f.Parameters()
	defer f.SetParameters(base)

	eval := func(t float64) float64 { return probe(f, base, direction, t) }

	a, c, ok := bracket(eval, performance, initial)
	if !ok {
		return a, eval(a)
	}

	x1 := c - invPhi*(c-a)
	x2 := a + invPhi*(c-a)
	f1 := eval(x1)
	f2 := eval(x2)
	for i := 0; c-a > tolerance && i < 200; i++ {
		if f1 < f2 {
			c, x2, f2 = x2, x1, f1
			x1 = c - invPhi*(c-a)
			f1 = eval(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + invPhi*(c-a)
			f2 = eval(x2)
		}
	}

	rate := (a + c) / 2
	return rate, eval(rate)
}

// bracket finds [low, high] containing a minimizer of eval, where eval(0) is
// f0. It first halves the initial step until it produces descent, then
// doubles until the objective rises. ok is false when no descent step exists
// down to initial/2^maxShrink; the returned low is then the last probed rate.
func bracket(eval func(float64) float64, f0, initial float64) (low, high float64, ok bool) {
	b := initial
	fb := eval(b)
	for i := 0; fb >= f0 && i < maxShrink; i++ {
		b /= 2
		fb = eval(b)
	}
	if fb >= f0 {
		return b, b, false
	}

	low = 0
	c := 2 * b
	fc := eval(c)
	for i := 0; fc < fb && i < maxBracketGrowth; i++ {
		low, b, fb = b, c, fc
		c *= 2
		fc = eval(c)
	}
	return low, c, true
}
