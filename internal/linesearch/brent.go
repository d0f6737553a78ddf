package linesearch

import (
	"math"

	"github.com/born-ml/cgtrain/internal/functional"
)

// brentMaxIterations caps the refinement loop; Brent converges superlinearly
// on smooth objectives, so hitting the cap only happens on pathological ones.
const brentMaxIterations = 100

// Brent minimizes along the direction with Brent's method: successive
// parabolic interpolation through the three best points, falling back to
// golden-section steps whenever the parabola is untrustworthy. It needs
// fewer objective evaluations than GoldenSection on smooth functionals.
type Brent struct {
	InitialRate float64 // first trial step (default: 0.01)
	Tolerance   float64 // relative rate tolerance (default: 1e-8)
}

// Search returns the minimizing rate in the bracket and the performance
// there, with the same failed-bracketing convention as GoldenSection.
func (br *Brent) Search(f functional.PerformanceFunctional, direction []float64, performance float64) (float64, float64) {
	initial, tolerance := br.InitialRate, br.Tolerance
	if initial == 0 {
		initial = 0.01
	}
	if tolerance == 0 {
		tolerance = 1e-8
	}

	base := f.Parameters()
	defer f.SetParameters(base)

	eval := func(t float64) float64 { return probe(f, base, direction, t) }

	a, b, ok := bracket(eval, performance, initial)
	if !ok {
		return a, eval(a)
	}

	// x: best point so far; w: second best; v: previous w.
	x := a + invPhi*(b-a)
	w, v := x, x
	fx := eval(x)
	fw, fv := fx, fx

	var step, prevStep float64
	for i := 0; i < brentMaxIterations; i++ {
		mid := (a + b) / 2
		tol1 := tolerance*math.Abs(x) + 1e-12
		tol2 := 2 * tol1
		if math.Abs(x-mid) <= tol2-(b-a)/2 {
			break
		}

		useGolden := true
		if math.Abs(prevStep) > tol1 {
			// Parabolic fit through x, w, v.
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			if math.Abs(p) < math.Abs(q*prevStep/2) && p > q*(a-x) && p < q*(b-x) {
				prevStep = step
				step = p / q
				useGolden = false
			}
		}
		if useGolden {
			if x < mid {
				prevStep = b - x
			} else {
				prevStep = a - x
			}
			step = (1 - invPhi) * prevStep
		}

		u := x + step
		if math.Abs(step) < tol1 {
			u = x + math.Copysign(tol1, step)
		}
		fu := eval(u)

		if fu <= fx {
			if u < x {
				b = x
			} else {
				a = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
			continue
		}
		if u < x {
			a = u
		} else {
			b = u
		}
		if fu <= fw || w == x {
			v, w = w, u
			fv, fw = fw, fu
		} else if fu <= fv || v == x || v == w {
			v, fv = u, fu
		}
	}

	return x, fx
}
