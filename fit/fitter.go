package fit

import (
	"math"

	"github.com/arloliu/growthfit/internal/options"
	"github.com/arloliu/growthfit/measurement"
	"github.com/arloliu/growthfit/model"
)

const (
	// Neutral initial guess: unit scale, no offset.
	seedA = 1.0
	seedB = 0.0

	lambdaInit = 1e-3
	lambdaMin  = 1e-12
	lambdaMax  = 1e12
)

// Curve calibrates the model's (a, b) parameters against the measurement set
// by nonlinear least squares and reports the calibrated curve plus its R².
//
// The set must pass validation first; ErrInsufficientData or
// ErrDegenerateSizes from the measurement package is returned before any
// fitting is attempted. A solver failure is not an error: it is reported as a
// Result with StatusFitFailed so the caller can move on to the next model.
func Curve(m model.Model, set *measurement.Set, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	if err := set.Validate(); err != nil {
		return Result{}, err
	}

	return fitColumns(m, set.Sizes(), set.Durations(), cfg), nil
}

// fitColumns runs the solver over aligned size/duration columns and scores
// the calibrated curve. Any non-finite outcome collapses to StatusFitFailed.
func fitColumns(m model.Model, sizes, durations []float64, cfg Config) Result {
	failed := Result{Model: m, Status: StatusFitFailed}

	a, b, ok := levenbergMarquardt(m, sizes, durations, cfg)
	if !ok || !isFinite(a) || !isFinite(b) {
		return failed
	}

	r2, ok := rSquared(m, sizes, durations, a, b)
	if !ok {
		return failed
	}

	return Result{Model: m, A: a, B: b, RSquared: r2, Status: StatusFitted}
}

// levenbergMarquardt minimizes Σ(model(x_i; a, b) - y_i)² from the neutral
// seed. It returns ok=false when the solver cannot converge within the
// iteration bound or encounters non-finite arithmetic.
//
// The Jacobian is built by forward differences, and the damped normal
// equations (JᵀJ + λ·diag(JᵀJ))·δ = Jᵀr are solved in closed form for the
// 2×2 case. Scaling λ by the diagonal keeps the step well-conditioned when
// the scale column (e.g. n²) dwarfs the offset column.
func levenbergMarquardt(m model.Model, xs, ys []float64, cfg Config) (a, b float64, ok bool) {
	a, b = seedA, seedB

	sse := sumSquares(m, xs, ys, a, b)
	if !isFinite(sse) {
		return 0, 0, false
	}

	lambda := lambdaInit

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		var jtj00, jtj01, jtj11, jtr0, jtr1 float64

		ha := diffStep(a)
		hb := diffStep(b)

		for i, x := range xs {
			f := m.Evaluate(x, a, b)
			ja := (m.Evaluate(x, a+ha, b) - f) / ha
			jb := (m.Evaluate(x, a, b+hb) - f) / hb
			r := ys[i] - f

			jtj00 += ja * ja
			jtj01 += ja * jb
			jtj11 += jb * jb
			jtr0 += ja * r
			jtr1 += jb * r
		}

		if !isFinite(jtj00) || !isFinite(jtj01) || !isFinite(jtj11) ||
			!isFinite(jtr0) || !isFinite(jtr1) {
			return 0, 0, false
		}

		improved := false

		for lambda <= lambdaMax {
			d00 := jtj00 * (1 + lambda)
			d11 := jtj11 * (1 + lambda)

			det := d00*d11 - jtj01*jtj01
			if det == 0 || !isFinite(det) {
				lambda *= 10
				continue
			}

			da := (jtr0*d11 - jtr1*jtj01) / det
			db := (jtr1*d00 - jtr0*jtj01) / det

			nextA, nextB := a+da, b+db

			nextSSE := sumSquares(m, xs, ys, nextA, nextB)
			if !isFinite(nextSSE) || nextSSE > sse {
				lambda *= 10
				continue
			}

			converged := sse-nextSSE <= cfg.Tolerance*(nextSSE+cfg.Tolerance)
			a, b, sse = nextA, nextB, nextSSE
			lambda = math.Max(lambda/10, lambdaMin)
			improved = true

			if converged {
				return a, b, true
			}

			break
		}

		if !improved {
			// No damped step improves the fit; the iterate is a local minimum.
			return a, b, true
		}
	}

	return 0, 0, false
}

// rSquared computes the in-sample coefficient of determination. ok is false
// when SS_tot is zero (R² undefined) or the score is non-finite.
func rSquared(m model.Model, xs, ys []float64, a, b float64) (r2 float64, ok bool) {
	mean := 0.0
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))

	var ssRes, ssTot float64
	for i, x := range xs {
		res := ys[i] - m.Evaluate(x, a, b)
		ssRes += res * res

		dev := ys[i] - mean
		ssTot += dev * dev
	}

	if ssTot == 0 {
		return 0, false
	}

	r2 = 1.0 - ssRes/ssTot
	if !isFinite(r2) {
		return 0, false
	}

	return r2, true
}

// sumSquares returns the sum of squared residuals of the model at (a, b).
func sumSquares(m model.Model, xs, ys []float64, a, b float64) float64 {
	var sse float64
	for i, x := range xs {
		r := ys[i] - m.Evaluate(x, a, b)
		sse += r * r
	}

	return sse
}

// diffStep returns the forward-difference step for a parameter value, scaled
// to its magnitude to balance truncation against rounding error.
func diffStep(p float64) float64 {
	const sqrtEps = 1.4901161193847656e-08 // sqrt of IEEE 754 double epsilon

	return sqrtEps * math.Max(math.Abs(p), 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
