package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthfit/measurement"
	"github.com/arloliu/growthfit/model"
)

// synthSet evaluates the generator at each size to build a clean sweep.
func synthSet(t *testing.T, sizes []int, gen func(n float64) float64) *measurement.Set {
	t.Helper()

	durations := make([]float64, len(sizes))
	for i, n := range sizes {
		durations[i] = gen(float64(n))
	}

	set := measurement.NewSetFromColumns("synthetic", sizes, durations)
	require.NoError(t, set.Validate())

	return set
}

var sweepSizes = []int{10, 50, 100, 500, 1000, 5000, 10000}

func TestCurveRecoversLinear(t *testing.T) {
	const a, b = 0.002, 0.5
	set := synthSet(t, sweepSizes, func(n float64) float64 { return a*n + b })

	res, err := Curve(model.Linear, set)
	require.NoError(t, err)
	require.True(t, res.Fitted())
	require.InEpsilon(t, a, res.A, 1e-6)
	require.InDelta(t, b, res.B, 1e-6)
	require.Greater(t, res.RSquared, 0.999999)
}

func TestCurveRecoversLinearithmic(t *testing.T) {
	const a, b = 0.003, 0.2
	set := synthSet(t, sweepSizes, func(n float64) float64 { return a*n*math.Log(n) + b })

	res, err := Curve(model.Linearithmic, set)
	require.NoError(t, err)
	require.True(t, res.Fitted())
	require.InEpsilon(t, a, res.A, 1e-6)
	require.InDelta(t, b, res.B, 1e-6)
	require.Greater(t, res.RSquared, 0.999999)
}

func TestCurveRecoversQuadratic(t *testing.T) {
	const a, b = 5e-7, 0.1
	set := synthSet(t, sweepSizes, func(n float64) float64 { return a*n*n + b })

	res, err := Curve(model.Quadratic, set)
	require.NoError(t, err)
	require.True(t, res.Fitted())
	require.InEpsilon(t, a, res.A, 1e-6)
	require.InDelta(t, b, res.B, 1e-6)
	require.Greater(t, res.RSquared, 0.999999)
}

func TestCurveNoisyData(t *testing.T) {
	// Mild deterministic perturbation; the fit should stay close and R² high.
	const a, b = 0.002, 0.5
	i := 0
	set := synthSet(t, sweepSizes, func(n float64) float64 {
		i++
		jitter := 1 + 0.01*math.Sin(float64(i))

		return (a*n + b) * jitter
	})

	res, err := Curve(model.Linear, set)
	require.NoError(t, err)
	require.True(t, res.Fitted())
	require.InEpsilon(t, a, res.A, 0.05)
	require.Greater(t, res.RSquared, 0.99)
}

func TestCurveConstantDurations(t *testing.T) {
	// Zero variance makes R² undefined; the fit must fail rather than divide
	// by zero.
	set := synthSet(t, sweepSizes, func(float64) float64 { return 1.5 })

	res, err := Curve(model.Linear, set)
	require.NoError(t, err)
	require.Equal(t, StatusFitFailed, res.Status)
	require.False(t, res.Fitted())
	require.Zero(t, res.A)
	require.Zero(t, res.B)
	require.Zero(t, res.RSquared)
}

func TestCurveValidationErrors(t *testing.T) {
	short := measurement.NewSet("algo", []measurement.Sample{{Size: 10, Duration: 1}})
	_, err := Curve(model.Linear, short)
	require.ErrorIs(t, err, measurement.ErrInsufficientData)

	flat := measurement.NewSet("algo", []measurement.Sample{
		{Size: 10, Duration: 1},
		{Size: 10, Duration: 2},
	})
	_, err = Curve(model.Linear, flat)
	require.ErrorIs(t, err, measurement.ErrDegenerateSizes)
}

func TestCurveDeterministic(t *testing.T) {
	set := synthSet(t, sweepSizes, func(n float64) float64 { return 0.003*n*math.Log(n) + 0.2 })

	first, err := Curve(model.Linearithmic, set)
	require.NoError(t, err)

	second, err := Curve(model.Linearithmic, set)
	require.NoError(t, err)

	// Bit-identical, not merely close: the solver has no randomized state.
	require.Equal(t, first, second)
}

func TestCurveOptions(t *testing.T) {
	set := synthSet(t, sweepSizes, func(n float64) float64 { return 0.002*n + 0.5 })

	res, err := Curve(model.Linear, set, WithMaxIterations(500), WithTolerance(1e-10))
	require.NoError(t, err)
	require.True(t, res.Fitted())

	_, err = Curve(model.Linear, set, WithMaxIterations(0))
	require.Error(t, err)

	_, err = Curve(model.Linear, set, WithTolerance(0))
	require.Error(t, err)
}

func TestCurveIterationStarvation(t *testing.T) {
	// One iteration is not enough for the quadratic sweep to reach the
	// convergence test, so the solver reports failure instead of a bogus fit.
	set := synthSet(t, sweepSizes, func(n float64) float64 { return 5e-7*n*n + 0.1 })

	res, err := Curve(model.Quadratic, set, WithMaxIterations(1))
	require.NoError(t, err)
	require.Equal(t, StatusFitFailed, res.Status)
}

func TestResultPredict(t *testing.T) {
	fitted := Result{Model: model.Linear, A: 2, B: 5, Status: StatusFitted}
	require.Equal(t, 205.0, fitted.Predict(100))

	failed := Result{Model: model.Linear, Status: StatusFitFailed}
	require.True(t, math.IsNaN(failed.Predict(100)))
}

func TestResultFormula(t *testing.T) {
	fitted := Result{Model: model.Quadratic, A: 2, B: 5, Status: StatusFitted}
	require.Equal(t, model.Quadratic.Formula(2, 5), fitted.Formula())

	failed := Result{Model: model.Quadratic, Status: StatusFitFailed}
	require.Contains(t, failed.Formula(), "fit failed")
}

func TestRSquaredScoring(t *testing.T) {
	xs := []float64{10, 20, 30, 40}
	ys := []float64{20, 40, 60, 80}

	// Exact line: R² is exactly 1.
	r2, ok := rSquared(model.Linear, xs, ys, 2, 0)
	require.True(t, ok)
	require.Equal(t, 1.0, r2)

	// Constant response: undefined.
	_, ok = rSquared(model.Linear, xs, []float64{5, 5, 5, 5}, 0, 5)
	require.False(t, ok)
}
