package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/measurement"
	"github.com/arloliu/growthfit/model"
)

func TestCompareTwoCleanSweeps(t *testing.T) {
	sizes := []int{100, 1000, 10000, 100000}
	setA := synthSet(t, "countingsort", sizes, func(n float64) float64 { return 1e-5 * n })
	setB := synthSet(t, "countingsort-v2", sizes, func(n float64) float64 { return 2e-5 * n })

	cmp, err := Compare(setA, setB)
	require.NoError(t, err)

	require.NoError(t, cmp.A.Err)
	require.NoError(t, cmp.B.Err)
	require.Equal(t, model.TypeLinear, cmp.A.Result.Best.Model.Type())
	require.Equal(t, model.TypeLinear, cmp.B.Result.Best.Model.Type())

	require.Equal(t, sizes, cmp.Sizes)
	require.Len(t, cmp.Ratio, len(sizes))
	for _, p := range cmp.Ratio {
		require.InEpsilon(t, 0.5, p.Ratio, 1e-12)
	}

	require.Equal(t, StatusClassified, cmp.Summary.Status)
	require.InEpsilon(t, 0.5, cmp.Summary.MeanRatio, 1e-12)
	require.Equal(t, SideA, cmp.Summary.Faster)
	require.InEpsilon(t, 2.0, cmp.Summary.Speedup, 1e-12)
}

func TestCompareOneSideMostlyInvalid(t *testing.T) {
	// Side A keeps a single valid sample, so its classification fails with
	// insufficient data, but the surviving ratio point is still derived.
	setA := measurement.NewSet("heapsort", []measurement.Sample{
		{Size: 100, Duration: 1},
		{Size: 200, Duration: -1},
	})
	setB := measurement.NewSet("quicksort", []measurement.Sample{
		{Size: 100, Duration: 2},
		{Size: 200, Duration: 3},
	})

	cmp, err := Compare(setA, setB)
	require.NoError(t, err)

	require.ErrorIs(t, cmp.A.Err, measurement.ErrInsufficientData)
	require.Nil(t, cmp.A.Result)
	require.NoError(t, cmp.B.Err)
	require.NotNil(t, cmp.B.Result)

	require.Equal(t, []int{100, 200}, cmp.Sizes)
	require.Equal(t, []RatioPoint{{Size: 100, Ratio: 0.5}}, cmp.Ratio)

	require.Equal(t, StatusClassified, cmp.Summary.Status)
	require.Equal(t, 0.5, cmp.Summary.MeanRatio)
	require.Equal(t, SideA, cmp.Summary.Faster)
	require.Equal(t, 2.0, cmp.Summary.Speedup)
}

func TestCompareDisjointSizes(t *testing.T) {
	setA := measurement.NewSet("heapsort", []measurement.Sample{
		{Size: 100, Duration: 1},
		{Size: 300, Duration: 3},
	})
	setB := measurement.NewSet("quicksort", []measurement.Sample{
		{Size: 200, Duration: 2},
		{Size: 400, Duration: 4},
	})

	cmp, err := Compare(setA, setB)
	require.NoError(t, err)

	require.Equal(t, []int{100, 200, 300, 400}, cmp.Sizes)
	require.Empty(t, cmp.Ratio)
	require.Equal(t, StatusIndeterminate, cmp.Summary.Status)
	require.Equal(t, SideNone, cmp.Summary.Faster)
}

func TestCompareSlowerFirstSide(t *testing.T) {
	sizes := []int{100, 1000, 10000}
	setA := synthSet(t, "slow", sizes, func(n float64) float64 { return 4e-5 * n })
	setB := synthSet(t, "fast", sizes, func(n float64) float64 { return 1e-5 * n })

	cmp, err := Compare(setA, setB)
	require.NoError(t, err)
	require.Equal(t, SideB, cmp.Summary.Faster)
	require.InEpsilon(t, 4.0, cmp.Summary.MeanRatio, 1e-12)
	require.InEpsilon(t, 4.0, cmp.Summary.Speedup, 1e-12)
}

func TestCompareDeadHeat(t *testing.T) {
	sizes := []int{100, 1000, 10000}
	setA := synthSet(t, "a", sizes, func(n float64) float64 { return 1e-5 * n })
	setB := synthSet(t, "b", sizes, func(n float64) float64 { return 1e-5 * n })

	cmp, err := Compare(setA, setB)
	require.NoError(t, err)
	require.Equal(t, StatusClassified, cmp.Summary.Status)
	require.Equal(t, 1.0, cmp.Summary.MeanRatio)
	require.Equal(t, SideNone, cmp.Summary.Faster)
	require.Equal(t, 1.0, cmp.Summary.Speedup)
}

func TestCompareBothSidesInvalid(t *testing.T) {
	cmp, err := Compare(measurement.NewSet("a", nil), measurement.NewSet("b", nil))
	require.NoError(t, err)

	require.ErrorIs(t, cmp.A.Err, measurement.ErrInsufficientData)
	require.ErrorIs(t, cmp.B.Err, measurement.ErrInsufficientData)
	require.Empty(t, cmp.Sizes)
	require.Empty(t, cmp.Ratio)
	require.Equal(t, StatusIndeterminate, cmp.Summary.Status)
}

func TestCompareInvalidOptionAborts(t *testing.T) {
	sizes := []int{100, 1000, 10000}
	setA := synthSet(t, "a", sizes, func(n float64) float64 { return n })
	setB := synthSet(t, "b", sizes, func(n float64) float64 { return n })

	_, err := Compare(setA, setB, fit.WithTolerance(0))
	require.Error(t, err)
	require.ErrorContains(t, err, "side A")
}

func TestSideString(t *testing.T) {
	require.Equal(t, "A", SideA.String())
	require.Equal(t, "B", SideB.String())
	require.Equal(t, "none", SideNone.String())
}
