// Package growthfit determines which asymptotic complexity class best
// explains empirical timing measurements of a sorting routine.
//
// The engine ingests (size, duration) samples across increasing input sizes,
// filters out failed measurements, calibrates each candidate growth model
// (linear, linearithmic, quadratic) by nonlinear least squares, and selects
// the best-explaining model by R². Two-algorithm runs additionally derive a
// per-size ratio series with its own summary.
//
// # Basic Usage
//
// Classifying one measured sweep:
//
//	rows := []measurement.Sample{
//	    {Size: 1000, Duration: 0.0009},
//	    {Size: 10000, Duration: 0.012},
//	    {Size: 100000, Duration: 0.165},
//	}
//
//	result, err := growthfit.Classify("heapsort", rows)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Best.Model.Type().BigO(), result.Best.RSquared)
//
// Comparing two algorithms over the same sweep:
//
//	cmp, err := growthfit.Compare("heapsort", rowsA, "quicksort", rowsB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cmp.Summary.Faster, cmp.Summary.Speedup)
//
// # Package Structure
//
// This package provides thin wrappers over the underlying packages. For
// finer control use them directly: measurement (samples and filtering),
// model (the candidate library), fit (the curve fitter), classify
// (selection and comparison), loader (benchmark CSV files), and blob
// (compact archived-run snapshots).
package growthfit

import (
	"github.com/arloliu/growthfit/classify"
	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/internal/hash"
	"github.com/arloliu/growthfit/measurement"
)

// Classify filters the raw rows into a measurement set for the named
// algorithm and classifies it against the full model library.
//
// It returns measurement.ErrInsufficientData or
// measurement.ErrDegenerateSizes when the surviving samples cannot support a
// fit; an all-models-failed outcome is not an error but a result with
// classify.StatusIndeterminate.
func Classify(algorithm string, rows []measurement.Sample, opts ...fit.Option) (*classify.Result, error) {
	return classify.Analyze(measurement.NewSet(algorithm, rows), opts...)
}

// ClassifyColumns is Classify for parallel size/duration columns, the shape
// produced by file loaders.
func ClassifyColumns(algorithm string, sizes []int, durations []float64, opts ...fit.Option) (*classify.Result, error) {
	return classify.Analyze(measurement.NewSetFromColumns(algorithm, sizes, durations), opts...)
}

// Compare filters and independently classifies two algorithms measured over
// the same nominal size sweep, and derives the ratio series (A over B) at
// sizes where both sides have a valid sample.
func Compare(algorithmA string, rowsA []measurement.Sample, algorithmB string, rowsB []measurement.Sample, opts ...fit.Option) (*classify.Comparison, error) {
	setA := measurement.NewSet(algorithmA, rowsA)
	setB := measurement.NewSet(algorithmB, rowsB)

	return classify.Compare(setA, setB, opts...)
}

// AlgorithmID returns the stable 64-bit identifier for an algorithm name, as
// stored in run blob headers.
func AlgorithmID(name string) uint64 {
	return hash.ID(name)
}
