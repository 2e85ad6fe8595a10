package classify

import (
	"errors"
	"fmt"

	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/measurement"
)

// Side identifies which algorithm a comparative statistic refers to.
type Side int

const (
	// SideNone means neither side is ahead (or the summary is indeterminate).
	SideNone Side = iota
	// SideA is the first algorithm passed to Compare.
	SideA
	// SideB is the second algorithm passed to Compare.
	SideB
)

// String returns the string representation of the side.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// RatioPoint is one point of the derived ratio series: the duration of
// algorithm A divided by the duration of algorithm B at a size where both
// sides have a valid sample.
type RatioPoint struct {
	Size  int
	Ratio float64
}

// RatioSummary summarizes the derived ratio series. The speedup view is the
// reciprocal of the ratio view: a mean ratio of 0.5 means A is 2x faster.
type RatioSummary struct {
	// Status is StatusIndeterminate when the ratio series is empty; the
	// remaining fields are then meaningless.
	Status Status
	// MeanRatio is the arithmetic mean of the per-size ratios.
	MeanRatio float64
	// Faster names the side with the lower mean duration, or SideNone when
	// the mean ratio is exactly 1.
	Faster Side
	// Speedup is the factor (>= 1) by which the faster side wins on average.
	Speedup float64
}

// SideReport carries one side of a comparison. Validation failures on a
// single side do not abort the comparison: the condition is reported here and
// the other side plus the ratio series are still produced.
type SideReport struct {
	// Set is the filtered measurement set for this side.
	Set *measurement.Set
	// Result is the side's classification. Nil when Err is non-nil.
	Result *Result
	// Err is ErrInsufficientData or ErrDegenerateSizes when this side could
	// not be classified.
	Err error
}

// Comparison is the outcome of comparing two algorithms over a shared size
// sweep: both independent classifications, the union of sizes with at least
// one valid sample, and the derived ratio series with its summary.
type Comparison struct {
	A SideReport
	B SideReport
	// Sizes is the ascending union of sizes where at least one side has a
	// valid sample.
	Sizes []int
	// Ratio holds duration A / duration B at each size where both sides have
	// a valid sample. May be empty.
	Ratio []RatioPoint
	// Summary reports the mean ratio and the faster side, or
	// StatusIndeterminate when Ratio is empty.
	Summary RatioSummary
}

// Compare builds measurement sets for two algorithms, classifies each side
// independently, and derives the ratio series restricted to sizes where both
// sides have a valid post-filter sample.
//
// A validation failure on one side is reported in that side's SideReport
// rather than aborting: a single bad sweep must not hide the other side's
// classification or the surviving ratio points. Only a solver configuration
// error aborts the comparison.
func Compare(setA, setB *measurement.Set, opts ...fit.Option) (*Comparison, error) {
	reportA, err := classifySide(setA, opts...)
	if err != nil {
		return nil, fmt.Errorf("classify: side A (%s): %w", setA.Algorithm(), err)
	}

	reportB, err := classifySide(setB, opts...)
	if err != nil {
		return nil, fmt.Errorf("classify: side B (%s): %w", setB.Algorithm(), err)
	}

	cmp := &Comparison{A: reportA, B: reportB}
	cmp.Sizes, cmp.Ratio = deriveRatio(setA, setB)
	cmp.Summary = summarizeRatio(cmp.Ratio)

	return cmp, nil
}

// classifySide classifies one side, demoting validation failures to a
// reported condition. Any other error (invalid solver options) is returned
// and aborts the comparison.
func classifySide(set *measurement.Set, opts ...fit.Option) (SideReport, error) {
	report := SideReport{Set: set}

	result, err := Analyze(set, opts...)
	switch {
	case err == nil:
		report.Result = result
	case errors.Is(err, measurement.ErrInsufficientData),
		errors.Is(err, measurement.ErrDegenerateSizes):
		report.Err = err
	default:
		return SideReport{}, err
	}

	return report, nil
}

// deriveRatio walks both filtered sets, which preserve the source's ascending
// size order, and produces the union of valid sizes plus the ratio series at
// sizes valid on both sides.
func deriveRatio(setA, setB *measurement.Set) (sizes []int, ratio []RatioPoint) {
	sa := setA.Samples()
	sb := setB.Samples()

	i, j := 0, 0
	for i < len(sa) && j < len(sb) {
		switch {
		case sa[i].Size == sb[j].Size:
			sizes = append(sizes, sa[i].Size)
			ratio = append(ratio, RatioPoint{
				Size:  sa[i].Size,
				Ratio: sa[i].Duration / sb[j].Duration,
			})
			i++
			j++
		case sa[i].Size < sb[j].Size:
			sizes = append(sizes, sa[i].Size)
			i++
		default:
			sizes = append(sizes, sb[j].Size)
			j++
		}
	}

	for ; i < len(sa); i++ {
		sizes = append(sizes, sa[i].Size)
	}

	for ; j < len(sb); j++ {
		sizes = append(sizes, sb[j].Size)
	}

	return sizes, ratio
}

// summarizeRatio computes the mean ratio and the faster side. An empty series
// yields an indeterminate summary; the mean is never taken over zero points.
func summarizeRatio(ratio []RatioPoint) RatioSummary {
	if len(ratio) == 0 {
		return RatioSummary{Status: StatusIndeterminate, Faster: SideNone}
	}

	mean := 0.0
	for _, p := range ratio {
		mean += p.Ratio
	}
	mean /= float64(len(ratio))

	summary := RatioSummary{
		Status:    StatusClassified,
		MeanRatio: mean,
		Faster:    SideNone,
		Speedup:   1,
	}

	switch {
	case mean < 1:
		summary.Faster = SideA
		summary.Speedup = 1 / mean
	case mean > 1:
		summary.Faster = SideB
		summary.Speedup = mean
	}

	return summary
}
