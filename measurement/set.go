package measurement

import (
	"errors"
	"slices"
)

var (
	// ErrInsufficientData is returned by Validate when fewer than two valid
	// samples survived filtering.
	ErrInsufficientData = errors.New("measurement: fewer than 2 valid samples")

	// ErrDegenerateSizes is returned by Validate when all surviving samples
	// share the same size, leaving nothing for a fitter to estimate against.
	ErrDegenerateSizes = errors.New("measurement: no size variation across samples")
)

// Sample is a single timing observation: the input length that was sorted and
// the measured wall time in seconds.
type Sample struct {
	Size     int
	Duration float64 // seconds
}

// Valid reports whether the sample is a usable measurement. A non-positive
// duration is the harness sentinel for a failed run; a non-positive size is a
// malformed row. Neither may reach a fitter.
func (s Sample) Valid() bool {
	return s.Size > 0 && s.Duration > 0
}

// Set is a filtered, ordered collection of samples for one algorithm run.
//
// The source rows arrive in ascending size order and that order is preserved,
// not re-sorted. A Set is immutable after construction; accessors return
// fresh slices so callers cannot mutate shared state.
type Set struct {
	algorithm string
	samples   []Sample
	dropped   int
}

// NewSet builds a Set from raw rows, keeping only valid samples and
// preserving their relative order. The algorithm name is carried along for
// reporting and for deriving run IDs.
func NewSet(algorithm string, rows []Sample) *Set {
	samples := make([]Sample, 0, len(rows))
	for _, row := range rows {
		if row.Valid() {
			samples = append(samples, row)
		}
	}

	return &Set{
		algorithm: algorithm,
		samples:   samples,
		dropped:   len(rows) - len(samples),
	}
}

// NewSetFromColumns builds a Set from parallel size and duration columns, the
// shape the CSV loader and blob decoder produce. Columns beyond the shorter
// length are ignored.
func NewSetFromColumns(algorithm string, sizes []int, durations []float64) *Set {
	n := min(len(sizes), len(durations))

	rows := make([]Sample, n)
	for i := 0; i < n; i++ {
		rows[i] = Sample{Size: sizes[i], Duration: durations[i]}
	}

	return NewSet(algorithm, rows)
}

// Algorithm returns the algorithm name this run belongs to.
func (s *Set) Algorithm() string {
	return s.algorithm
}

// Len returns the number of valid samples.
func (s *Set) Len() int {
	return len(s.samples)
}

// Dropped returns the number of raw rows removed by validity filtering.
func (s *Set) Dropped() int {
	return s.dropped
}

// Samples returns a copy of the filtered samples in source order.
func (s *Set) Samples() []Sample {
	return slices.Clone(s.samples)
}

// Sizes returns the sample sizes as a float64 array aligned with Durations,
// ready for numeric consumption by a fitter.
func (s *Set) Sizes() []float64 {
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = float64(smp.Size)
	}

	return out
}

// Durations returns the sample durations in seconds, aligned with Sizes.
func (s *Set) Durations() []float64 {
	out := make([]float64, len(s.samples))
	for i, smp := range s.samples {
		out[i] = smp.Duration
	}

	return out
}

// Duration returns the measured duration at the given size, and whether a
// valid sample exists for that size. When the source contains repeated sizes
// the first occurrence wins.
func (s *Set) Duration(size int) (float64, bool) {
	for _, smp := range s.samples {
		if smp.Size == size {
			return smp.Duration, true
		}
	}

	return 0, false
}

// Validate checks that the filtered data can support a meaningful parameter
// estimate. It returns ErrInsufficientData when fewer than two samples
// survived filtering and ErrDegenerateSizes when every surviving sample has
// the same size. It must be called (and pass) before any fit is attempted.
func (s *Set) Validate() error {
	if len(s.samples) < 2 {
		return ErrInsufficientData
	}

	first := s.samples[0].Size
	for _, smp := range s.samples[1:] {
		if smp.Size != first {
			return nil
		}
	}

	return ErrDegenerateSizes
}
