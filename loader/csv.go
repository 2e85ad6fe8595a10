package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arloliu/growthfit/measurement"
)

// ErrSchemaMismatch is returned when a file lacks the Size column or the
// expected duration column(s) for the requested mode.
var ErrSchemaMismatch = errors.New("loader: benchmark file schema mismatch")

const (
	sizeColumn      = "Size"
	secondsColumn   = "Time (s)"
	millisColumn    = "Time (ms)"
	secondsSuffix   = " Time (s)"
	millisSuffix    = " Time (ms)"
	millisPerSecond = 1000.0
)

// durationColumn locates one duration column and its scale to seconds.
type durationColumn struct {
	index int
	scale float64
}

// ReadSingle reads a single-series benchmark file and returns the filtered
// measurement set named after the given algorithm (the single-series layout
// does not carry a name itself).
func ReadSingle(r io.Reader, algorithm string) (*measurement.Set, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, err
	}

	sizeIdx, ok := columnIndex(header, sizeColumn)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q column", ErrSchemaMismatch, sizeColumn)
	}

	col, ok := findDuration(header, secondsColumn, millisColumn)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q or %q column", ErrSchemaMismatch, secondsColumn, millisColumn)
	}

	samples, err := parseSamples(rows, sizeIdx, col)
	if err != nil {
		return nil, err
	}

	return measurement.NewSet(algorithm, samples), nil
}

// ReadComparison reads a comparison benchmark file holding duration columns
// for exactly two algorithms and returns one filtered measurement set per
// algorithm, in header order.
func ReadComparison(r io.Reader) (*measurement.Set, *measurement.Set, error) {
	header, rows, err := readTable(r)
	if err != nil {
		return nil, nil, err
	}

	sizeIdx, ok := columnIndex(header, sizeColumn)
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing %q column", ErrSchemaMismatch, sizeColumn)
	}

	algos := comparisonColumns(header)
	if len(algos) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 algorithm duration column pairs, found %d",
			ErrSchemaMismatch, len(algos))
	}

	sets := make([]*measurement.Set, 2)
	for i, algo := range algos {
		samples, err := parseSamples(rows, sizeIdx, algo.column)
		if err != nil {
			return nil, nil, err
		}

		sets[i] = measurement.NewSet(algo.name, samples)
	}

	return sets[0], sets[1], nil
}

// algorithmColumn pairs an algorithm name with its chosen duration column.
type algorithmColumn struct {
	name   string
	column durationColumn
}

// comparisonColumns finds the per-algorithm duration columns in header order.
// When an algorithm has both a seconds and a milliseconds column, the seconds
// column wins.
func comparisonColumns(header []string) []algorithmColumn {
	var order []string
	chosen := make(map[string]durationColumn)

	for i, name := range header {
		var algo string
		var col durationColumn

		switch {
		case strings.HasSuffix(name, secondsSuffix):
			algo = strings.TrimSuffix(name, secondsSuffix)
			col = durationColumn{index: i, scale: 1}
		case strings.HasSuffix(name, millisSuffix):
			algo = strings.TrimSuffix(name, millisSuffix)
			col = durationColumn{index: i, scale: 1 / millisPerSecond}
		default:
			continue
		}

		if algo == "" {
			continue
		}

		prev, seen := chosen[algo]
		if !seen {
			order = append(order, algo)
			chosen[algo] = col
			continue
		}

		if prev.scale != 1 && col.scale == 1 {
			chosen[algo] = col
		}
	}

	out := make([]algorithmColumn, len(order))
	for i, algo := range order {
		out[i] = algorithmColumn{name: algo, column: chosen[algo]}
	}

	return out
}

// findDuration picks the seconds column when present, else the milliseconds
// column with its scale.
func findDuration(header []string, secName, msName string) (durationColumn, bool) {
	if idx, ok := columnIndex(header, secName); ok {
		return durationColumn{index: idx, scale: 1}, true
	}

	if idx, ok := columnIndex(header, msName); ok {
		return durationColumn{index: idx, scale: 1 / millisPerSecond}, true
	}

	return durationColumn{}, false
}

// readTable reads the CSV header and data rows. Rows are allowed to have
// varying field counts; short rows are rejected later per column access.
func readTable(r io.Reader) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("loader: reading csv: %w", err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
	}

	return records[0], records[1:], nil
}

// parseSamples converts data rows to raw samples using the given size and
// duration columns. Malformed numerics are a file error, not a filtered-out
// measurement; failed measurements are valid numerics (<= 0) and pass through
// for the measurement package to drop.
func parseSamples(rows [][]string, sizeIdx int, col durationColumn) ([]measurement.Sample, error) {
	samples := make([]measurement.Sample, 0, len(rows))

	for i, row := range rows {
		if sizeIdx >= len(row) || col.index >= len(row) {
			return nil, fmt.Errorf("loader: row %d: too few columns", i+1)
		}

		size, err := strconv.Atoi(strings.TrimSpace(row[sizeIdx]))
		if err != nil {
			return nil, fmt.Errorf("loader: row %d: invalid size %q: %w", i+1, row[sizeIdx], err)
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(row[col.index]), 64)
		if err != nil {
			return nil, fmt.Errorf("loader: row %d: invalid duration %q: %w", i+1, row[col.index], err)
		}

		samples = append(samples, measurement.Sample{
			Size:     size,
			Duration: duration * col.scale,
		})
	}

	return samples, nil
}

// columnIndex returns the index of the named header column.
func columnIndex(header []string, name string) (int, bool) {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}

	return 0, false
}
