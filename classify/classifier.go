package classify

import (
	"fmt"

	"github.com/arloliu/growthfit/fit"
	"github.com/arloliu/growthfit/measurement"
	"github.com/arloliu/growthfit/model"
)

// Epsilon is the R² margin a later model must exceed to displace an earlier
// one. Numerically equal scores (within Epsilon) keep the earlier model in
// library order, which makes selection deterministic.
const Epsilon = 1e-9

// Status reports whether a classification (or a derived summary) produced a
// definite outcome.
type Status int

const (
	// StatusClassified indicates a best model was selected.
	StatusClassified Status = iota
	// StatusIndeterminate indicates no model could be selected: every fit
	// failed, or a derived series had no valid points. It is a valid terminal
	// outcome, not an error.
	StatusIndeterminate
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusClassified:
		return "classified"
	case StatusIndeterminate:
		return "indeterminate"
	default:
		return "unknown"
	}
}

// Result is the classification of one measurement set: the fit result for
// every model in the library (in library order) and the selected best model.
// It is a plain value; once returned it is never mutated.
type Result struct {
	// Algorithm is the algorithm name carried over from the measurement set.
	Algorithm string
	// Fits holds one fit result per library model, in library order,
	// including failed fits.
	Fits []fit.Result
	// Best is the selected fit. Only meaningful when Status is
	// StatusClassified.
	Best fit.Result
	// Status reports whether a best model was selected.
	Status Status
}

// Classified reports whether a best model was selected.
func (r *Result) Classified() bool {
	return r.Status == StatusClassified
}

// String returns a one-line summary of the classification.
func (r *Result) String() string {
	if !r.Classified() {
		return fmt.Sprintf("Result{Algorithm: %s, Status: %s}", r.Algorithm, r.Status)
	}

	return fmt.Sprintf("Result{Algorithm: %s, Best: %s, R²: %.4f}",
		r.Algorithm, r.Best.Model.Type().BigO(), r.Best.RSquared)
}

// Analyze classifies one measurement set against the full model library.
//
// The set is validated first; ErrInsufficientData and ErrDegenerateSizes
// abort classification entirely and are returned to the caller. Individual
// fit failures do not: the failed model is recorded with its status and the
// remaining models still get a chance. If every model fails, the result is
// StatusIndeterminate with no error.
func Analyze(set *measurement.Set, opts ...fit.Option) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	library := model.Library()
	fits := make([]fit.Result, 0, len(library))

	for _, m := range library {
		res, err := fit.Curve(m, set, opts...)
		if err != nil {
			return nil, fmt.Errorf("classify: fitting %s: %w", m.Type(), err)
		}

		fits = append(fits, res)
	}

	result := &Result{
		Algorithm: set.Algorithm(),
		Fits:      fits,
		Status:    StatusIndeterminate,
	}

	best := -1
	for i, f := range fits {
		if !f.Fitted() {
			continue
		}

		if best < 0 || f.RSquared > fits[best].RSquared+Epsilon {
			best = i
		}
	}

	if best >= 0 {
		result.Best = fits[best]
		result.Status = StatusClassified
	}

	return result, nil
}

// Each classifies multiple independent measurement sets, one result per set.
// The first validation or configuration error aborts and is wrapped with the
// offending set's algorithm name.
func Each(sets []*measurement.Set, opts ...fit.Option) ([]*Result, error) {
	results := make([]*Result, len(sets))

	for i, set := range sets {
		result, err := Analyze(set, opts...)
		if err != nil {
			return nil, fmt.Errorf("classify: set %q: %w", set.Algorithm(), err)
		}

		results[i] = result
	}

	return results, nil
}
