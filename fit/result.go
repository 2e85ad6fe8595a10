package fit

import (
	"fmt"
	"math"

	"github.com/arloliu/growthfit/model"
)

// Status reports the outcome of calibrating one model.
type Status int

const (
	// StatusFitted indicates the solver converged and R² is defined.
	StatusFitted Status = iota
	// StatusFitFailed indicates the solver did not converge, produced
	// non-finite parameters, or R² was undefined. A failed fit carries no
	// parameters.
	StatusFitFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusFitted:
		return "fitted"
	case StatusFitFailed:
		return "fit_failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of calibrating one growth model against one
// measurement set. It is owned by whichever classification step produced it
// and is never mutated afterwards.
type Result struct {
	// Model is the growth model that was calibrated.
	Model model.Model
	// A is the calibrated scale parameter. Zero when Status is StatusFitFailed.
	A float64
	// B is the calibrated offset parameter. Zero when Status is StatusFitFailed.
	B float64
	// RSquared is the in-sample coefficient of determination. Zero when
	// Status is StatusFitFailed.
	RSquared float64
	// Status reports whether the calibration succeeded.
	Status Status
}

// Fitted reports whether the calibration succeeded.
func (r Result) Fitted() bool {
	return r.Status == StatusFitted
}

// Formula returns the calibrated model formula, or a placeholder when the
// fit failed.
func (r Result) Formula() string {
	if !r.Fitted() {
		return fmt.Sprintf("%s: fit failed", r.Model.Type())
	}

	return r.Model.Formula(r.A, r.B)
}

// Predict evaluates the calibrated curve at input size n. It returns NaN when
// the fit failed, so a renderer sampling a reference curve cannot mistake a
// failed fit for a flat one.
func (r Result) Predict(n float64) float64 {
	if !r.Fitted() {
		return math.NaN()
	}

	return r.Model.Evaluate(n, r.A, r.B)
}

// String returns a one-line summary of the result.
func (r Result) String() string {
	if !r.Fitted() {
		return fmt.Sprintf("Result{Model: %s, Status: %s}", r.Model.Type(), r.Status)
	}

	return fmt.Sprintf("Result{Model: %s, R²: %.4f, Formula: %s}",
		r.Model.Type(), r.RSquared, r.Model.Formula(r.A, r.B))
}
