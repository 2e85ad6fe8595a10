// Package fit calibrates a growth model's parameters against a measurement
// set by nonlinear least squares.
//
// Curve minimizes the sum of squared residuals between model.Evaluate(n; a, b)
// and the observed durations using a Levenberg-Marquardt iteration seeded from
// the neutral guess (a=1, b=0), with a forward-difference Jacobian so any
// Model implementation can be fitted without exposing derivatives. The damping
// term is scaled by the diagonal of JᵀJ, which keeps the solver stable even
// though the scale column (n², n·ln n) dwarfs the offset column.
//
// The fit quality is reported as the in-sample coefficient of determination
// R² = 1 - SS_res/SS_tot. When SS_tot is zero (every observed duration
// identical) R² is undefined and the result is StatusFitFailed rather than a
// division by zero. Solver non-convergence and non-finite parameters also
// yield StatusFitFailed; a failed fit carries no parameters and is an
// expected, recoverable outcome, not an error.
//
// The solver is deterministic: the same measurement set always produces
// bit-identical results.
package fit
