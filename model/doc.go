// Package model defines the candidate growth models the classifier calibrates
// against measured timing data.
//
// Each model is a stateless two-parameter function f(n; a, b) mapping an input
// size to an estimated duration, where a scales the growth term and b absorbs
// the fixed per-run overhead. Three models are built in, matching the
// complexity classes a comparison sort can plausibly land in:
//
//   - Linear:        T(n) = a*n + b
//   - Linearithmic:  T(n) = a*n*ln(n) + b
//   - Quadratic:     T(n) = a*n² + b
//
// The linearithmic model uses the natural logarithm, and the same base is
// used everywhere a log term appears (calibration and reference-curve
// evaluation alike); switching bases only rescales the fitted a, but mixing
// them within one run would corrupt it.
//
// Library returns the models in a fixed enumeration order. That order is part
// of the engine's contract: the classifier fits models in library order and
// breaks R² ties in favor of the earlier model, which keeps selection
// deterministic across runs.
package model
