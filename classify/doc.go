// Package classify selects the growth model that best explains a measured
// timing sweep.
//
// Analyze runs the curve fitter over every model in the library (Linear,
// Linearithmic, Quadratic, in that fixed order) and picks the best fit by
// maximum R². Ties within Epsilon go to the earlier model in enumeration
// order, so selection is deterministic and reproducible on identical input.
// When no model fits, the result is StatusIndeterminate: a valid terminal
// outcome that renderers must be able to consume, never an excuse to pick an
// arbitrary model.
//
// Validation failures (ErrInsufficientData, ErrDegenerateSizes) abort
// classification for that set before any fitting and surface as errors; a
// single model's fit failure is recovered automatically and classification
// proceeds with the remaining models.
//
// Compare extends classification to two algorithms measured over the same
// nominal size sweep. Each side is filtered and classified independently, and
// a derived ratio series (duration A / duration B) is built at the sizes
// where both sides have a valid sample. An empty ratio series yields an
// indeterminate summary rather than statistics over zero points.
package classify
