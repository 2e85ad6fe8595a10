// Package measurement defines the timing sample model consumed by the
// classification engine.
//
// A Sample is a single (size, duration) observation of an algorithm run.
// A Set is an ordered collection of samples for one algorithm, filtered for
// validity at construction time and immutable afterwards.
//
// # Validity
//
// The benchmark harness reports a non-positive duration when a measurement
// fails, so rows with duration <= 0 (or a non-positive size) are dropped when
// a Set is built. Before any curve fitting, callers must run Validate to
// confirm the surviving data can support a non-degenerate fit: at least two
// samples, with at least two distinct sizes.
//
// # Units
//
// Durations are always seconds. Presentation layers that want milliseconds
// scale on output; no other unit ever enters the engine.
package measurement
