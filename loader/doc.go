// Package loader reads the tabular benchmark result files produced by the
// sorting benchmark harness into measurement sets.
//
// Two layouts exist. A single-series file carries one algorithm:
//
//	Size,Time (s),Time (ms),Formatted Time
//	1000,0.000912,0.912,0.91 ms
//
// A comparison file carries one duration column pair per algorithm, where the
// column prefix names the algorithm:
//
//	Size,HeapSort Time (ms),QuickSort Time (ms),HeapSort Time (s),QuickSort Time (s)
//
// The loader converts everything to the engine's canonical unit (seconds),
// preferring a "(s)" column and scaling a "(ms)" column by 1/1000 when that
// is all the file has. Columns the loader does not recognize (such as
// "Formatted Time") are ignored. A file missing the Size column or the
// expected duration column(s) is rejected with ErrSchemaMismatch; the
// presence of two algorithm column pairs is what distinguishes comparison
// input from single-series input.
//
// Row-level validity (failed measurements recorded as non-positive durations)
// is not the loader's concern: those rows parse fine and are dropped by the
// measurement package's filtering.
package loader
