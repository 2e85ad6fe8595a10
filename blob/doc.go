// Package blob provides a compact binary snapshot format for archived
// benchmark runs.
//
// The benchmark harness accumulates a directory of result files over time;
// a run blob is the space-efficient, re-loadable form of one filtered run.
// The layout is columnar: sizes are stored as zigzag-varint deltas (a size
// sweep is ascending, so deltas are small), durations as raw little-endian
// float64 bits, and the whole payload is optionally compressed with one of
// the codecs from the compress package (Zstd by default).
//
// Every blob carries the algorithm name, its xxHash64 run ID for cheap
// matching without string comparison, and an xxHash64 checksum of the stored
// payload so corruption is detected before samples reach the engine.
//
//	data, err := blob.Encode(set)                      // Zstd payload
//	data, err = blob.Encode(set,
//	    blob.WithCompression(format.CompressionLZ4))   // or pick a codec
//	set, err = blob.Decode(data)
package blob
