// Package compress provides the payload codecs available to the blob format.
//
// A Codec combines compression and decompression behind one interface.
// Four codecs are built in, selected by format.CompressionType:
//
//   - None: pass-through, for tiny runs where compression is all overhead
//   - Zstd: best ratio; cgo builds use valyala/gozstd, pure-Go builds fall
//     back to klauspost/compress/zstd
//   - S2:   fastest, moderate ratio (klauspost/compress/s2)
//   - LZ4:  fast block compression (pierrec/lz4)
//
// All codecs are stateless values safe for concurrent use; internal encoder
// state is pooled where the underlying library benefits from reuse.
package compress
