package compress

// ZstdCodec compresses payloads with Zstandard. It favors ratio over speed,
// which suits archived benchmark runs that are written once and re-read
// rarely.
//
// The implementation is selected at build time: cgo builds use valyala/gozstd
// (libzstd bindings), pure-Go builds use klauspost/compress/zstd. The two are
// wire-compatible.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
