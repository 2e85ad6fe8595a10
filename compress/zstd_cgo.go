//go:build cgo

package compress

import "github.com/valyala/gozstd"

// zstdLevel is the default libzstd compression level.
const zstdLevel = 3

// Compress compresses the input data using libzstd.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a Zstandard payload using libzstd.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
