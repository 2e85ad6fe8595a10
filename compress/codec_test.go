package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/growthfit/format"
)

// benchPayload mimics a run blob payload: small varints then float64 bits.
func benchPayload() []byte {
	data := make([]byte, 0, 4096)
	for i := 0; i < 512; i++ {
		data = append(data, byte(i%7), byte(i%13), 0, 0, 0, 0, byte(i), 0)
	}

	return data
}

func TestGetCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err, "codec %s", typ)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestRoundTripAllCodecs(t *testing.T) {
	payloads := map[string][]byte{
		"empty":      {},
		"tiny":       {0x01},
		"repetitive": bytes.Repeat([]byte("sorted"), 500),
		"columnar":   benchPayload(),
	}

	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(typ.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, restored)
			})
		}
	}
}

func TestNoOpPassThrough(t *testing.T) {
	codec := NewNoOpCodec()
	payload := []byte("untouched")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestCompressiveCodecsShrinkRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("benchmark"), 1000)

	for _, typ := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "codec %s", typ)
	}
}

func TestDecompressGarbage(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}

	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress(garbage)
	require.Error(t, err)
}
