package blob

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/growthfit/compress"
	"github.com/arloliu/growthfit/endian"
	"github.com/arloliu/growthfit/format"
	"github.com/arloliu/growthfit/internal/hash"
	"github.com/arloliu/growthfit/internal/options"
	"github.com/arloliu/growthfit/measurement"
)

// ErrInvalidBlob is returned when data is not a run blob, is truncated, or
// fails its payload checksum.
var ErrInvalidBlob = errors.New("blob: invalid or corrupted run blob")

// magic identifies a version-1 run blob.
var magic = [4]byte{'G', 'F', 'R', '1'}

// Fixed header layout: magic(4) + compression(1) + nameLen(2) + count(4) +
// runID(8) + payloadHash(8).
const headerSize = 4 + 1 + 2 + 4 + 8 + 8

// Header describes a run blob without decoding its samples.
type Header struct {
	// Algorithm is the algorithm name the run belongs to.
	Algorithm string
	// RunID is the xxHash64 of the algorithm name.
	RunID uint64
	// Count is the number of stored samples.
	Count int
	// Compression is the payload codec.
	Compression format.CompressionType
}

// Encode serializes a filtered measurement set into a run blob.
func Encode(set *measurement.Set, opts ...Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	name := set.Algorithm()
	if len(name) > math.MaxUint16 {
		return nil, fmt.Errorf("blob: algorithm name too long: %d bytes", len(name))
	}

	samples := set.Samples()

	payload, err := codec.Compress(encodePayload(samples))
	if err != nil {
		return nil, fmt.Errorf("blob: compressing payload: %w", err)
	}

	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 0, headerSize+len(name)+len(payload))
	buf = append(buf, magic[:]...)
	buf = append(buf, byte(cfg.Compression))
	buf = engine.AppendUint16(buf, uint16(len(name)))
	buf = engine.AppendUint32(buf, uint32(len(samples)))
	buf = engine.AppendUint64(buf, hash.ID(name))
	buf = engine.AppendUint64(buf, xxhash.Sum64(payload))
	buf = append(buf, name...)
	buf = append(buf, payload...)

	return buf, nil
}

// encodePayload writes the columnar plain payload: sizes as zigzag-varint
// deltas, then durations as raw little-endian float64 bits.
func encodePayload(samples []measurement.Sample) []byte {
	engine := endian.GetLittleEndianEngine()

	// Varints take at most 10 bytes each; durations exactly 8.
	buf := make([]byte, 0, len(samples)*(10+8))

	prev := int64(0)
	for _, smp := range samples {
		size := int64(smp.Size)
		buf = binary.AppendUvarint(buf, zigzag(size-prev))
		prev = size
	}

	for _, smp := range samples {
		buf = engine.AppendUint64(buf, math.Float64bits(smp.Duration))
	}

	return buf
}

// ReadHeader parses the blob header without touching the payload. The
// payload checksum is not verified; use Decode for full validation.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return Header{}, ErrInvalidBlob
	}

	engine := endian.GetLittleEndianEngine()

	compression := format.CompressionType(data[4])
	if !compression.Valid() {
		return Header{}, fmt.Errorf("%w: unknown compression %d", ErrInvalidBlob, data[4])
	}

	nameLen := int(engine.Uint16(data[5:7]))
	if len(data) < headerSize+nameLen {
		return Header{}, ErrInvalidBlob
	}

	return Header{
		Algorithm:   string(data[headerSize : headerSize+nameLen]),
		RunID:       engine.Uint64(data[11:19]),
		Count:       int(engine.Uint32(data[7:11])),
		Compression: compression,
	}, nil
}

// Decode verifies and deserializes a run blob back into a measurement set.
func Decode(data []byte) (*measurement.Set, error) {
	header, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	engine := endian.GetLittleEndianEngine()

	payload := data[headerSize+len(header.Algorithm):]
	if engine.Uint64(data[19:27]) != xxhash.Sum64(payload) {
		return nil, fmt.Errorf("%w: payload checksum mismatch", ErrInvalidBlob)
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, err
	}

	plain, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBlob, err)
	}

	sizes, durations, err := decodePayload(plain, header.Count)
	if err != nil {
		return nil, err
	}

	return measurement.NewSetFromColumns(header.Algorithm, sizes, durations), nil
}

// decodePayload reverses encodePayload.
func decodePayload(plain []byte, count int) (sizes []int, durations []float64, err error) {
	engine := endian.GetLittleEndianEngine()

	sizes = make([]int, count)

	offset := 0
	prev := int64(0)
	for i := 0; i < count; i++ {
		delta, n := binary.Uvarint(plain[offset:])
		if n <= 0 {
			return nil, nil, fmt.Errorf("%w: truncated size column", ErrInvalidBlob)
		}

		prev += unzigzag(delta)
		sizes[i] = int(prev)
		offset += n
	}

	if len(plain)-offset != count*8 {
		return nil, nil, fmt.Errorf("%w: truncated duration column", ErrInvalidBlob)
	}

	durations = make([]float64, count)
	for i := 0; i < count; i++ {
		bits := engine.Uint64(plain[offset+i*8:])
		durations[i] = math.Float64frombits(bits)
	}

	return sizes, durations, nil
}

// zigzag maps signed deltas onto unsigned varint space.
func zigzag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
