package compress

// NoOpCodec bypasses compression entirely, returning its input unchanged.
// The returned slice shares memory with the input.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input data as-is.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data as-is.
func (NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
