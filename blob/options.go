package blob

import (
	"fmt"

	"github.com/arloliu/growthfit/format"
	"github.com/arloliu/growthfit/internal/options"
)

// Config holds encoder configuration.
type Config struct {
	// Compression selects the payload codec.
	Compression format.CompressionType
}

// defaultConfig returns the encoder defaults: Zstd payload compression,
// matching the write-once read-rarely shape of archived runs.
func defaultConfig() Config {
	return Config{
		Compression: format.CompressionZstd,
	}
}

// Option is a functional option for the encoder configuration.
type Option = options.Option[*Config]

// WithCompression selects the payload compression codec.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		if !c.Valid() {
			return fmt.Errorf("blob: invalid compression type: %d", c)
		}
		cfg.Compression = c

		return nil
	})
}
