package fit

import (
	"fmt"

	"github.com/arloliu/growthfit/internal/options"
)

// Config holds solver configuration for one calibration.
type Config struct {
	// MaxIterations bounds the Levenberg-Marquardt iteration count.
	MaxIterations int
	// Tolerance is the relative sum-of-squares improvement below which the
	// solver is considered converged.
	Tolerance float64
}

// defaultConfig returns the solver defaults: 200 iterations, 1e-12 relative
// tolerance. Well-conditioned benchmark sweeps converge in far fewer steps.
func defaultConfig() Config {
	return Config{
		MaxIterations: 200,
		Tolerance:     1e-12,
	}
}

// Option is a functional option for the solver configuration.
type Option = options.Option[*Config]

// WithMaxIterations sets the iteration bound. Values below 1 are rejected.
func WithMaxIterations(n int) Option {
	return options.New(func(cfg *Config) error {
		if n < 1 {
			return fmt.Errorf("fit: max iterations must be >= 1, got %d", n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance sets the relative convergence tolerance. Values <= 0 are
// rejected.
func WithTolerance(tol float64) Option {
	return options.New(func(cfg *Config) error {
		if tol <= 0 {
			return fmt.Errorf("fit: tolerance must be > 0, got %g", tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}
