// SPDX-License-Identifier: MIT

package wl

import (
	"runtime"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultIterations is the number of refinement rounds used when
// WithIterations is not given.
const DefaultIterations = 5

const tracerName = "github.com/katalvlaran/wlkernel/wl"

var configValidate = validator.New()

// Config is the resolved kernel configuration.
type Config struct {
	// Iterations is the number of refinement rounds after round 0.
	Iterations int `validate:"gte=1"`

	// Normalize enables cosine normalization of returned matrices.
	Normalize bool

	// Verbose promotes per-round progress logs to info level.
	Verbose bool

	// Concurrency bounds parallel work; 0 means runtime.GOMAXPROCS(0).
	Concurrency int `validate:"gte=0"`

	// OnIteration, if set, is called after each relabeling round with the
	// round index (0..Iterations) and the total number of rounds.
	OnIteration func(round, total int)

	tracer trace.Tracer
}

// Option configures a Kernel.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Iterations:  DefaultIterations,
		Concurrency: 0,
		OnIteration: func(int, int) {},
		tracer:      otel.Tracer(tracerName),
	}
}

// WithIterations sets the number of refinement rounds (n ≥ 1). The engine
// runs n+1 rounds in total, round 0 included.
func WithIterations(n int) Option {
	return func(c *Config) { c.Iterations = n }
}

// WithNormalize toggles normalization of returned matrices.
func WithNormalize(on bool) Option {
	return func(c *Config) { c.Normalize = on }
}

// WithVerbose toggles info-level progress logging.
func WithVerbose(on bool) Option {
	return func(c *Config) { c.Verbose = on }
}

// WithConcurrency bounds the number of goroutines used per phase.
// n == 0 selects runtime.GOMAXPROCS(0); n < 0 is invalid.
func WithConcurrency(n int) Option {
	return func(c *Config) { c.Concurrency = n }
}

// WithOnIteration registers a hook called after every relabeling round.
func WithOnIteration(fn func(round, total int)) Option {
	return func(c *Config) {
		if fn != nil {
			c.OnIteration = fn
		}
	}
}

// WithTracer overrides the OpenTelemetry tracer (default: the global
// provider's tracer for this package).
func WithTracer(t trace.Tracer) Option {
	return func(c *Config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// validate checks struct tags and wraps failures into ErrValidation.
func (c Config) validate() error {
	if err := configValidate.Struct(c); err != nil {
		return validationf("invalid config (%v)", err)
	}

	return nil
}

// limit resolves the effective concurrency bound.
func (c Config) limit() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

// settings builds the per-round base-kernel settings.
func (c Config) settings() Settings {
	return Settings{
		Normalize:   false,
		Verbose:     c.Verbose,
		Concurrency: c.Concurrency,
	}
}
