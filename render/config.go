package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/floatbits/format"
	"github.com/arloliu/floatbits/internal/logging"
	"github.com/arloliu/floatbits/internal/options"
)

// DefaultPrecision is the number of significant digits used for decimal values.
const DefaultPrecision = 6

// maxPrecision is enough digits to round-trip any float64.
const maxPrecision = 17

// Config holds rendering settings shared by Console and ExportCSV.
// Each consumer ignores the settings that do not apply to it.
type Config struct {
	breakdown bool
	listing   bool
	highlight bool

	precision  int
	scientific bool

	compression    format.CompressionType
	compressionSet bool

	logger *zap.Logger
}

// Option configures rendering.
type Option = options.Option[*Config]

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		precision:   DefaultPrecision,
		compression: format.CompressionNone,
		logger:      logging.Logger(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFieldBreakdown adds the Sign, Exponent and Mantissa lines under each binary line.
func WithFieldBreakdown(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.breakdown = enabled
	})
}

// WithListing switches the console to "<index>: <value>" lines instead of binary lines.
func WithListing(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.listing = enabled
	})
}

// WithHighlight colours the sign, exponent and mantissa runs of the binary string.
// Colour is only emitted when the destination is a terminal that supports it.
func WithHighlight(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.highlight = enabled
	})
}

// WithPrecision sets the number of significant digits for decimal values.
func WithPrecision(digits int) Option {
	return options.New(func(c *Config) error {
		if digits < 1 || digits > maxPrecision {
			return fmt.Errorf("precision must be between 1 and %d, got %d", maxPrecision, digits)
		}
		c.precision = digits
		c.scientific = false

		return nil
	})
}

// WithScientific prints decimal values in scientific notation with digits after the point.
func WithScientific(digits int) Option {
	return options.New(func(c *Config) error {
		if digits < 0 || digits > maxPrecision {
			return fmt.Errorf("scientific digits must be between 0 and %d, got %d", maxPrecision, digits)
		}
		c.precision = digits
		c.scientific = true

		return nil
	})
}

// WithCSVCompression forces the compression of the CSV destination instead of
// inferring it from the path's extension.
func WithCSVCompression(ct format.CompressionType) Option {
	return options.NoError(func(c *Config) {
		c.compression = ct
		c.compressionSet = true
	})
}

// WithLogger sets the logger for debug diagnostics.
func WithLogger(l *zap.Logger) Option {
	return options.NoError(func(c *Config) {
		if l != nil {
			c.logger = l
		}
	})
}

func (c *Config) formatValue(v float32) string {
	return FormatDecimal(v, c.precision, c.scientific)
}
