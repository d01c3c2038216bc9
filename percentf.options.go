package percentf

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring a Formatter.
type Option func(*formatterConfig)

// rawConversion is a registration collected by options, coerced and validated
// at New time so option application itself never fails.
type rawConversion struct {
	code  string
	value any
}

// formatterConfig holds the internal configuration for a Formatter.
type formatterConfig struct {
	marker        byte
	conversions   []rawConversion
	fallback      FallbackPolicy
	strict        bool
	hunker        Hunker
	input         InputProcessor
	replacer      Replacer
	hunkFormatter HunkFormatter
	store         PatternStore
	logger        *zap.Logger
}

// defaultFormatterConfig returns the default formatter configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		marker:   DefaultMarker,
		fallback: FallbackError,
	}
}

// WithMarker sets the placeholder escape character.
// Default: '%'
func WithMarker(marker byte) Option {
	return func(c *formatterConfig) {
		c.marker = marker
	}
}

// WithConversions registers a table of conversion codes. Map values may be
// strings (fixed replacements), Conversion values, or conversion functions.
// Codes must be single characters; the marker's own code is reserved.
func WithConversions(codes map[string]any) Option {
	return func(c *formatterConfig) {
		for _, code := range sortedCodes(codes) {
			c.conversions = append(c.conversions, rawConversion{code: code, value: codes[code]})
		}
	}
}

// WithConversion registers a single conversion code.
func WithConversion(code string, conv Conversion) Option {
	return func(c *formatterConfig) {
		c.conversions = append(c.conversions, rawConversion{code: code, value: conv})
	}
}

// WithFallback sets the policy for unresolvable placeholders (unknown marker
// or missing named key).
// Default: FallbackError
func WithFallback(policy FallbackPolicy) Option {
	return func(c *formatterConfig) {
		c.fallback = policy
	}
}

// WithStrictHunker makes the default tokenizer reject unparseable placeholder
// sequences with MalformedFormatError instead of keeping them as literal
// text. Ignored when a custom Hunker is supplied.
func WithStrictHunker() Option {
	return func(c *formatterConfig) {
		c.strict = true
	}
}

// WithHunker replaces the tokenizer stage.
func WithHunker(h Hunker) Option {
	return func(c *formatterConfig) {
		c.hunker = h
	}
}

// WithInputProcessor replaces the input processing stage.
// Default: PassThroughProcessor
func WithInputProcessor(p InputProcessor) Option {
	return func(c *formatterConfig) {
		c.input = p
	}
}

// WithReplacer replaces the replacement stage.
// Default: PositionalReplacer
func WithReplacer(r Replacer) Option {
	return func(c *formatterConfig) {
		c.replacer = r
	}
}

// WithHunkFormatter replaces the width/alignment/truncation stage.
// Default: DefaultHunkFormatter
func WithHunkFormatter(f HunkFormatter) Option {
	return func(c *formatterConfig) {
		c.hunkFormatter = f
	}
}

// WithStore attaches a pattern store, enabling SavePattern and FormatStored.
func WithStore(s PatternStore) Option {
	return func(c *formatterConfig) {
		c.store = s
	}
}

// WithLogger sets the logger for the formatter and its default stages.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}
