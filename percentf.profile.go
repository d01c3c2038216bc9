package percentf

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a declarative formatter configuration, typically loaded from a
// YAML document:
//
//	marker: "%"
//	conversions:
//	  v: "1.0.0"
//	  n: "\n"
//	input: forbid
//	replacer: positional
//	fallback: literal
//
// Profiles can only carry fixed conversions; computable conversions are
// registered in code through options.
type Profile struct {
	Marker      string            `yaml:"marker,omitempty"`
	Conversions map[string]string `yaml:"conversions,omitempty"`
	Input       string            `yaml:"input,omitempty"`
	Replacer    string            `yaml:"replacer,omitempty"`
	Fallback    string            `yaml:"fallback,omitempty"`
	Strict      bool              `yaml:"strict,omitempty"`
}

// ParseProfile decodes and validates a YAML profile document.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, NewProfileParseError(err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParseProfileFile reads a file and parses it as a profile.
func ParseProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewProfileParseError(err)
	}
	return ParseProfile(data)
}

// Validate checks field values without building options.
func (p *Profile) Validate() error {
	if p.Marker != "" && len(p.Marker) != 1 {
		return NewProfileError(ErrMsgProfileMarker, "marker", p.Marker)
	}
	switch p.Input {
	case "", InputStrategyPassThrough, InputStrategyNamed, InputStrategySingle, InputStrategyForbid:
	default:
		return NewProfileError(ErrMsgProfileStrategy, "input", p.Input)
	}
	switch p.Replacer {
	case "", ReplacerStrategyPositional, ReplacerStrategyNamed, ReplacerStrategyMethod:
	default:
		return NewProfileError(ErrMsgProfileStrategy, "replacer", p.Replacer)
	}
	switch p.Fallback {
	case "", FallbackNameError, FallbackNameLiteral:
	default:
		return NewProfileError(ErrMsgProfileStrategy, "fallback", p.Fallback)
	}
	for code := range p.Conversions {
		if len(code) != 1 {
			return NewConversionKeyError(code)
		}
	}
	return nil
}

// Options converts the profile into formatter options.
func (p *Profile) Options() ([]Option, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var opts []Option
	if p.Marker != "" {
		opts = append(opts, WithMarker(p.Marker[0]))
	}
	if len(p.Conversions) > 0 {
		codes := make(map[string]any, len(p.Conversions))
		for code, value := range p.Conversions {
			codes[code] = value
		}
		opts = append(opts, WithConversions(codes))
	}
	switch p.Input {
	case InputStrategyNamed:
		opts = append(opts, WithInputProcessor(RequireNamedProcessor{}))
	case InputStrategySingle:
		opts = append(opts, WithInputProcessor(RequireSingleProcessor{}))
	case InputStrategyForbid:
		opts = append(opts, WithInputProcessor(ForbidProcessor{}))
	}
	switch p.Replacer {
	case ReplacerStrategyNamed:
		opts = append(opts, WithReplacer(NewNamedReplacer(nil)))
	case ReplacerStrategyMethod:
		opts = append(opts, WithReplacer(NewMethodReplacer(nil)))
	}
	if p.Fallback == FallbackNameLiteral {
		opts = append(opts, WithFallback(FallbackLiteral))
	}
	if p.Strict {
		opts = append(opts, WithStrictHunker())
	}
	return opts, nil
}

// NewFromProfile builds a Formatter from a YAML profile document. Extra
// options are applied after the profile's own, so callers can add computable
// conversions or a logger on top.
func NewFromProfile(data []byte, extra ...Option) (*Formatter, error) {
	p, err := ParseProfile(data)
	if err != nil {
		return nil, err
	}
	opts, err := p.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
