package percentf

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Formatter is the main entry point for the percentf engine. It holds the
// conversion table and one implementation per pipeline stage. A Formatter is
// immutable after construction and safe for concurrent use, provided caller
// supplied computable conversions are themselves side-effect-free or
// independently thread-safe.
type Formatter struct {
	marker   byte
	table    ConversionTable
	fallback FallbackPolicy
	hunker   Hunker
	input    InputProcessor
	replacer Replacer
	hunkFmt  HunkFormatter
	store    PatternStore
	logger   *zap.Logger
}

// New creates a new Formatter with the given options.
//
// The conversion table is seeded with the %n (newline) and %t (tab) codes,
// which callers may override, and the marker's own code as a literal marker,
// which is reserved: registering a conversion for it fails with a
// reserved-conversion error.
func New(opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	markerCode := string(config.marker)
	table := ConversionTable{
		CodeNewline: Fixed("\n"),
		CodeTab:     Fixed("\t"),
	}
	for _, rc := range config.conversions {
		if len(rc.code) != 1 {
			return nil, NewConversionKeyError(rc.code)
		}
		if rc.code == markerCode {
			return nil, NewReservedConversionError(rc.code)
		}
		conv, err := coerceConversion(rc.code, rc.value)
		if err != nil {
			return nil, err
		}
		table[rc.code] = conv
	}
	// Reserved: the doubled marker always yields a single literal marker.
	table[markerCode] = Fixed(markerCode)

	hunker := config.hunker
	if hunker == nil {
		if config.strict {
			hunker = NewStrictHunker(config.marker, logger)
		} else {
			hunker = NewDefaultHunker(config.marker, logger)
		}
	}
	input := config.input
	if input == nil {
		input = PassThroughProcessor{}
	}
	replacer := config.replacer
	if replacer == nil {
		replacer = NewPositionalReplacer(logger)
	}
	hunkFmt := config.hunkFormatter
	if hunkFmt == nil {
		hunkFmt = DefaultHunkFormatter{}
	}

	logger.Debug(LogMsgFormatterCreated, zap.String(LogFieldMarker, markerCode))

	return &Formatter{
		marker:   config.marker,
		table:    table,
		fallback: config.fallback,
		hunker:   hunker,
		input:    input,
		replacer: replacer,
		hunkFmt:  hunkFmt,
		store:    config.store,
		logger:   logger,
	}, nil
}

// MustNew creates a new Formatter and panics if there's an error.
func MustNew(opts ...Option) *Formatter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Format runs the substitution pipeline: tokenize the format string, process
// the trailing arguments, resolve each placeholder, apply width rules and
// assemble the output. A failing call produces no output.
func (f *Formatter) Format(format string, args ...any) (string, error) {
	hunks, err := f.hunker.Hunks(format)
	if err != nil {
		return "", err
	}

	input, err := f.input.Process(args)
	if err != nil {
		return "", err
	}

	if err := f.replacer.Replace(hunks, input, f.table, f.fallback); err != nil {
		return "", err
	}

	return f.assemble(hunks), nil
}

// assemble concatenates literal hunks verbatim and formatted placeholder
// hunks in original sequence order.
func (f *Formatter) assemble(hunks []*Hunk) string {
	var sb strings.Builder
	for _, h := range hunks {
		if h.Kind == HunkLiteral {
			sb.WriteString(h.Text)
			continue
		}
		sb.WriteString(f.hunkFmt.FormatHunk(h))
	}
	return sb.String()
}

// Marker returns the configured escape marker character.
func (f *Formatter) Marker() byte {
	return f.marker
}

// Fallback returns the configured fallback policy.
func (f *Formatter) Fallback() FallbackPolicy {
	return f.fallback
}

// Conversions returns a copy of the conversion table.
func (f *Formatter) Conversions() ConversionTable {
	return f.table.Clone()
}

// HasConversion checks whether a conversion is registered for the code.
func (f *Formatter) HasConversion(code string) bool {
	_, ok := f.table[code]
	return ok
}

// SavePattern stores a named format pattern in the attached pattern store.
func (f *Formatter) SavePattern(ctx context.Context, p *Pattern) error {
	if f.store == nil {
		return NewStoreNotConfiguredError()
	}
	return f.store.Save(ctx, p)
}

// FormatStored loads a named pattern from the attached store and formats it
// with the formatter's configured pipeline. The pattern's Marker field is
// advisory metadata; rendering always uses the formatter's marker.
func (f *Formatter) FormatStored(ctx context.Context, name string, args ...any) (string, error) {
	if f.store == nil {
		return "", NewStoreNotConfiguredError()
	}
	p, err := f.store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	return f.Format(p.Format, args...)
}

// coerceConversion normalizes a registered conversion value.
func coerceConversion(code string, v any) (Conversion, error) {
	switch tv := v.(type) {
	case Conversion:
		return tv, nil
	case string:
		return Fixed(tv), nil
	case ConversionFunc:
		return Computable(tv), nil
	case func(*ConversionContext) (string, error):
		return Computable(tv), nil
	}
	return Conversion{}, NewInvalidConversionError(code)
}

// sortedCodes returns map keys in deterministic order.
func sortedCodes(codes map[string]any) []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
