package percentf

import (
	"reflect"

	"go.uber.org/zap"
)

// demoteToLiteral turns an unresolved placeholder back into literal text,
// emitting its raw source span byte-for-byte. Used by the FallbackLiteral
// policy.
func demoteToLiteral(h *Hunk, logger *zap.Logger) {
	logger.Debug(LogMsgFallbackLiteral,
		zap.String(LogFieldMarker, h.Marker),
		zap.Int(LogFieldOffset, h.Offset))
	h.Kind = HunkLiteral
	h.Text = h.Raw
}

// PositionalReplacer resolves computable conversions against trailing
// arguments in call order. A running cursor starts at zero; each computable
// conversion consumes the next unconsumed value and advances the cursor.
// Fixed conversions never consume a value. When the positional values are
// exhausted the conversion receives a nil value and Index -1.
type PositionalReplacer struct {
	logger *zap.Logger
}

// NewPositionalReplacer creates the default positional replacement strategy.
func NewPositionalReplacer(logger *zap.Logger) *PositionalReplacer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PositionalReplacer{logger: logger}
}

// Replace implements Replacer.
func (r *PositionalReplacer) Replace(hunks []*Hunk, input *ResolvedInput, table ConversionTable, policy FallbackPolicy) error {
	r.logger.Debug(LogMsgReplacerStart, zap.String(LogFieldMode, InputModePositional.String()))

	cursor := 0
	for _, h := range hunks {
		if h.Kind != HunkPlaceholder {
			continue
		}

		conv, ok := table[h.Marker]
		if !ok {
			if policy == FallbackLiteral {
				demoteToLiteral(h, r.logger)
				continue
			}
			return NewUnknownConversionError(h.Marker, h.Offset)
		}

		if !conv.IsComputable() {
			h.Replacement = conv.FixedValue()
			h.Resolved = true
			continue
		}

		cctx := &ConversionContext{
			Marker:      h.Marker,
			BraceArg:    h.BraceArg,
			HasBraceArg: h.HasBraceArg,
			Index:       -1,
		}
		if cursor < len(input.Positional) {
			cctx.Value = input.Positional[cursor]
			cctx.Index = cursor
			cursor++
		}

		out, err := conv.invoke(cctx)
		if err != nil {
			return NewConversionFailedError(h.Marker, err)
		}
		h.Replacement = out
		h.Resolved = true
	}

	r.logger.Debug(LogMsgReplacerEnd, zap.Int(LogFieldHunks, len(hunks)))
	return nil
}

// NamedReplacer resolves computable conversions by key lookup in the named
// input mapping. The lookup key is the placeholder's brace-argument when
// present, the marker character otherwise. A missing key fails with
// MissingNamedInputError under the default policy; FallbackLiteral keeps the
// placeholder's raw text instead.
type NamedReplacer struct {
	logger *zap.Logger
}

// NewNamedReplacer creates the named replacement strategy.
func NewNamedReplacer(logger *zap.Logger) *NamedReplacer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NamedReplacer{logger: logger}
}

// Replace implements Replacer.
func (r *NamedReplacer) Replace(hunks []*Hunk, input *ResolvedInput, table ConversionTable, policy FallbackPolicy) error {
	r.logger.Debug(LogMsgReplacerStart, zap.String(LogFieldMode, InputModeNamed.String()))

	for _, h := range hunks {
		if h.Kind != HunkPlaceholder {
			continue
		}

		conv, ok := table[h.Marker]
		if !ok {
			if policy == FallbackLiteral {
				demoteToLiteral(h, r.logger)
				continue
			}
			return NewUnknownConversionError(h.Marker, h.Offset)
		}

		if !conv.IsComputable() {
			h.Replacement = conv.FixedValue()
			h.Resolved = true
			continue
		}

		key := h.Marker
		if h.HasBraceArg {
			key = h.BraceArg
		}
		value, present := input.Named[key]
		if !present {
			if policy == FallbackLiteral {
				demoteToLiteral(h, r.logger)
				continue
			}
			return NewMissingNamedInputError(key)
		}

		out, err := conv.invoke(&ConversionContext{
			Marker:      h.Marker,
			BraceArg:    h.BraceArg,
			HasBraceArg: h.HasBraceArg,
			Value:       value,
			Index:       -1,
			Key:         key,
		})
		if err != nil {
			return NewConversionFailedError(h.Marker, err)
		}
		h.Replacement = out
		h.Resolved = true
	}

	r.logger.Debug(LogMsgReplacerEnd, zap.Int(LogFieldHunks, len(hunks)))
	return nil
}

// MethodReplacer treats the resolved input as a single opaque receiver and
// dispatches each placeholder to a capability on it. A Fixed conversion names
// the capability to invoke; a Computable conversion is called directly with
// the receiver as its value.
//
// Capabilities are looked up by reflection and must have one of the
// signatures func() string, func(string) string, func() (string, error) or
// func(string) (string, error); the string parameter receives the
// brace-argument.
type MethodReplacer struct {
	logger *zap.Logger
}

// NewMethodReplacer creates the method-dispatch replacement strategy.
func NewMethodReplacer(logger *zap.Logger) *MethodReplacer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MethodReplacer{logger: logger}
}

// Replace implements Replacer.
func (r *MethodReplacer) Replace(hunks []*Hunk, input *ResolvedInput, table ConversionTable, policy FallbackPolicy) error {
	r.logger.Debug(LogMsgReplacerStart, zap.String(LogFieldMode, InputModeReceiver.String()))

	for _, h := range hunks {
		if h.Kind != HunkPlaceholder {
			continue
		}

		conv, ok := table[h.Marker]
		if !ok {
			if policy == FallbackLiteral {
				demoteToLiteral(h, r.logger)
				continue
			}
			return NewUnknownConversionError(h.Marker, h.Offset)
		}

		cctx := &ConversionContext{
			Marker:      h.Marker,
			BraceArg:    h.BraceArg,
			HasBraceArg: h.HasBraceArg,
			Value:       input.Receiver,
			Index:       -1,
		}

		var out string
		var err error
		if conv.IsComputable() {
			out, err = conv.invoke(cctx)
			if err != nil {
				err = NewConversionFailedError(h.Marker, err)
			}
		} else if name := conv.FixedValue(); isCapabilityName(name) {
			out, err = callCapability(input.Receiver, name, h.BraceArg)
		} else {
			// Reserved marker entry and literal codes like %n stay plain
			// replacement strings, they are not capability names.
			out = conv.FixedValue()
		}
		if err != nil {
			return err
		}

		h.Replacement = out
		h.Resolved = true
	}

	r.logger.Debug(LogMsgReplacerEnd, zap.Int(LogFieldHunks, len(hunks)))
	return nil
}

// isCapabilityName reports whether a fixed conversion value names an
// exported method rather than a literal replacement.
func isCapabilityName(s string) bool {
	return len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z'
}

// callCapability invokes the named method on the receiver.
func callCapability(receiver any, name string, braceArg string) (string, error) {
	if receiver == nil {
		return "", NewCapabilityError(ErrMsgNilReceiver, name)
	}

	m := reflect.ValueOf(receiver).MethodByName(name)
	if !m.IsValid() {
		return "", NewCapabilityError(ErrMsgCapabilityNotFound, name)
	}

	switch fn := m.Interface().(type) {
	case func() string:
		return fn(), nil
	case func(string) string:
		return fn(braceArg), nil
	case func() (string, error):
		return fn()
	case func(string) (string, error):
		return fn(braceArg)
	}
	return "", NewCapabilityError(ErrMsgCapabilitySignature, name)
}
