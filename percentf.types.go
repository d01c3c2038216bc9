package percentf

import "fmt"

// HunkKind identifies whether a hunk is literal text or a placeholder.
type HunkKind int

// Hunk kind constants
const (
	HunkLiteral HunkKind = iota
	HunkPlaceholder
)

// String returns the string representation of the hunk kind.
func (k HunkKind) String() string {
	if k == HunkPlaceholder {
		return "PLACEHOLDER"
	}
	return "LITERAL"
}

// Hunk is a single segment of a tokenized format string: either literal text
// or a placeholder awaiting resolution. A hunk sequence is owned by one
// in-flight Format call and never outlives it.
type Hunk struct {
	Kind HunkKind

	// Text is the literal content (HunkLiteral only).
	Text string

	// Raw is the original source span of the placeholder, used when an
	// unresolved placeholder is kept as literal text.
	Raw string

	// Marker is the single-character conversion code.
	Marker string

	// LeftAlign pads after the replacement instead of before it.
	LeftAlign bool

	// MinWidth and MaxWidth are WidthUnset when absent; the hunk formatter
	// then derives them from the replacement length.
	MinWidth int
	MaxWidth int

	// BraceArg is the raw text captured between braces, passed verbatim to
	// computable conversions. HasBraceArg distinguishes "%{}" from "%".
	BraceArg    string
	HasBraceArg bool

	// Replacement is populated by the replacer stage.
	Replacement string
	Resolved    bool

	// Offset is the byte offset of the placeholder in the format string.
	Offset int
}

// ConversionContext carries the inputs available to a computable conversion:
// the placeholder's brace-argument, the resolved input value, and positional
// or named metadata.
type ConversionContext struct {
	// Marker is the placeholder's conversion code.
	Marker string

	// BraceArg is the placeholder's brace-argument text ("" when absent).
	BraceArg    string
	HasBraceArg bool

	// Value is the resolved input value: the consumed positional value, the
	// named-mode looked-up value, or the opaque receiver. Nil when the input
	// processor supplied nothing.
	Value any

	// Index is the positional cursor position consumed for this placeholder,
	// or -1 outside positional mode.
	Index int

	// Key is the named-mode lookup key ("" outside named mode).
	Key string
}

// ConversionFunc computes a replacement string from a conversion context.
type ConversionFunc func(c *ConversionContext) (string, error)

// Conversion is either a fixed replacement string or a computable conversion.
// Use Fixed or Computable to construct one.
type Conversion struct {
	fixed string
	fn    ConversionFunc
}

// Fixed returns a conversion that always emits s. Fixed conversions never
// consume a positional input value. In method-dispatch mode the string names
// the capability to invoke on the receiver.
func Fixed(s string) Conversion {
	return Conversion{fixed: s}
}

// Computable returns a conversion backed by fn.
func Computable(fn ConversionFunc) Conversion {
	return Conversion{fn: fn}
}

// IsComputable reports whether the conversion invokes a function.
func (c Conversion) IsComputable() bool {
	return c.fn != nil
}

// FixedValue returns the fixed replacement string ("" for computable
// conversions).
func (c Conversion) FixedValue() string {
	return c.fixed
}

// invoke runs the conversion function.
func (c Conversion) invoke(cctx *ConversionContext) (string, error) {
	return c.fn(cctx)
}

// ConversionTable maps single-character conversion codes to conversions.
type ConversionTable map[string]Conversion

// Clone returns a shallow copy of the table.
func (t ConversionTable) Clone() ConversionTable {
	out := make(ConversionTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// InputMode identifies the shape of a ResolvedInput.
type InputMode int

// Input mode constants
const (
	InputModePositional InputMode = iota
	InputModeNamed
	InputModeReceiver
	InputModeNone
)

// String returns the string representation of the input mode.
func (m InputMode) String() string {
	switch m {
	case InputModeNamed:
		return "NAMED"
	case InputModeReceiver:
		return "RECEIVER"
	case InputModeNone:
		return "NONE"
	default:
		return "POSITIONAL"
	}
}

// ResolvedInput is the normalized form of the caller's trailing arguments,
// built once per Format call by the input processor.
type ResolvedInput struct {
	Mode       InputMode
	Positional []any
	Named      map[string]any
	Receiver   any
}

// FallbackPolicy controls what happens when a placeholder cannot be resolved
// (unknown marker, or missing named key).
type FallbackPolicy int

const (
	// FallbackError fails loudly. This is the Formatter default.
	FallbackError FallbackPolicy = iota

	// FallbackLiteral keeps the placeholder's raw source text in the output
	// and, in positional mode, does not consume an input value.
	FallbackLiteral
)

// String returns the policy name.
func (p FallbackPolicy) String() string {
	if p == FallbackLiteral {
		return FallbackNameLiteral
	}
	return FallbackNameError
}

// Pipeline stage interfaces. A Formatter holds one implementation per stage;
// each can be swapped independently through options.

// Hunker splits a format string into an ordered hunk sequence.
type Hunker interface {
	Hunks(format string) ([]*Hunk, error)
}

// InputProcessor validates and normalizes trailing call arguments.
type InputProcessor interface {
	Process(args []any) (*ResolvedInput, error)
}

// Replacer resolves placeholder hunks against the input, attaching a
// replacement string to each.
type Replacer interface {
	Replace(hunks []*Hunk, input *ResolvedInput, table ConversionTable, policy FallbackPolicy) error
}

// HunkFormatter applies width, alignment and truncation rules to a resolved
// placeholder hunk.
type HunkFormatter interface {
	FormatHunk(h *Hunk) string
}

// Stringify renders an arbitrary input value as a replacement string.
// Nil becomes the empty string.
func Stringify(v any) string {
	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	case fmt.Stringer:
		return tv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
