// Package percentf provides a small, embeddable percent-placeholder string
// formatting engine with a pluggable substitution pipeline.
//
// A format string is split into literal text and placeholder hunks, each
// placeholder carrying printf-style modifiers:
//
//	%<align?><width?><.maxwidth?><{argument}?><marker>
//
// Placeholders are resolved against a conversion table mapping single marker
// characters to either fixed replacement strings or computable conversions.
//
// # Basic Usage
//
// The quickest entry point is Stringf, which takes a per-call table of codes:
//
//	out, err := percentf.Stringf("I like %a and %b.", map[string]any{
//	    "a": "apples",
//	    "b": "bananas",
//	})
//	// out: "I like apples and bananas."
//
// Codes may be computable. A conversion function receives the placeholder's
// brace-argument and the resolved input value:
//
//	out, _ := percentf.Stringf("%{host}e", map[string]any{
//	    "e": percentf.Computable(func(c *percentf.ConversionContext) (string, error) {
//	        return os.Getenv(c.BraceArg), nil
//	    }),
//	})
//
// # Width, Alignment and Truncation
//
// Placeholders honor a minimum width (pad with spaces, right-aligned by
// default, "-" for left), and a maximum width (truncate):
//
//	percentf.Stringf("%.5r", codes)  // truncate replacement to 5 characters
//	percentf.Stringf("%30e", codes)  // pad replacement to 30 characters
//
// # Reusable Formatters
//
// For repeated formatting build a Formatter once and reuse it. A Formatter is
// immutable after construction and safe for concurrent use:
//
//	f, err := percentf.New(
//	    percentf.WithConversions(map[string]any{"v": version}),
//	    percentf.WithFallback(percentf.FallbackLiteral),
//	)
//	out, err := f.Format("running %v")
//
// Every pipeline stage (tokenizer, input processor, replacer, hunk formatter)
// can be swapped through options without touching the others.
//
// # Replacement Modes
//
// Three replacement strategies are built in:
//
//   - positional: computable conversions consume trailing arguments in order
//     (PositionalFormat, the default)
//   - named: values are looked up by the brace-argument key in a single map
//     argument (NamedFormat), e.g. "%{user}s"
//   - method dispatch: marker characters name capabilities invoked on a single
//     receiver argument (MethodFormat)
//
// # Escaping and Reserved Codes
//
// A doubled marker ("%%") always produces a single literal marker character.
// The marker's own code is reserved; registering a conversion for it fails
// with a reserved-conversion error. The codes "n" and "t" are predefined as
// newline and tab replacements and may be overridden. Note that "\n" inside a
// format string literal is a two-character sequence to this engine, not an
// escape; this is an inherited quirk, use %n instead.
//
// # Error Handling
//
// By default an unregistered marker fails loudly with an unknown-conversion
// error. WithFallback(FallbackLiteral) switches to emitting the placeholder's
// raw source text unchanged. All errors are built with go-cuserr and carry
// metadata such as the marker character and byte offset.
package percentf
