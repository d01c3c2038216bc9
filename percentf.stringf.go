package percentf

// Convenience entry points. Each builds a short-lived Formatter wired for one
// replacement mode; for repeated formatting construct a Formatter once with
// New and reuse it.

// stringifyConversion renders the resolved input value as-is.
func stringifyConversion(c *ConversionContext) (string, error) {
	return Stringify(c.Value), nil
}

// StringifyConversion returns a computable conversion that renders its
// resolved input value with Stringify. It is the conversion behind the
// predefined %s code of PositionalFormat and NamedFormat, exported so custom
// formatters can register it under any code.
func StringifyConversion() Conversion {
	return Computable(stringifyConversion)
}

// Stringf formats using a per-call table of codes. Values may be fixed
// strings or conversion functions; computable codes receive the placeholder's
// brace-argument but no input value. No trailing arguments exist in this
// mode.
//
// Unlike the Formatter default, Stringf keeps placeholders with unregistered
// codes as literal text, byte-for-byte:
//
//	Stringf("I like %a and %b.", map[string]any{"a": "apples"})
//	// "I like apples and %b."
func Stringf(format string, codes map[string]any) (string, error) {
	f, err := New(
		WithConversions(codes),
		WithInputProcessor(ForbidProcessor{}),
		WithFallback(FallbackLiteral),
	)
	if err != nil {
		return "", err
	}
	return f.Format(format)
}

// NamedFormat formats with named replacement: each %{key}s placeholder looks
// up its brace-argument key in the data map. A missing key fails with a
// missing-named-input error.
func NamedFormat(format string, data map[string]any) (string, error) {
	f, err := New(
		WithConversion(CodeStringify, Computable(stringifyConversion)),
		WithInputProcessor(RequireNamedProcessor{}),
		WithReplacer(NewNamedReplacer(nil)),
	)
	if err != nil {
		return "", err
	}
	return f.Format(format, data)
}

// PositionalFormat formats with positional replacement: each %s placeholder
// consumes the next trailing argument in call order.
func PositionalFormat(format string, args ...any) (string, error) {
	f, err := New(
		WithConversion(CodeStringify, Computable(stringifyConversion)),
	)
	if err != nil {
		return "", err
	}
	return f.Format(format, args...)
}

// MethodFormat formats with method dispatch: capabilities maps each
// conversion code to an exported method name invoked on the receiver, with
// the placeholder's brace-argument as an optional string parameter.
func MethodFormat(format string, receiver any, capabilities map[string]string) (string, error) {
	codes := make(map[string]any, len(capabilities))
	for code, name := range capabilities {
		codes[code] = Fixed(name)
	}
	f, err := New(
		WithConversions(codes),
		WithInputProcessor(RequireSingleProcessor{}),
		WithReplacer(NewMethodReplacer(nil)),
	)
	if err != nil {
		return "", err
	}
	return f.Format(format, receiver)
}
