package percentf

// Version is the library version.
const Version = "1.0.0"

// DefaultMarker is the placeholder escape character used when no marker is
// configured.
const DefaultMarker byte = '%'

// Character constants for placeholder scanning
const (
	CharDash        = '-'
	CharDot         = '.'
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharSpace       = ' '
	CharTab         = '\t'
	CharNewline     = '\n'
	CharCarriageRet = '\r'
)

// Predefined conversion codes
const (
	CodeNewline   = "n"
	CodeTab       = "t"
	CodeStringify = "s"
)

// Width sentinel - a hunk with WidthUnset derives the width from the
// replacement length.
const WidthUnset = -1

// Metadata keys attached to errors
const (
	MetaKeyMarker     = "marker"
	MetaKeyConversion = "conversion"
	MetaKeyKey        = "key"
	MetaKeyOffset     = "offset"
	MetaKeyWant       = "want"
	MetaKeyGot        = "got"
	MetaKeyCapability = "capability"
	MetaKeyField      = "field"
	MetaKeyValue      = "value"
	MetaKeyPattern    = "pattern"
	MetaKeyPath       = "path"
)

// Log message constants
const (
	LogMsgHunkerStart      = "starting hunk scan"
	LogMsgHunkerEnd        = "hunk scan complete"
	LogMsgReplacerStart    = "starting replacement"
	LogMsgReplacerEnd      = "replacement complete"
	LogMsgFormatterCreated = "formatter created"
	LogMsgFallbackLiteral  = "unresolved placeholder kept as literal"
)

// Log field name constants
const (
	LogFieldFormatLen = "format_len"
	LogFieldHunks     = "hunks"
	LogFieldMarker    = "marker"
	LogFieldOffset    = "offset"
	LogFieldMode      = "mode"
)

// Input processor strategy names (used by profiles and the CLI)
const (
	InputStrategyPassThrough = "passthrough"
	InputStrategyNamed       = "named"
	InputStrategySingle      = "single"
	InputStrategyForbid      = "forbid"
)

// Replacer strategy names
const (
	ReplacerStrategyPositional = "positional"
	ReplacerStrategyNamed      = "named"
	ReplacerStrategyMethod     = "method"
)

// Fallback policy names
const (
	FallbackNameError   = "error"
	FallbackNameLiteral = "literal"
)
