package percentf

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Input shape errors
	ErrMsgInputShape     = "unexpected substitution input shape"
	ErrMsgInputNotNamed  = "named replacement requires a single map argument"
	ErrMsgInputNotSingle = "exactly one trailing argument required"
	ErrMsgInputForbidden = "trailing arguments are not allowed"

	// Conversion errors
	ErrMsgUnknownConversion  = "no conversion registered for marker"
	ErrMsgReservedConversion = "conversion code is reserved for the escape marker"
	ErrMsgInvalidConversion  = "conversion must be a string or a conversion function"
	ErrMsgConversionKey      = "conversion code must be a single character"
	ErrMsgConversionFailed   = "conversion execution failed"

	// Replacement errors
	ErrMsgMissingNamedInput   = "named input key not found"
	ErrMsgCapabilityNotFound  = "receiver does not provide capability"
	ErrMsgCapabilitySignature = "capability has an unsupported signature"
	ErrMsgNilReceiver         = "method replacement requires a non-nil receiver"

	// Tokenizer errors
	ErrMsgMalformedFormat = "malformed placeholder sequence"

	// Profile errors
	ErrMsgProfileParse    = "formatter profile parsing failed"
	ErrMsgProfileMarker   = "profile marker must be a single character"
	ErrMsgProfileStrategy = "unknown strategy name in profile"

	// Store errors
	ErrMsgPatternNotFound    = "pattern not found"
	ErrMsgPatternInvalid     = "pattern name and format are required"
	ErrMsgPatternNameUnsafe  = "pattern name contains unsafe characters"
	ErrMsgStoreClosed        = "pattern store is closed"
	ErrMsgStoreNotConfigured = "no pattern store configured"
	ErrMsgStoreFailure       = "pattern store operation failed"
	ErrMsgPgEmptyConnString  = "postgres connection string is required"
	ErrMsgPgConnectionFailed = "postgres connection failed"
)

// Error code constants for categorization
const (
	ErrCodeInput      = "PERCENTF_INPUT"
	ErrCodeConversion = "PERCENTF_CONVERSION"
	ErrCodeReplace    = "PERCENTF_REPLACE"
	ErrCodeFormat     = "PERCENTF_FORMAT"
	ErrCodeProfile    = "PERCENTF_PROFILE"
	ErrCodeStore      = "PERCENTF_STORE"
)

// NewInputShapeError creates an error for wrong arity or type of trailing
// arguments, recording the expected and actual argument counts.
func NewInputShapeError(msg string, want, got int) error {
	return cuserr.NewValidationError(ErrCodeInput, msg).
		WithMetadata(MetaKeyWant, strconv.Itoa(want)).
		WithMetadata(MetaKeyGot, strconv.Itoa(got))
}

// NewUnknownConversionError creates an error for a marker character with no
// conversion table entry.
func NewUnknownConversionError(marker string, offset int) error {
	return cuserr.NewNotFoundError(MetaKeyConversion, ErrMsgUnknownConversion).
		WithMetadata(MetaKeyMarker, marker).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewMissingNamedInputError creates an error for a named-mode lookup key that
// is absent from the input mapping.
func NewMissingNamedInputError(key string) error {
	return cuserr.NewNotFoundError(MetaKeyKey, ErrMsgMissingNamedInput).
		WithMetadata(MetaKeyKey, key)
}

// NewReservedConversionError creates an error for an attempt to register a
// conversion for the escape marker itself.
func NewReservedConversionError(code string) error {
	return cuserr.NewValidationError(ErrCodeConversion, ErrMsgReservedConversion).
		WithMetadata(MetaKeyConversion, code)
}

// NewInvalidConversionError creates an error for a conversion value of an
// unsupported type.
func NewInvalidConversionError(code string) error {
	return cuserr.NewValidationError(ErrCodeConversion, ErrMsgInvalidConversion).
		WithMetadata(MetaKeyConversion, code)
}

// NewConversionKeyError creates an error for a conversion code that is not a
// single character.
func NewConversionKeyError(code string) error {
	return cuserr.NewValidationError(ErrCodeConversion, ErrMsgConversionKey).
		WithMetadata(MetaKeyConversion, code)
}

// NewConversionFailedError wraps an error returned by a computable conversion.
func NewConversionFailedError(marker string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeReplace, ErrMsgConversionFailed).
		WithMetadata(MetaKeyMarker, marker)
}

// NewCapabilityError creates an error for method-dispatch replacement
// failures (missing capability, bad signature, nil receiver).
func NewCapabilityError(msg string, capability string) error {
	return cuserr.NewValidationError(ErrCodeReplace, msg).
		WithMetadata(MetaKeyCapability, capability)
}

// NewMalformedFormatError creates an error for an unparseable placeholder
// sequence. Only the strict hunker raises this; the default hunker falls back
// to literal text.
func NewMalformedFormatError(offset int) error {
	return cuserr.NewValidationError(ErrCodeFormat, ErrMsgMalformedFormat).
		WithMetadata(MetaKeyOffset, strconv.Itoa(offset))
}

// NewProfileError creates an error for an invalid formatter profile field.
func NewProfileError(msg, field, value string) error {
	return cuserr.NewValidationError(ErrCodeProfile, msg).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewProfileParseError wraps a YAML decoding failure.
func NewProfileParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeProfile, ErrMsgProfileParse)
}

// NewPatternNotFoundError creates an error for a missing stored pattern.
func NewPatternNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyPattern, ErrMsgPatternNotFound).
		WithMetadata(MetaKeyPattern, name)
}

// NewInvalidPatternError creates an error for a pattern failing validation.
func NewInvalidPatternError(msg, name string) error {
	return cuserr.NewValidationError(ErrCodeStore, msg).
		WithMetadata(MetaKeyPattern, name)
}

// NewStoreClosedError creates an error for operations on a closed store.
func NewStoreClosedError() error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgStoreClosed)
}

// NewStoreNotConfiguredError creates an error for stored-pattern operations
// on a Formatter built without a store.
func NewStoreNotConfiguredError() error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgStoreNotConfigured)
}

// NewStoreError wraps a storage backend failure.
func NewStoreError(msg string, cause error) error {
	if cause == nil {
		return cuserr.NewInternalError(ErrCodeStore, nil)
	}
	return cuserr.WrapStdError(cause, ErrCodeStore, msg)
}
