package percentf

// Input processor strategies. Each validates and normalizes the trailing
// Format arguments into a ResolvedInput.

// PassThroughProcessor returns the arguments unchanged as a positional
// sequence. No validation is performed. This is the Formatter default.
type PassThroughProcessor struct{}

// Process implements InputProcessor.
func (PassThroughProcessor) Process(args []any) (*ResolvedInput, error) {
	return &ResolvedInput{
		Mode:       InputModePositional,
		Positional: args,
	}, nil
}

// RequireNamedProcessor requires exactly one argument holding a string-keyed
// mapping and returns it as named input.
type RequireNamedProcessor struct{}

// Process implements InputProcessor.
func (RequireNamedProcessor) Process(args []any) (*ResolvedInput, error) {
	if len(args) != 1 {
		return nil, NewInputShapeError(ErrMsgInputNotNamed, 1, len(args))
	}
	named, ok := args[0].(map[string]any)
	if !ok {
		return nil, NewInputShapeError(ErrMsgInputNotNamed, 1, len(args))
	}
	return &ResolvedInput{
		Mode:  InputModeNamed,
		Named: named,
	}, nil
}

// RequireSingleProcessor requires exactly one argument of any shape and
// returns it as an opaque receiver. Used when conversions invoke capability
// lookups on the value rather than mapping lookups.
type RequireSingleProcessor struct{}

// Process implements InputProcessor.
func (RequireSingleProcessor) Process(args []any) (*ResolvedInput, error) {
	if len(args) != 1 {
		return nil, NewInputShapeError(ErrMsgInputNotSingle, 1, len(args))
	}
	return &ResolvedInput{
		Mode:     InputModeReceiver,
		Receiver: args[0],
	}, nil
}

// ForbidProcessor requires zero trailing arguments.
type ForbidProcessor struct{}

// Process implements InputProcessor.
func (ForbidProcessor) Process(args []any) (*ResolvedInput, error) {
	if len(args) != 0 {
		return nil, NewInputShapeError(ErrMsgInputForbidden, 0, len(args))
	}
	return &ResolvedInput{Mode: InputModeNone}, nil
}
