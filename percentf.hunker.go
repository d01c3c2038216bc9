package percentf

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultHunker is the built-in tokenizer. It scans a format string left to
// right and splits it into literal and placeholder hunks. A marker that is
// not followed by a parseable placeholder is treated as ordinary literal
// text; the strict variant raises MalformedFormatError instead.
type DefaultHunker struct {
	marker byte
	strict bool
	logger *zap.Logger
}

// NewDefaultHunker creates a hunker for the given marker character.
func NewDefaultHunker(marker byte, logger *zap.Logger) *DefaultHunker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultHunker{
		marker: marker,
		logger: logger,
	}
}

// NewStrictHunker creates a hunker that rejects unparseable placeholder
// sequences instead of passing them through as literal text.
func NewStrictHunker(marker byte, logger *zap.Logger) *DefaultHunker {
	h := NewDefaultHunker(marker, logger)
	h.strict = true
	return h
}

// Marker returns the configured marker character.
func (h *DefaultHunker) Marker() byte {
	return h.marker
}

// Hunks tokenizes the format string into an ordered hunk sequence.
func (h *DefaultHunker) Hunks(format string) ([]*Hunk, error) {
	h.logger.Debug(LogMsgHunkerStart, zap.Int(LogFieldFormatLen, len(format)))

	var hunks []*Hunk
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			hunks = append(hunks, &Hunk{Kind: HunkLiteral, Text: lit.String()})
			lit.Reset()
		}
	}

	pos := 0
	for pos < len(format) {
		idx := strings.IndexByte(format[pos:], h.marker)
		if idx < 0 {
			lit.WriteString(format[pos:])
			break
		}
		lit.WriteString(format[pos : pos+idx])
		pos += idx

		if hunk, width, ok := h.scanPlaceholder(format, pos); ok {
			flush()
			hunks = append(hunks, hunk)
			pos += width
			continue
		}

		if h.strict {
			return nil, NewMalformedFormatError(pos)
		}

		// Dangling marker: keep it as literal text and rescan from the
		// next byte.
		lit.WriteByte(h.marker)
		pos++
	}
	flush()

	h.logger.Debug(LogMsgHunkerEnd, zap.Int(LogFieldHunks, len(hunks)))
	return hunks, nil
}

// scanPlaceholder attempts to match
//
//	<marker><align?><width?><.maxwidth?><{brace-arg}?><format-char>
//
// at pos (format[pos] is the marker). It returns the placeholder hunk and
// the number of bytes consumed, or ok=false when the span does not parse.
func (h *DefaultHunker) scanPlaceholder(format string, pos int) (*Hunk, int, bool) {
	n := len(format)
	i := pos + 1
	if i >= n {
		return nil, 0, false
	}

	hunk := &Hunk{
		Kind:     HunkPlaceholder,
		MinWidth: WidthUnset,
		MaxWidth: WidthUnset,
		Offset:   pos,
	}

	// Optional alignment flag
	if format[i] == CharDash {
		hunk.LeftAlign = true
		i++
	}

	// Optional minimum width
	start := i
	for i < n && isDigit(format[i]) {
		i++
	}
	if i > start {
		w, err := strconv.Atoi(format[start:i])
		if err != nil {
			return nil, 0, false
		}
		hunk.MinWidth = w
	}

	// Optional maximum width (".<digits>")
	if i < n && format[i] == CharDot {
		j := i + 1
		digits := j
		for j < n && isDigit(format[j]) {
			j++
		}
		if j == digits {
			return nil, 0, false
		}
		w, err := strconv.Atoi(format[digits:j])
		if err != nil {
			return nil, 0, false
		}
		hunk.MaxWidth = w
		i = j
	}

	// Optional brace-argument
	if i < n && format[i] == CharOpenBrace {
		arg, next, ok := scanBraceArg(format, i)
		if !ok {
			return nil, 0, false
		}
		hunk.BraceArg = arg
		hunk.HasBraceArg = true
		i = next
	}

	// Format character: a single non-whitespace byte must follow
	if i >= n || isSpaceChar(format[i]) {
		return nil, 0, false
	}
	hunk.Marker = string(format[i])
	i++

	hunk.Raw = format[pos:i]
	return hunk, i - pos, true
}

// scanBraceArg captures the text between braces starting at format[i] == '{'.
// Brace matching counts nesting depth: the capture ends at the closing brace
// that returns the depth to zero, so brace-arguments may contain balanced
// nested braces. Unterminated braces fail the match.
func scanBraceArg(format string, i int) (string, int, bool) {
	depth := 0
	for j := i; j < len(format); j++ {
		switch format[j] {
		case CharOpenBrace:
			depth++
		case CharCloseBrace:
			depth--
			if depth == 0 {
				return format[i+1 : j], j + 1, true
			}
		}
	}
	return "", 0, false
}

// Character classification helpers

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpaceChar(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet
}
