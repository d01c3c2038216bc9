package percentf

import "strings"

// DefaultHunkFormatter applies field-width, alignment and truncation rules to
// a resolved placeholder hunk. Widths are counted in characters, not bytes.
//
// An unset minimum or maximum width defaults to the replacement's own length,
// so a bare placeholder is emitted unchanged. Replacements longer than the
// maximum are truncated to its first MaxWidth characters; replacements at or
// below the minimum are padded with spaces to reach it, after the text when
// left-aligned and before it otherwise.
type DefaultHunkFormatter struct{}

// FormatHunk implements HunkFormatter.
func (DefaultHunkFormatter) FormatHunk(h *Hunk) string {
	runes := []rune(h.Replacement)
	length := len(runes)

	minWidth := h.MinWidth
	if minWidth == WidthUnset {
		minWidth = length
	}
	maxWidth := h.MaxWidth
	if maxWidth == WidthUnset {
		maxWidth = length
	}

	if length > minWidth && length < maxWidth {
		return h.Replacement
	}
	if length > maxWidth {
		return string(runes[:maxWidth])
	}
	if length <= minWidth {
		pad := strings.Repeat(string(CharSpace), minWidth-length)
		if h.LeftAlign {
			return h.Replacement + pad
		}
		return pad + h.Replacement
	}
	return h.Replacement
}
