package percentf

import (
	"errors"
	"strconv"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaultHunker_LiteralOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "plain text", input: "Hello, world!"},
		{name: "multiline text", input: "Line 1\nLine 2\nLine 3"},
		{name: "braces without marker", input: "a {b} c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunker := NewDefaultHunker(DefaultMarker, zap.NewNop())
			hunks, err := hunker.Hunks(tt.input)
			require.NoError(t, err)

			if tt.input == "" {
				assert.Empty(t, hunks)
				return
			}
			require.Len(t, hunks, 1)
			assert.Equal(t, HunkLiteral, hunks[0].Kind)
			assert.Equal(t, tt.input, hunks[0].Text)
		})
	}
}

func TestDefaultHunker_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Hunk
	}{
		{
			name:  "bare placeholder",
			input: "%s",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "s",
				MinWidth: WidthUnset, MaxWidth: WidthUnset,
				Raw: "%s",
			},
		},
		{
			name:  "minimum width",
			input: "%30e",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "e",
				MinWidth: 30, MaxWidth: WidthUnset,
				Raw: "%30e",
			},
		},
		{
			name:  "maximum width",
			input: "%.5r",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "r",
				MinWidth: WidthUnset, MaxWidth: 5,
				Raw: "%.5r",
			},
		},
		{
			name:  "left aligned with both widths",
			input: "%-10.20x",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "x", LeftAlign: true,
				MinWidth: 10, MaxWidth: 20,
				Raw: "%-10.20x",
			},
		},
		{
			name:  "brace argument",
			input: "%{foo}d",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "d",
				MinWidth: WidthUnset, MaxWidth: WidthUnset,
				BraceArg: "foo", HasBraceArg: true,
				Raw: "%{foo}d",
			},
		},
		{
			name:  "empty brace argument",
			input: "%{}d",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "d",
				MinWidth: WidthUnset, MaxWidth: WidthUnset,
				BraceArg: "", HasBraceArg: true,
				Raw: "%{}d",
			},
		},
		{
			name:  "nested braces in argument",
			input: "%{a{b}c}d",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "d",
				MinWidth: WidthUnset, MaxWidth: WidthUnset,
				BraceArg: "a{b}c", HasBraceArg: true,
				Raw: "%{a{b}c}d",
			},
		},
		{
			name:  "doubled marker",
			input: "%%",
			expected: Hunk{
				Kind: HunkPlaceholder, Marker: "%",
				MinWidth: WidthUnset, MaxWidth: WidthUnset,
				Raw: "%%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunker := NewDefaultHunker(DefaultMarker, zap.NewNop())
			hunks, err := hunker.Hunks(tt.input)
			require.NoError(t, err)
			require.Len(t, hunks, 1)
			assert.Equal(t, tt.expected, *hunks[0])
		})
	}
}

func TestDefaultHunker_MixedSequence(t *testing.T) {
	hunker := NewDefaultHunker(DefaultMarker, zap.NewNop())
	hunks, err := hunker.Hunks("Hello %{user}s, you have %3c messages.")
	require.NoError(t, err)
	require.Len(t, hunks, 5)

	assert.Equal(t, HunkLiteral, hunks[0].Kind)
	assert.Equal(t, "Hello ", hunks[0].Text)

	assert.Equal(t, HunkPlaceholder, hunks[1].Kind)
	assert.Equal(t, "s", hunks[1].Marker)
	assert.Equal(t, "user", hunks[1].BraceArg)
	assert.Equal(t, 6, hunks[1].Offset)

	assert.Equal(t, ", you have ", hunks[2].Text)

	assert.Equal(t, "c", hunks[3].Marker)
	assert.Equal(t, 3, hunks[3].MinWidth)

	assert.Equal(t, " messages.", hunks[4].Text)
}

func TestDefaultHunker_DanglingMarkerIsLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "trailing marker", input: "100%"},
		{name: "marker before space", input: "50% off"},
		{name: "unterminated brace", input: "%{unterminated"},
		{name: "dot without digits", input: "%.x after"},
		{name: "modifiers without format char", input: "width %10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunker := NewDefaultHunker(DefaultMarker, zap.NewNop())
			hunks, err := hunker.Hunks(tt.input)
			require.NoError(t, err)
			require.Len(t, hunks, 1)
			assert.Equal(t, HunkLiteral, hunks[0].Kind)
			assert.Equal(t, tt.input, hunks[0].Text)
		})
	}
}

func TestDefaultHunker_DotWithoutDigitsRescans(t *testing.T) {
	// "%.5" is dangling, but the marker in "%.x%s" must not swallow the
	// following valid placeholder.
	hunker := NewDefaultHunker(DefaultMarker, zap.NewNop())
	hunks, err := hunker.Hunks("%.x%s")
	require.NoError(t, err)
	require.Len(t, hunks, 2)
	assert.Equal(t, HunkLiteral, hunks[0].Kind)
	assert.Equal(t, "%.x", hunks[0].Text)
	assert.Equal(t, HunkPlaceholder, hunks[1].Kind)
	assert.Equal(t, "s", hunks[1].Marker)
}

func TestDefaultHunker_CustomMarker(t *testing.T) {
	hunker := NewDefaultHunker('~', zap.NewNop())
	hunks, err := hunker.Hunks("a ~s b % c")
	require.NoError(t, err)
	require.Len(t, hunks, 3)
	assert.Equal(t, "a ", hunks[0].Text)
	assert.Equal(t, "s", hunks[1].Marker)
	assert.Equal(t, " b % c", hunks[2].Text)
}

func TestStrictHunker_RejectsDanglingMarker(t *testing.T) {
	hunker := NewStrictHunker(DefaultMarker, zap.NewNop())

	_, err := hunker.Hunks("before %{open after")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgMalformedFormat)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	offset, ok := customErr.GetMetadata(MetaKeyOffset)
	assert.True(t, ok)
	assert.Equal(t, strconv.Itoa(7), offset)
}

func TestStrictHunker_AcceptsValidFormat(t *testing.T) {
	hunker := NewStrictHunker(DefaultMarker, zap.NewNop())
	hunks, err := hunker.Hunks("ok %s and %%")
	require.NoError(t, err)
	assert.Len(t, hunks, 4)
}
