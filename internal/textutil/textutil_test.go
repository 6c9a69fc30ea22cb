package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Log in with a valid account.",
			expected: "Log in with a valid account.",
		},
		{
			name:     "newlines preserved",
			input:    "Line 1\nLine 2\nLine 3",
			expected: "Line 1\nLine 2\nLine 3",
		},
		{
			name:     "excessive newlines collapsed",
			input:    "Para 1\n\n\n\n\nPara 2",
			expected: "Para 1\n\nPara 2",
		},
		{
			name:     "windows line endings normalized",
			input:    "a\r\nb",
			expected: "a\nb",
		},
		{
			name:     "control characters removed",
			input:    "Open\x00 the\x07 cart",
			expected: "Open the cart",
		},
		{
			name:     "inline whitespace collapsed",
			input:    "  click   the\t\tbutton  ",
			expected: "click the button",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeForPrompt(tt.input))
		})
	}
}

func TestRemoveControlCharacters(t *testing.T) {
	assert.Equal(t, "ab", RemoveControlCharacters("a\nb", false))
	assert.Equal(t, "a\nb\tc", RemoveControlCharacters("a\nb\tc\x1b", true))
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "shorter than limit", input: "short", n: 50, expected: "short"},
		{name: "exact limit", input: "abcde", n: 5, expected: "abcde"},
		{name: "cut ascii", input: "abcdefgh", n: 3, expected: "abc"},
		{name: "cut at rune boundary", input: "héllo wörld", n: 7, expected: "héllo w"},
		{name: "zero limit", input: "abc", n: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateRunes(tt.input, tt.n))
		})
	}
}
