// Package textutil holds small string helpers shared by the generators.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	inlineSpace    = regexp.MustCompile(`[ \t]+`)
)

// SanitizeForPrompt prepares free text for embedding in a model instruction.
// Control and non-printable characters are removed (newlines and tabs survive),
// runs of spaces collapse, and more than one blank line collapses to one.
func SanitizeForPrompt(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = RemoveControlCharacters(s, true)
	s = RemoveNonPrintable(s)
	s = excessNewlines.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// RemoveControlCharacters removes control characters from a string.
// If preserveFormatting is true, newlines (\n), tabs (\t), and carriage returns (\r) are preserved.
func RemoveControlCharacters(s string, preserveFormatting bool) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			if preserveFormatting && (r == '\n' || r == '\t' || r == '\r') {
				result.WriteRune(r)
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// RemoveNonPrintable removes non-printable characters while preserving
// common formatting characters.
func RemoveNonPrintable(s string) string {
	var result strings.Builder
	for _, r := range s {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' || r == '\r' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// TruncateRunes returns the first n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
