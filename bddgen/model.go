package bddgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
)

var (
	// ErrEmptyUserStory is returned when the user story is blank.
	ErrEmptyUserStory = errors.New("user_story is required")

	// ErrInvalidFormatStyle is returned when the format style is not supported.
	ErrInvalidFormatStyle = errors.New("invalid format_style")
)

// FileExtension is the extension of generated specification files, without the dot.
const FileExtension = "feature"

// FormatStyle is the output shape of a generated specification.
type FormatStyle string

const (
	FormatGherkin   FormatStyle = "gherkin"
	FormatChecklist FormatStyle = "checklist"
	FormatPlain     FormatStyle = "plain"

	// DefaultFormatStyle is used when the caller does not choose one.
	DefaultFormatStyle = FormatGherkin
)

// IsValid checks if the format style is valid.
func (f FormatStyle) IsValid() bool {
	switch f {
	case FormatGherkin, FormatChecklist, FormatPlain:
		return true
	default:
		return false
	}
}

// ParseFormatStyle parses a format style. An empty value yields DefaultFormatStyle.
func ParseFormatStyle(s string) (FormatStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultFormatStyle, nil
	}
	f := FormatStyle(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w %q (must be 'gherkin', 'checklist' or 'plain')", ErrInvalidFormatStyle, s)
	}
	return f, nil
}

// Request describes one specification generation request.
type Request struct {
	UserStory   string
	FormatStyle FormatStyle
}

// Validate checks the request has a user story and a supported style.
func (r Request) Validate() error {
	if strings.TrimSpace(r.UserStory) == "" {
		return ErrEmptyUserStory
	}
	if !r.FormatStyle.IsValid() {
		return fmt.Errorf("%w %q", ErrInvalidFormatStyle, r.FormatStyle)
	}
	return nil
}

// Spec is a generated behavior-driven test specification.
type Spec struct {
	Content     string
	FormatStyle FormatStyle
	Source      llm.Source

	// FallbackReason is set when Source is llm.SourceFallback.
	FallbackReason error
}
