package scriptgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-copilot/llm"
)

var (
	// ErrEmptyPrompt is returned when the scenario description is blank.
	ErrEmptyPrompt = errors.New("prompt is required")

	// ErrInvalidBrowser is returned when browser is not a supported value.
	ErrInvalidBrowser = errors.New("invalid browser")

	// ErrInvalidLanguage is returned when language is not a supported value.
	ErrInvalidLanguage = errors.New("invalid language")
)

// Browser represents the target browser of a generated script.
type Browser string

const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserEdge    Browser = "edge"

	// DefaultBrowser is used when the caller does not choose one.
	DefaultBrowser = BrowserChrome
)

// IsValid checks if the browser is valid.
func (b Browser) IsValid() bool {
	switch b {
	case BrowserChrome, BrowserFirefox, BrowserEdge:
		return true
	default:
		return false
	}
}

// ParseBrowser parses a browser name. An empty value yields DefaultBrowser.
func ParseBrowser(s string) (Browser, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultBrowser, nil
	}
	b := Browser(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w %q (must be 'chrome', 'firefox' or 'edge')", ErrInvalidBrowser, s)
	}
	return b, nil
}

// Language represents the scripting language of a generated script.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"

	// DefaultLanguage is used when the caller does not choose one.
	DefaultLanguage = LanguagePython
)

// IsValid checks if the language is valid.
func (l Language) IsValid() bool {
	switch l {
	case LanguagePython, LanguageJavaScript:
		return true
	default:
		return false
	}
}

// Extension returns the file extension for scripts in this language, without the dot.
func (l Language) Extension() string {
	switch l {
	case LanguageJavaScript:
		return "js"
	default:
		return "py"
	}
}

// DisplayName returns the human-readable language name used in prompts.
func (l Language) DisplayName() string {
	switch l {
	case LanguageJavaScript:
		return "JavaScript"
	default:
		return "Python"
	}
}

// ParseLanguage parses a language name. An empty value yields DefaultLanguage.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultLanguage, nil
	}
	l := Language(s)
	if !l.IsValid() {
		return "", fmt.Errorf("%w %q (must be 'python' or 'javascript')", ErrInvalidLanguage, s)
	}
	return l, nil
}

// Request describes one script generation request.
type Request struct {
	Prompt   string
	Browser  Browser
	Language Language
}

// Validate checks the request has a prompt and supported options.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if !r.Browser.IsValid() {
		return fmt.Errorf("%w %q", ErrInvalidBrowser, r.Browser)
	}
	if !r.Language.IsValid() {
		return fmt.Errorf("%w %q", ErrInvalidLanguage, r.Language)
	}
	return nil
}

// Script is a generated automation script.
type Script struct {
	Content  string
	Language Language
	Source   llm.Source

	// FallbackReason is set when Source is llm.SourceFallback.
	FallbackReason error
}
