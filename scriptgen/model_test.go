package scriptgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		input   string
		want    Browser
		wantErr bool
	}{
		{input: "", want: BrowserChrome},
		{input: "chrome", want: BrowserChrome},
		{input: " Firefox ", want: BrowserFirefox},
		{input: "EDGE", want: BrowserEdge},
		{input: "safari", wantErr: true},
		{input: "netscape", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBrowser(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBrowser)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{input: "", want: LanguagePython},
		{input: "python", want: LanguagePython},
		{input: "JavaScript", want: LanguageJavaScript},
		{input: "typescript", wantErr: true},
		{input: "py", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLanguage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguageExtension(t *testing.T) {
	assert.Equal(t, "py", LanguagePython.Extension())
	assert.Equal(t, "js", LanguageJavaScript.Extension())
}
