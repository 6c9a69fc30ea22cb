package scriptgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name        string
		req         Request
		checkOutput func(t *testing.T, prompt string)
	}{
		{
			name: "python chrome prompt",
			req: Request{
				Prompt:   "Log in with a valid user and check the dashboard",
				Browser:  BrowserChrome,
				Language: LanguagePython,
			},
			checkOutput: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "runnable Python test script using Selenium WebDriver for the chrome browser")
				assert.Contains(t, prompt, "<scenario>\nLog in with a valid user and check the dashboard\n</scenario>")
				assert.Contains(t, prompt, "- Browser: chrome")
				assert.Contains(t, prompt, "- Language: python")
				assert.Contains(t, prompt, "For Python:")
				assert.NotContains(t, prompt, "For JavaScript:")
			},
		},
		{
			name: "javascript firefox prompt",
			req: Request{
				Prompt:   "Search for shoes",
				Browser:  BrowserFirefox,
				Language: LanguageJavaScript,
			},
			checkOutput: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "runnable JavaScript test script")
				assert.Contains(t, prompt, "Browser setup should be appropriate for firefox.")
				assert.Contains(t, prompt, "For JavaScript:")
				assert.Contains(t, prompt, "async/await")
				assert.NotContains(t, prompt, "For Python:")
			},
		},
		{
			name: "scenario text is sanitized",
			req: Request{
				Prompt:   "  Open\x00 the   cart  ",
				Browser:  BrowserEdge,
				Language: LanguagePython,
			},
			checkOutput: func(t *testing.T, prompt string) {
				assert.Contains(t, prompt, "<scenario>\nOpen the cart\n</scenario>")
				assert.NotContains(t, prompt, "\x00")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.checkOutput(t, BuildPrompt(tt.req))
		})
	}
}
