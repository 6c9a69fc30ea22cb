package scriptgen

import (
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-copilot/internal/textutil"
)

// BuildPrompt constructs the instruction sent to the model: fixed guidance for
// the chosen browser and language followed by the caller's scenario.
// User text is sanitized and wrapped in tags so it stays separate from the instructions.
func BuildPrompt(req Request) string {
	scenario := textutil.SanitizeForPrompt(req.Prompt)
	lang := req.Language.DisplayName()

	return fmt.Sprintf(`You are an expert QA automation engineer. Generate a complete, runnable %[1]s test script using Selenium WebDriver for the %[2]s browser.

<requirements>
1. Use best practices for %[1]s and Selenium
2. Include proper imports and setup
3. Add meaningful comments
4. Include proper error handling
5. Use explicit waits where appropriate
6. Make the script production-ready
7. Include assertions to verify expected behavior
</requirements>

%[3]s

Browser setup should be appropriate for %[2]s.

Generate a Selenium test script for the following scenario:

<scenario>
%[4]s
</scenario>

- Browser: %[2]s
- Language: %[5]s
- Include all necessary imports and setup
- Add meaningful assertions
- Use explicit waits for better reliability`,
		lang,
		req.Browser,
		languageInstructions(req.Language),
		scenario,
		req.Language,
	)
}

func languageInstructions(language Language) string {
	if language == LanguageJavaScript {
		return `For JavaScript:
- Use the selenium-webdriver package with async/await patterns
- Include proper error handling with try/catch/finally
- Use modern ES6+ syntax
- Add JSDoc comments
- Quit the driver in a finally block`
	}

	return `For Python:
- Use proper indentation and formatting
- Include try/except/finally blocks for error handling
- Add docstrings and comments
- Use the Page Object Model when appropriate
- Call driver.quit() in a finally block`
}
