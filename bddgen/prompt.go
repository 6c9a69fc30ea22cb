package bddgen

import (
	"fmt"

	"github.com/hairizuanbinnoorazman/qa-copilot/internal/textutil"
)

// BuildPrompt constructs the instruction sent to the model for req.
func BuildPrompt(req Request) string {
	story := textutil.SanitizeForPrompt(req.UserStory)

	return fmt.Sprintf(`You are an expert QA engineer specializing in Behavior Driven Development (BDD).
Generate comprehensive BDD test cases from user stories and product requirements.

%[1]s

Focus on:
1. Happy path scenarios
2. Edge cases and boundary conditions
3. Error scenarios and negative testing
4. Data-driven scenarios when applicable
5. Accessibility and usability considerations

Generate comprehensive BDD test cases for the following user story:

<user_story>
%[2]s
</user_story>

Requirements:
- Format: %[3]s
- Include multiple scenarios (happy path, edge cases, error conditions)
- Make scenarios specific and testable
- Use clear business language
- Cover all important user flows`,
		styleInstructions(req.FormatStyle),
		story,
		req.FormatStyle,
	)
}

func styleInstructions(style FormatStyle) string {
	switch style {
	case FormatChecklist:
		return `For checklist format:
- Group checks under HAPPY PATH, EDGE CASE, ERROR CONDITION, ACCESSIBILITY and PERFORMANCE headings
- Write one verifiable check per line, prefixed with "[ ]"
- Keep each check short and testable`
	case FormatPlain:
		return `For plain format:
- Use numbered sections for each scenario group
- Describe each scenario as a short bullet in plain language
- Do not use Gherkin keywords`
	default:
		return `For gherkin format:
- Use proper Gherkin syntax with Feature, Scenario, Given, When, Then
- Include a Background section when appropriate
- Use Scenario Outline with Examples for data-driven cases
- Add proper indentation and formatting`
	}
}
