package bddgen

import (
	"strings"

	"github.com/hairizuanbinnoorazman/qa-copilot/internal/textutil"
)

// featureTitleLength is the number of runes of the user story used as the Gherkin feature title.
const featureTitleLength = 50

// FallbackSpec returns the static specification template for req.FormatStyle.
// Gherkin output carries only the first 50 runes of the story; the other styles carry all of it.
func FallbackSpec(req Request) string {
	switch req.FormatStyle {
	case FormatChecklist:
		return strings.Replace(checklistTemplate, "{{story}}", req.UserStory, 1)
	case FormatPlain:
		return strings.Replace(plainTemplate, "{{story}}", req.UserStory, 1)
	default:
		title := textutil.TruncateRunes(req.UserStory, featureTitleLength)
		return strings.Replace(gherkinTemplate, "{{title}}", title, 1)
	}
}

const gherkinTemplate = `Feature: {{title}}...

  Background:
    Given the user is on the application homepage
    And the application is fully loaded

  Scenario: Happy Path - Successful Operation
    Given the user has valid credentials
    When the user performs the main action
    Then the operation should complete successfully
    And the user should see a success message
    And the system should update accordingly

  Scenario: Edge Case - Invalid Input
    Given the user provides invalid data
    When the user attempts to proceed
    Then the system should display an error message
    And the operation should not complete
    And the user should be able to correct the input

  Scenario: Error Condition - System Failure
    Given the system is experiencing issues
    When the user attempts to perform the action
    Then the system should handle the error gracefully
    And the user should be informed of the issue
    And the system should provide recovery options

  Scenario Outline: Data-Driven Testing
    Given the user has <user_type> access
    When the user performs the action with <input_data>
    Then the result should be <expected_outcome>

    Examples:
      | user_type | input_data | expected_outcome |
      | admin     | valid      | success          |
      | user      | valid      | success          |
      | guest     | valid      | limited_access   |
      | admin     | invalid    | error_message    |`

const checklistTemplate = `BDD Test Checklist for: {{story}}

✓ HAPPY PATH TESTS:
  □ [ ] User can successfully complete the main workflow
  □ [ ] All required fields are properly validated
  □ [ ] Success messages are displayed correctly
  □ [ ] System state is updated appropriately
  □ [ ] User can proceed to next step

✓ EDGE CASE TESTS:
  □ [ ] System handles maximum input lengths
  □ [ ] System handles minimum input lengths
  □ [ ] System handles special characters in input
  □ [ ] System handles empty/null values appropriately
  □ [ ] System handles concurrent user actions

✓ ERROR CONDITION TESTS:
  □ [ ] System displays appropriate error messages
  □ [ ] System prevents invalid operations
  □ [ ] System handles network failures gracefully
  □ [ ] System provides recovery options
  □ [ ] System maintains data integrity during errors

✓ ACCESSIBILITY TESTS:
  □ [ ] All elements are keyboard accessible
  □ [ ] Screen readers can interpret all content
  □ [ ] Color contrast meets WCAG guidelines
  □ [ ] Focus indicators are visible
  □ [ ] Alternative text is provided for images

✓ PERFORMANCE TESTS:
  □ [ ] Page loads within acceptable time
  □ [ ] Operations complete within expected duration
  □ [ ] System handles expected user load
  □ [ ] Memory usage remains stable
  □ [ ] No memory leaks during extended use`

const plainTemplate = `BDD Test Cases for: {{story}}

1. HAPPY PATH SCENARIOS:
   - User successfully completes the main workflow
   - All validations pass with correct input
   - Success feedback is provided to user
   - System state updates correctly
   - User can proceed to subsequent steps

2. EDGE CASE SCENARIOS:
   - System handles boundary values correctly
   - Special characters are processed properly
   - Empty/null inputs are handled appropriately
   - Maximum/minimum input lengths are validated
   - Concurrent operations don't conflict

3. ERROR SCENARIOS:
   - Invalid inputs are rejected with clear messages
   - System failures are handled gracefully
   - Users can recover from error states
   - Data integrity is maintained during errors
   - Error messages are user-friendly

4. ACCESSIBILITY SCENARIOS:
   - All functionality is keyboard accessible
   - Screen readers can interpret all content
   - Visual design meets accessibility standards
   - Focus management works correctly
   - Alternative input methods are supported

5. PERFORMANCE SCENARIOS:
   - Operations complete within acceptable time
   - System remains responsive under load
   - Memory usage is optimized
   - No performance degradation over time
   - Scalability requirements are met`
