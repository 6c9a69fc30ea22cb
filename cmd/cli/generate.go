package main

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newScriptCmd() *cobra.Command {
	var browser, language, output string

	cmd := &cobra.Command{
		Use:   "script <scenario...>",
		Short: "Generate a Selenium test script",
		Long:  "Generate a Selenium test script from a scenario description. Pass - to read the description from stdin.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readInput(args, os.Stdin)
			if err != nil {
				return err
			}
			if strings.TrimSpace(prompt) == "" {
				return fmt.Errorf("scenario description is required")
			}

			resp, err := getClient().PostForm("/generate-selenium", url.Values{
				"prompt":   {prompt},
				"browser":  {browser},
				"language": {language},
			})
			if err != nil {
				return err
			}

			var result GenerateScriptResponse
			if err := json.Unmarshal(resp.Body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			return emitGeneration(generationResult{
				Content:  result.Script,
				Filename: result.Filename,
				Source:   resp.Header.Get("X-Generation-Source"),
			}, output)
		},
	}

	cmd.Flags().StringVarP(&browser, "browser", "b", "chrome", "Target browser (chrome, firefox, edge)")
	cmd.Flags().StringVarP(&language, "language", "l", "python", "Script language (python, javascript)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save to this file or directory instead of printing")
	return cmd
}

func newBDDCmd() *cobra.Command {
	var formatStyle, output string

	cmd := &cobra.Command{
		Use:   "bdd <user story...>",
		Short: "Generate BDD test cases",
		Long:  "Generate behavior-driven test cases from a user story. Pass - to read the story from stdin.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := readInput(args, os.Stdin)
			if err != nil {
				return err
			}
			if strings.TrimSpace(story) == "" {
				return fmt.Errorf("user story is required")
			}

			resp, err := getClient().PostForm("/generate-bdd", url.Values{
				"user_story":   {story},
				"format_style": {formatStyle},
			})
			if err != nil {
				return err
			}

			var result GenerateBDDResponse
			if err := json.Unmarshal(resp.Body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			return emitGeneration(generationResult{
				Content:  result.BDDCases,
				Filename: result.Filename,
				Source:   resp.Header.Get("X-Generation-Source"),
			}, output)
		},
	}

	cmd.Flags().StringVarP(&formatStyle, "format", "f", "gherkin", "Output format (gherkin, checklist, plain)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save to this file or directory instead of printing")
	return cmd
}

func emitGeneration(result generationResult, output string) error {
	if flagJSON {
		printJSON(result)
		return nil
	}
	if result.Source == "fallback" {
		fmt.Fprintln(os.Stderr, "Note: the model was unavailable; this is a starter template.")
	}
	return writeOutput(output, result.Filename, result.Content)
}
