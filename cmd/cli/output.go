package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printMessage(msg string) {
	fmt.Println(msg)
}

// resolveOutputPath returns where to save content. An existing directory gets the
// server-suggested filename appended.
func resolveOutputPath(output, suggested string) string {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		return filepath.Join(output, suggested)
	}
	return output
}

// writeOutput saves content to output, or prints it when output is empty.
func writeOutput(output, suggested, content string) error {
	if output == "" {
		fmt.Print(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Println()
		}
		return nil
	}

	path := resolveOutputPath(output, suggested)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Saved to %s\n", path)
	return nil
}

// readInput returns the joined args, or stdin when the only arg is "-".
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
