package main

import (
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	var name, output string

	cmd := &cobra.Command{
		Use:   "download <file>",
		Short: "Store a file on the server and fetch it back",
		Long:  "Send a local file to the server's download endpoint, which writes it to its download directory and returns it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if name == "" {
				name = filepath.Base(args[0])
			}

			resp, err := getClient().PostForm("/download-script", url.Values{
				"script_content": {string(content)},
				"filename":       {name},
			})
			if err != nil {
				return err
			}

			served := name
			if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
				served = params["filename"]
			}

			if flagJSON {
				printJSON(map[string]interface{}{
					"filename": served,
					"size":     len(resp.Body),
				})
				return nil
			}
			return writeOutput(output, served, string(resp.Body))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Filename to store under (default: base name of <file>)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Save to this file or directory instead of printing")
	return cmd
}
