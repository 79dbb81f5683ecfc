package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ai_blog_assistant/publisher"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print LinkedIn and Medium share links for existing content",
	Long:  `Reads post content from --file (or stdin when omitted) and prints the share links. No model call is made.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		var r io.Reader = cmd.InOrStdin()
		if path != "" && path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open content: %w", err)
			}
			defer f.Close()
			r = f
		}

		content, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("read content: %w", err)
		}
		printShareLinks(cmd.OutOrStdout(), publisher.BuildShareLinks(string(content)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().StringP("file", "f", "", "file holding the post content (default stdin)")
}
