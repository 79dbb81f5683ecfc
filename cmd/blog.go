package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ai_blog_assistant/publisher"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Write a blog post from a title, keywords, tone, style and length",
	Example: `  blog-assistant blog --title "Remote Work Wins" --keyword ai --keyword productivity \
    --length 400 --tone casual --style listicle`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		req, err := ParseBlogRequest(cmd.Flags())
		if err != nil {
			return err
		}

		content, err := appInstance.Agent.WriteBlog(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if req.Title != "" {
			printHeading(out, req.Title)
		}
		fmt.Fprintln(out, strings.TrimRight(content, "\n"))
		printStats(out, publisher.Analyze(content), req.Length)

		if noShare, _ := cmd.Flags().GetBool("no-share"); !noShare {
			printShareLinks(out, publisher.BuildShareLinks(content))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(blogCmd)
	addBlogFlags(blogCmd.Flags())
	blogCmd.Flags().Bool("no-share", false, "omit the share links")
}
