package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ai_blog_assistant/generator"
)

var titlesCmd = &cobra.Command{
	Use:   "titles [topic]",
	Short: "Suggest 10 blog titles for a topic",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		// The topic is forwarded as given, empty included.
		topic, _ := cmd.Flags().GetString("topic")
		if !cmd.Flags().Changed("topic") {
			if len(args) == 0 {
				return errors.New("a topic is required (--topic or positional argument)")
			}
			topic = strings.Join(args, " ")
		}

		raw, err := appInstance.Agent.SuggestTitles(cmd.Context(), topic)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printHeading(out, "Title Generation")
		fmt.Fprint(out, generator.FormatTitleSuggestions(raw))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
	titlesCmd.Flags().String("topic", "", "blog topic")
}
