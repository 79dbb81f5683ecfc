package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ai_blog_assistant/publisher"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	bullet  = color.New(color.FgGreen)
)

func printHeading(w io.Writer, text string) {
	heading.Fprintln(w, text)
}

func printShareLinks(w io.Writer, links publisher.ShareLinks) {
	fmt.Fprintln(w)
	printHeading(w, "Share Your Blog")
	fmt.Fprintf(w, "%s %s\n", bullet.Sprint("LinkedIn:"), links.LinkedIn)
	fmt.Fprintf(w, "%s %s\n", bullet.Sprint("Medium:  "), links.Medium)
}

func printStats(w io.Writer, stats publisher.PostStats, requested int) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %d words (requested %d), %d sentences, %d min read\n",
		bullet.Sprint("Stats:"), stats.Words, requested, stats.Sentences, stats.ReadingMinutes)
}
