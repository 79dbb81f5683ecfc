package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"ai_blog_assistant/generator"
)

func addBlogFlags(flags *pflag.FlagSet) {
	flags.String("title", "", "blog title (may be empty)")
	flags.StringArray("keyword", nil, "keyword to work into the post (repeatable, order kept)")
	flags.Int("length", generator.MinBlogLength, fmt.Sprintf("target word count (%d-%d)", generator.MinBlogLength, generator.MaxBlogLength))
	flags.String("tone", string(generator.ToneFormal), "formal, casual, professional or funny")
	flags.String("style", string(generator.StyleNews), "news, storytelling or listicle")
}

// ParseBlogRequest reads the blog flags, rejecting the same values the API rejects.
func ParseBlogRequest(flags *pflag.FlagSet) (generator.BlogRequest, error) {
	title, _ := flags.GetString("title")
	keywords, _ := flags.GetStringArray("keyword")
	length, _ := flags.GetInt("length")
	tone, _ := flags.GetString("tone")
	style, _ := flags.GetString("style")

	req := generator.BlogRequest{
		Title:    title,
		Keywords: keywords,
		Length:   length,
		Tone:     generator.Tone(tone),
		Style:    generator.Style(style),
	}
	if req.Length < generator.MinBlogLength || req.Length > generator.MaxBlogLength {
		return req, fmt.Errorf("--length must be between %d and %d", generator.MinBlogLength, generator.MaxBlogLength)
	}
	if !req.Tone.Valid() {
		return req, fmt.Errorf("--tone %q is not one of %v", tone, generator.Tones)
	}
	if !req.Style.Valid() {
		return req, fmt.Errorf("--style %q is not one of %v", style, generator.Styles)
	}
	return req, nil
}
