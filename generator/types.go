package generator

import (
	"strings"
	"time"
)

// Tone is the voice the blog post is written in.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneProfessional Tone = "professional"
	ToneFunny        Tone = "funny"
)

// Tones lists the selectable tones in display order.
var Tones = []Tone{ToneFormal, ToneCasual, ToneProfessional, ToneFunny}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if v == t {
			return true
		}
	}
	return false
}

// Style is the structure the blog post follows.
type Style string

const (
	StyleNews         Style = "news"
	StyleStorytelling Style = "storytelling"
	StyleListicle     Style = "listicle"
)

var Styles = []Style{StyleNews, StyleStorytelling, StyleListicle}

func (s Style) Valid() bool {
	for _, v := range Styles {
		if v == s {
			return true
		}
	}
	return false
}

// Word-count bounds offered by the length control.
const (
	MinBlogLength  = 100
	MaxBlogLength  = 1000
	BlogLengthStep = 50
)

// BlogRequest fully determines one blog generation call.
// Title and Keywords may be empty; they are forwarded as-is.
type BlogRequest struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Length   int      `json:"length"`
	Tone     Tone     `json:"tone"`
	Style    Style    `json:"style"`
}

// JoinedKeywords renders the keyword list the way the prompt expects it.
func (r BlogRequest) JoinedKeywords() string {
	return strings.Join(r.Keywords, keywordSeparator)
}

// TitleSuggestions is one title-suggestion response.
type TitleSuggestions struct {
	Raw       string   `json:"raw"`
	Formatted string   `json:"formatted"`
	Titles    []string `json:"titles"`
}

// BlogPost is the generated body under the chosen title. Content is the
// model output unmodified.
type BlogPost struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	GeneratedAt time.Time `json:"generated_at"`
}

// BlogForm holds the blog section's form fields between requests.
type BlogForm struct {
	Title  string `json:"title"`
	Length int    `json:"length"`
	Tone   Tone   `json:"tone"`
	Style  Style  `json:"style"`
}

// DefaultBlogForm mirrors the initial state of the form controls.
func DefaultBlogForm() BlogForm {
	return BlogForm{
		Length: MinBlogLength,
		Tone:   ToneFormal,
		Style:  StyleNews,
	}
}
