package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

// Prompt is the message pair sent to an LLMClient. System may be empty.
type Prompt struct {
	System string
	User   string
}

// TitleIntro is the sentence every title-suggestion response must open with.
const TitleIntro = "Here are the 10 top values."

const titleSuggestionText = `
I'm planning a blog post on the topic: {topic}.
Always start your response with the sentence: "` + TitleIntro + `"
Then, provide a **list of exactly 10 creative and attention-grabbing titles** for this blog post.
The response must:
- Be presented as a numbered list (1 to 10).
- Contain **only** the introductory sentence and the list of titles with no additional comments, explanations, notes, or greetings.
- Do not include any additional words like "Thanks", "Best regards", or closing remarks.
`

const blogText = `
Write a {tone} and {style} blog post on the topic: "{title}".
Target the content towards a beginner audience.
Use a conversational writing style and structure the content with an introduction, body paragraphs, and a conclusion.
Try to incorporate these keywords: {keywords}.
Aim for a content length of {blog_length} words.

**Important Instructions:**
- Do NOT include any additional notes, disclaimers, best regards, or explanations.
- Provide ONLY the blog content without commentary or metadata.
- Maintain natural readability and smooth flow without unnecessary filler text.
`

// Template is a named-placeholder prompt rendered through eino's f-string formatter.
type Template struct {
	Name      string
	Variables []string
	text      string
	chat      *prompt.DefaultChatTemplate
}

func newTemplate(name, text string, vars ...string) *Template {
	return &Template{
		Name:      name,
		Variables: vars,
		text:      text,
		chat:      prompt.FromMessages(schema.FString, schema.UserMessage(text)),
	}
}

var (
	TitleSuggestion = newTemplate("title_suggestion", titleSuggestionText, "topic")
	Blog            = newTemplate("blog", blogText, "title", "keywords", "blog_length", "tone", "style")
)

// Text returns the unrendered template.
func (t *Template) Text() string { return t.text }

// Render substitutes vars verbatim. Values are not validated or escaped;
// only a missing placeholder is an error.
func (t *Template) Render(ctx context.Context, vars map[string]any) (string, error) {
	for _, name := range t.Variables {
		if _, ok := vars[name]; !ok {
			return "", fmt.Errorf("template %s: missing variable %q", t.Name, name)
		}
	}
	msgs, err := t.chat.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("template %s: %w", t.Name, err)
	}
	var sb strings.Builder
	for _, m := range msgs {
		sb.WriteString(m.Content)
	}
	return sb.String(), nil
}

func TitleVariables(topic string) map[string]any {
	return map[string]any{"topic": topic}
}

// BlogVariables binds a request into the blog template's placeholders.
// Keywords are pre-joined with ", ".
func BlogVariables(req BlogRequest) map[string]any {
	return map[string]any{
		"title":       req.Title,
		"keywords":    req.JoinedKeywords(),
		"blog_length": req.Length,
		"tone":        string(req.Tone),
		"style":       string(req.Style),
	}
}

// TitleSuggestionTemplate renders the title-suggestion prompt for topic.
func TitleSuggestionTemplate(topic string) string {
	return mustRender(TitleSuggestion, TitleVariables(topic))
}

// BlogTemplate renders the blog prompt from loose arguments.
func BlogTemplate(title string, keywords []string, length int, tone Tone, style Style) string {
	return mustRender(Blog, BlogVariables(BlogRequest{
		Title:    title,
		Keywords: keywords,
		Length:   length,
		Tone:     tone,
		Style:    style,
	}))
}

// mustRender is only used with variable maps built in this file, which
// always cover every placeholder.
func mustRender(t *Template, vars map[string]any) string {
	out, err := t.Render(context.Background(), vars)
	if err != nil {
		panic(err)
	}
	return out
}
