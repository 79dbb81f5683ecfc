package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleSuggestionTemplate(t *testing.T) {
	out := TitleSuggestionTemplate("remote work")

	assert.Contains(t, out, "on the topic: remote work.")
	assert.Contains(t, out, `"Here are the 10 top values."`)
	assert.Contains(t, out, "exactly 10")
	assert.NotContains(t, out, "{topic}")
}

func TestTitleSuggestionTemplateVerbatim(t *testing.T) {
	topic := `  C++ & "100%" growth  `
	out := TitleSuggestionTemplate(topic)
	assert.Contains(t, out, "on the topic: "+topic+".")
}

func TestBlogTemplate(t *testing.T) {
	out := BlogTemplate("Go for Beginners", []string{"ai", "blogging"}, 350, ToneCasual, StyleListicle)

	assert.Contains(t, out, `Write a casual and listicle blog post on the topic: "Go for Beginners".`)
	assert.Contains(t, out, "these keywords: ai, blogging.")
	assert.Contains(t, out, "content length of 350 words.")
	assert.Contains(t, out, "beginner audience")
}

func TestBlogTemplateNoKeywordsNoTitle(t *testing.T) {
	out := BlogTemplate("", nil, 100, ToneFormal, StyleNews)

	assert.Contains(t, out, `on the topic: "".`)
	assert.Contains(t, out, "these keywords: .")
	assert.Contains(t, out, "content length of 100 words.")
}

func TestBlogVariables(t *testing.T) {
	vars := BlogVariables(BlogRequest{
		Title:    "T",
		Keywords: []string{"ai", "blogging"},
		Length:   1000,
		Tone:     ToneFunny,
		Style:    StyleStorytelling,
	})

	assert.Equal(t, "ai, blogging", vars["keywords"])
	assert.Equal(t, 1000, vars["blog_length"])
	assert.Equal(t, "funny", vars["tone"])
	assert.Equal(t, "storytelling", vars["style"])
	assert.Equal(t, "T", vars["title"])

	empty := BlogVariables(BlogRequest{})
	assert.Equal(t, "", empty["keywords"])
}

func TestTemplateRenderMissingVariable(t *testing.T) {
	_, err := Blog.Render(context.Background(), map[string]any{"title": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing variable")
}

func TestTemplatePlaceholders(t *testing.T) {
	for _, name := range TitleSuggestion.Variables {
		assert.Contains(t, TitleSuggestion.Text(), "{"+name+"}")
	}
	for _, name := range Blog.Variables {
		assert.Contains(t, Blog.Text(), "{"+name+"}")
	}
}
