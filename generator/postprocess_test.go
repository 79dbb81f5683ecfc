package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTitleSuggestions(t *testing.T) {
	raw := "  Here are the 10 top values.  \n\n 1. First \n2. Second\t"
	got := FormatTitleSuggestions(raw)

	assert.Equal(t, "Here are the 10 top values.\n\n1. First\n2. Second\n", got)
	assert.Equal(t, len(strings.Split(raw, "\n")), strings.Count(got, "\n"))
}

func TestFormatTitleSuggestionsEmpty(t *testing.T) {
	assert.Equal(t, "\n", FormatTitleSuggestions(""))
}

func TestExtractTitles(t *testing.T) {
	raw := `Here are the 10 top values.

1. **Remote Work Unlocked**
2) "Home Office Hacks"
3.   Why Offices Are Optional
10. The Last One
not a title
11.missing space`

	assert.Equal(t, []string{
		"Remote Work Unlocked",
		"Home Office Hacks",
		"Why Offices Are Optional",
		"The Last One",
	}, ExtractTitles(raw))
	assert.Empty(t, ExtractTitles("no list here"))
}

func TestNewTitleSuggestions(t *testing.T) {
	s := NewTitleSuggestions("Here are the 10 top values.\n1. A\n2. B")
	assert.Equal(t, "Here are the 10 top values.\n1. A\n2. B", s.Raw)
	assert.Equal(t, "Here are the 10 top values.\n1. A\n2. B\n", s.Formatted)
	assert.Equal(t, []string{"A", "B"}, s.Titles)
}
