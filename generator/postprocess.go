package generator

import (
	"regexp"
	"strings"
)

// FormatTitleSuggestions trims every line of raw and terminates each with "\n".
// No line is dropped or merged, blank ones included.
func FormatTitleSuggestions(raw string) string {
	var sb strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		sb.WriteString(strings.TrimSpace(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

var numberedLineRe = regexp.MustCompile(`^\s*(\d{1,2})[.)]\s+(.+)$`)

// ExtractTitles picks the numbered entries ("1. Title", "2) Title") out of a
// title-suggestion response, stripping markdown emphasis and quotes.
func ExtractTitles(raw string) []string {
	var titles []string
	for _, line := range strings.Split(raw, "\n") {
		m := numberedLineRe.FindStringSubmatch(line)
		if len(m) != 3 {
			continue
		}
		title := strings.Trim(strings.TrimSpace(m[2]), `*"“”`)
		title = strings.TrimSpace(title)
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// NewTitleSuggestions bundles a raw response with its display forms.
func NewTitleSuggestions(raw string) TitleSuggestions {
	return TitleSuggestions{
		Raw:       raw,
		Formatted: FormatTitleSuggestions(raw),
		Titles:    ExtractTitles(raw),
	}
}
