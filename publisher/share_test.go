package publisher

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLinkedInShareURLRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain",
		"Hello world",
		"a&b=c",
		"100% + more",
		"path/with?query#frag",
		"Café ☕ 日本語",
		"line one\nline two\n\n## Heading",
	}

	for _, content := range cases {
		link := BuildLinkedInShareURL(content)
		require.True(t, strings.HasPrefix(link, "https://www.linkedin.com/sharing/share-offsite/?url="), link)

		u, err := url.Parse(link)
		require.NoError(t, err)
		assert.Equal(t, content, u.Query().Get("url"))
		assert.Len(t, u.Query(), 1, "content must not leak into extra parameters: %q", content)
	}
}

func TestBuildLinkedInShareURLSpaces(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url=a%20b%2Bc", BuildLinkedInShareURL("a b+c"))
}

func TestBuildMediumGuideURL(t *testing.T) {
	assert.Equal(t, "https://medium.com/new-story", BuildMediumGuideURL())
	assert.Equal(t, BuildMediumGuideURL(), BuildShareLinks("anything").Medium)
}

func TestBuildShareLinks(t *testing.T) {
	links := BuildShareLinks("post body")
	assert.Equal(t, BuildLinkedInShareURL("post body"), links.LinkedIn)
}
