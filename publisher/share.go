package publisher

import (
	"net/url"
	"strings"
)

const (
	linkedInShareURL = "https://www.linkedin.com/sharing/share-offsite/?url="
	mediumNewStory   = "https://medium.com/new-story"
)

// ShareLinks are the social links shown under a generated post.
type ShareLinks struct {
	LinkedIn string `json:"linkedin"`
	Medium   string `json:"medium"`
}

// BuildLinkedInShareURL puts the percent-encoded content into the url
// parameter. Decoding the parameter yields content byte for byte.
func BuildLinkedInShareURL(content string) string {
	return linkedInShareURL + encodeComponent(content)
}

// BuildMediumGuideURL returns the Medium compose page. Medium has no
// prefill parameter, so the content is not part of the link.
func BuildMediumGuideURL() string {
	return mediumNewStory
}

func BuildShareLinks(content string) ShareLinks {
	return ShareLinks{
		LinkedIn: BuildLinkedInShareURL(content),
		Medium:   BuildMediumGuideURL(),
	}
}

// encodeComponent escapes everything outside the unreserved set; spaces
// become %20 rather than "+".
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
