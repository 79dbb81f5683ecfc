package generator

import (
	"encoding/json"
	"strings"
)

const keywordSeparator = ", "

// KeywordList is an ordered keyword collection. Duplicates and empty entries
// are kept exactly as added.
type KeywordList struct {
	items []string
}

func (l *KeywordList) Add(keyword string) {
	l.items = append(l.items, keyword)
}

// Items returns a copy so callers cannot mutate the list behind its back.
func (l KeywordList) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

func (l KeywordList) Len() int { return len(l.items) }

// Join renders the list as "a, b, c". An empty list joins to "".
func (l KeywordList) Join() string {
	return strings.Join(l.items, keywordSeparator)
}

func (l *KeywordList) Clear() {
	l.items = nil
}

func (l KeywordList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Items())
}

func (l *KeywordList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	l.items = items
	return nil
}
