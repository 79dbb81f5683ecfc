package generator

import (
	"context"
	"time"
)

// Session holds one browser's form state between requests. It is plain data
// so the server can keep it in memory or serialize it to Valkey.
type Session struct {
	ID          string            `json:"id"`
	Topic       string            `json:"topic"`
	Suggestions *TitleSuggestions `json:"suggestions,omitempty"`
	Form        BlogForm          `json:"form"`
	Keywords    KeywordList       `json:"keywords"`
	Post        *BlogPost         `json:"post,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewSession creates an empty session with the default form values.
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		Form:      DefaultBlogForm(),
		UpdatedAt: time.Now(),
	}
}

// SubmitTopic records topic and fetches fresh title suggestions. On failure
// the previous suggestions stay in place.
func (s *Session) SubmitTopic(ctx context.Context, agent *Agent, topic string) (TitleSuggestions, error) {
	s.Topic = topic
	s.touch()
	raw, err := agent.SuggestTitles(ctx, topic)
	if err != nil {
		return TitleSuggestions{}, err
	}
	sug := NewTitleSuggestions(raw)
	s.Suggestions = &sug
	return sug, nil
}

func (s *Session) AddKeyword(keyword string) {
	s.Keywords.Add(keyword)
	s.touch()
}

func (s *Session) ClearKeywords() {
	s.Keywords.Clear()
	s.touch()
}

// BlogRequest assembles the current form fields and keywords.
func (s *Session) BlogRequest() BlogRequest {
	return BlogRequest{
		Title:    s.Form.Title,
		Keywords: s.Keywords.Items(),
		Length:   s.Form.Length,
		Tone:     s.Form.Tone,
		Style:    s.Form.Style,
	}
}

// GenerateBlog writes a post from the current form state.
func (s *Session) GenerateBlog(ctx context.Context, agent *Agent) (BlogPost, error) {
	s.touch()
	req := s.BlogRequest()
	content, err := agent.WriteBlog(ctx, req)
	if err != nil {
		return BlogPost{}, err
	}
	post := BlogPost{
		Title:       req.Title,
		Content:     content,
		GeneratedAt: time.Now(),
	}
	s.Post = &post
	return post, nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
