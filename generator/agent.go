package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Agent binds user values into a template and forwards the rendered prompt
// to the configured LLMClient. Responses come back unmodified.
type Agent struct {
	llm    LLMClient
	system string
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// WithSystem sets an optional system instruction sent with every prompt.
func (a *Agent) WithSystem(system string) *Agent {
	a.system = system
	return a
}

func (a *Agent) System() string {
	return a.system
}

// Generate renders tmpl with vars and makes exactly one model call.
// Whitespace-only output is reported as ErrEmptyResponse.
func (a *Agent) Generate(ctx context.Context, tmpl *Template, vars map[string]any) (string, error) {
	text, err := tmpl.Render(ctx, vars)
	if err != nil {
		return "", err
	}

	start := time.Now()
	raw, err := a.llm.Complete(ctx, Prompt{System: a.system, User: text})
	fields := log.Fields{
		"template": tmpl.Name,
		"elapsed":  time.Since(start).String(),
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("[Agent] generation failed")
		return "", fmt.Errorf("generate %s: %w", tmpl.Name, err)
	}
	if strings.TrimSpace(raw) == "" {
		log.WithFields(fields).Warn("[Agent] empty response")
		return "", fmt.Errorf("generate %s: %w", tmpl.Name, ErrEmptyResponse)
	}
	fields["chars"] = len(raw)
	log.WithFields(fields).Info("[Agent] generation done")
	return raw, nil
}

// SuggestTitles asks for ten titles on topic and returns the raw response.
func (a *Agent) SuggestTitles(ctx context.Context, topic string) (string, error) {
	return a.Generate(ctx, TitleSuggestion, TitleVariables(topic))
}

// WriteBlog generates the post body for req. Title and keywords are not
// required; length is passed through unclamped.
func (a *Agent) WriteBlog(ctx context.Context, req BlogRequest) (string, error) {
	return a.Generate(ctx, Blog, BlogVariables(req))
}
