package app

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"ai_blog_assistant/config"
	"ai_blog_assistant/generator"
	"ai_blog_assistant/server"
)

// App wires configuration, the model client and the generation agent.
// The session store is only opened by commands that serve HTTP.
type App struct {
	Config *config.Config
	LLM    generator.LLMClient
	Agent  *generator.Agent
	Model  string

	store server.SessionStore
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	model := cfg.LLM.Model
	if model == "" {
		model = generator.DefaultModel(cfg.LLM.Provider)
	}

	llm, err := generator.NewLLM(ctx, &generator.LLMSettings{
		Provider:    cfg.LLM.Provider,
		Model:       model,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}

	agent, err := generator.NewAgent(llm)
	if err != nil {
		return nil, err
	}
	agent.WithSystem(cfg.LLM.System)

	log.WithFields(log.Fields{
		"provider":    cfg.LLM.Provider,
		"model":       model,
		"temperature": cfg.LLM.Temperature,
		"system":      cfg.LLM.System != "",
		"api_key":     cfg.LLM.MaskedAPIKey(),
	}).Info("LLM client initialized")

	return &App{Config: cfg, LLM: llm, Agent: agent, Model: model}, nil
}

// SessionStore opens the configured backend on first use.
func (a *App) SessionStore(ctx context.Context) (server.SessionStore, error) {
	if a.store != nil {
		return a.store, nil
	}

	cfg := a.Config
	switch cfg.Session.Backend {
	case "valkey":
		store, err := server.NewValkeyStore(ctx, server.ValkeyOptions{
			Address:  cfg.Valkey.Address,
			Password: cfg.Valkey.Password,
			DB:       cfg.Valkey.DB,
			TLS:      cfg.Valkey.TLS,
		}, cfg.Session.TTL)
		if err != nil {
			return nil, err
		}
		a.store = store
	default:
		a.store = server.NewMemoryStore(cfg.Session.TTL)
	}
	log.Infof("Session store: %s (ttl %s)", cfg.Session.Backend, cfg.Session.TTL)
	return a.store, nil
}

// Close releases the session store and any client holding connections.
func (a *App) Close() error {
	var firstErr error
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			firstErr = err
		}
	}
	if c, ok := a.LLM.(io.Closer); ok {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
