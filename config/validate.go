package config

import (
	"errors"
	"fmt"
)

var knownProviders = map[string]bool{
	"huggingface":  true,
	"hf-inference": true,
	"openai":       true,
	"anthropic":    true,
	"gemini":       true,
	"mock":         true,
}

// Validate checks the settings the app needs to start. The credential is
// deliberately left alone: a missing API_KEY only fails on the first model call.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}

	if !knownProviders[c.LLM.Provider] {
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature (%.2f) must be between 0 and 2", c.LLM.Temperature)
	}
	if c.LLM.MaxTokens < 0 {
		return errors.New("llm.max_tokens must not be negative")
	}
	if c.LLM.Timeout < 0 {
		return errors.New("llm.timeout must not be negative")
	}

	switch c.Session.Backend {
	case "memory":
	case "valkey":
		if c.Valkey.Address == "" {
			return errors.New("valkey.address is required when session.backend is valkey")
		}
	default:
		return fmt.Errorf("session.backend %q must be memory or valkey", c.Session.Backend)
	}
	if c.Session.TTL <= 0 {
		return errors.New("session.ttl must be positive")
	}

	return nil
}
