package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
)

// LLMClient abstracts the text-generation endpoint so it can be swapped or faked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the provider-independent client configuration.
type LLMSettings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

const (
	ProviderHuggingFace = "huggingface"
	ProviderHFInference = "hf-inference"
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderGemini      = "gemini"
	ProviderMock        = "mock"
)

const (
	DefaultHFModel     = "meta-llama/Meta-Llama-3-8B-Instruct"
	DefaultTemperature = 0.6

	huggingFaceRouterURL = "https://router.huggingface.co/v1"
)

var (
	ErrUnknownProvider = errors.New("unknown llm provider")
	ErrEmptyResponse   = errors.New("model returned an empty response")
)

// DefaultModel is the model used when llm.model is unset.
func DefaultModel(provider string) string {
	switch provider {
	case ProviderHuggingFace, ProviderHFInference:
		return DefaultHFModel
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return string(anthropic.ModelClaude3_7Sonnet20250219)
	case ProviderGemini:
		return "gemini-1.5-flash"
	case ProviderMock:
		return "mock"
	default:
		return ""
	}
}

// NewLLM builds the client for settings.Provider, filling in the default model.
func NewLLM(ctx context.Context, settings *LLMSettings) (LLMClient, error) {
	if settings == nil {
		return nil, errors.New("llm settings are nil")
	}
	s := *settings
	s.Provider = strings.ToLower(strings.TrimSpace(s.Provider))
	if s.Model == "" {
		s.Model = DefaultModel(s.Provider)
	}

	switch s.Provider {
	case ProviderHuggingFace:
		if s.BaseURL == "" {
			s.BaseURL = huggingFaceRouterURL
		}
		return NewOpenAILLMFromConfig(&s)
	case ProviderOpenAI:
		return NewOpenAILLMFromConfig(&s)
	case ProviderHFInference:
		return NewHFInferenceLLM(&s)
	case ProviderAnthropic:
		return NewAnthropicLLM(&s)
	case ProviderGemini:
		return NewGeminiLLM(ctx, &s)
	case ProviderMock:
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, settings.Provider)
	}
}
