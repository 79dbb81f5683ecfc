package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const hfInferenceURL = "https://api-inference.huggingface.co/models"

// HFInferenceLLM calls the Hugging Face serverless text-generation task
// directly. Prompt.System is prepended to the user text.
type HFInferenceLLM struct {
	Model       string
	Temperature float64
	MaxTokens   int
	endpoint    string
	apiKey      string
	client      *http.Client
}

// HFError is a non-2xx reply from the inference endpoint.
type HFError struct {
	StatusCode int
	Message    string
}

func (e *HFError) Error() string {
	return fmt.Sprintf("hf-inference: status %d: %s", e.StatusCode, e.Message)
}

type hfParameters struct {
	Temperature    float64 `json:"temperature"`
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func NewHFInferenceLLM(cfg *LLMSettings) (*HFInferenceLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	if cfg.APIKey == "" {
		log.Warn("[LLM] hf-inference: no API key configured")
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = hfInferenceURL
	}
	return &HFInferenceLLM{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		endpoint:    base + "/" + cfg.Model,
		apiKey:      cfg.APIKey,
		client:      &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (h *HFInferenceLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	inputs := prompt.User
	if prompt.System != "" {
		inputs = prompt.System + "\n\n" + prompt.User
	}
	body, err := json.Marshal(hfRequest{
		Inputs: inputs,
		Parameters: hfParameters{
			Temperature:    h.Temperature,
			MaxNewTokens:   h.MaxTokens,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("hf-inference request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	log.WithFields(log.Fields{
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).String(),
		"bytes":   len(respBody),
	}).Debug("[LLM] hf-inference response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HFError{StatusCode: resp.StatusCode, Message: hfErrorMessage(respBody)}
	}

	var out []hfGeneration
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(out) == 0 {
		return "", errors.New("hf-inference: no generations returned")
	}
	return out[0].GeneratedText, nil
}

func hfErrorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = "empty response body"
	}
	return msg
}
