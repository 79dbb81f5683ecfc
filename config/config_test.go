package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(APIKeyEnv, "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "huggingface", cfg.LLM.Provider)
	assert.Equal(t, "", cfg.LLM.Model)
	assert.InDelta(t, 0.6, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, time.Duration(0), cfg.LLM.Timeout)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blog.yaml")
	content := `
server:
  addr: ":9090"
llm:
  provider: OpenAI
  model: gpt-4o
  temperature: 0.2
  timeout: 30s
session:
  backend: valkey
  ttl: 1h
valkey:
  address: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(APIKeyEnv, "sk-test-123456789")
	t.Setenv("BLOG_LLM_MAX_TOKENS", "512")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 512, cfg.LLM.MaxTokens)
	assert.Equal(t, "sk-test-123456789", cfg.LLM.APIKey)
	assert.Equal(t, "valkey", cfg.Session.Backend)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "localhost:6379", cfg.Valkey.Address)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Addr: ":8080"},
			LLM:     LLMConfig{Provider: "mock", Temperature: 0.6, MaxTokens: 100},
			Session: SessionConfig{Backend: "memory", TTL: time.Hour},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"ok", func(c *Config) {}, ""},
		{"missing api key is fine", func(c *Config) { c.LLM.APIKey = "" }, ""},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "bard" }, "not supported"},
		{"temperature too high", func(c *Config) { c.LLM.Temperature = 2.5 }, "temperature"},
		{"negative max tokens", func(c *Config) { c.LLM.MaxTokens = -1 }, "max_tokens"},
		{"valkey without address", func(c *Config) { c.Session.Backend = "valkey" }, "valkey.address"},
		{"unknown backend", func(c *Config) { c.Session.Backend = "redis" }, "memory or valkey"},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }, "ttl"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMaskedAPIKey(t *testing.T) {
	assert.Equal(t, "<unset>", LLMConfig{}.MaskedAPIKey())
	assert.Equal(t, "****", LLMConfig{APIKey: "short"}.MaskedAPIKey())

	masked := LLMConfig{APIKey: "hf_abcdefghijklmnop"}.MaskedAPIKey()
	assert.Equal(t, "hf_****mnop", masked)
	assert.NotContains(t, masked, "abcdefghijkl")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("BLOG_TEST_ONLY_VAR=from-file\n"), 0o600))
	t.Setenv("BLOG_TEST_ONLY_VAR", "")
	require.NoError(t, os.Unsetenv("BLOG_TEST_ONLY_VAR"))

	LoadEnv(path)
	assert.Equal(t, "from-file", os.Getenv("BLOG_TEST_ONLY_VAR"))

	// Missing files are tolerated.
	LoadEnv(filepath.Join(dir, "nope.env"))
}
