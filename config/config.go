package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the model endpoint credential.
const APIKeyEnv = "API_KEY"

// envPrefix applies to every key except the credential, e.g. BLOG_LLM_PROVIDER.
const envPrefix = "BLOG"

type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LLMConfig selects and tunes the remote text-generation endpoint.
type LLMConfig struct {
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"` // 0 leaves the client default in place
	System      string        `mapstructure:"system"`  // optional system instruction sent with every prompt
}

type SessionConfig struct {
	Backend string        `mapstructure:"backend"` // "memory" or "valkey"
	TTL     time.Duration `mapstructure:"ttl"`
}

type ValkeyConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Session SessionConfig `mapstructure:"session"`
	Valkey  ValkeyConfig  `mapstructure:"valkey"`
	Log     LogConfig     `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("llm.provider", "huggingface")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.temperature", 0.6)
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.timeout", time.Duration(0))
	v.SetDefault("llm.system", "")

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl", 24*time.Hour)

	v.SetDefault("valkey.address", "")
	v.SetDefault("valkey.password", "")
	v.SetDefault("valkey.db", 0)
	v.SetDefault("valkey.tls", false)

	v.SetDefault("log.level", "info")
}

// LoadConfig reads defaults, then the optional config file, then the environment.
// An empty configFile searches for config.yaml in the working directory and
// tolerates its absence; an explicit path must exist.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The credential keeps its bare name so a plain .env with API_KEY=... works.
	if err := v.BindEnv("llm.api_key", APIKeyEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", APIKeyEnv, err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.Session.Backend = strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	return &cfg, nil
}

// MaskedAPIKey reports whether a credential is configured without revealing it.
func (c LLMConfig) MaskedAPIKey() string {
	key := strings.TrimSpace(c.APIKey)
	switch {
	case key == "":
		return "<unset>"
	case len(key) <= 8:
		return "****"
	default:
		return key[:3] + "****" + key[len(key)-4:]
	}
}
