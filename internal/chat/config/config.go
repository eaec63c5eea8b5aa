package config

import (
	"time"

	"stock-intel/pkg/config"
)

// LLM holds the configuration for the language model provider used by the chat path.
type LLM struct {
	Provider            string        `mapstructure:"provider"`
	APIKey              string        `mapstructure:"api_key"`
	BaseURL             string        `mapstructure:"base_url"`
	IntentModel         string        `mapstructure:"intent_model"`
	AssistantModel      string        `mapstructure:"assistant_model"`
	MaxTokens           int           `mapstructure:"max_tokens"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// CORS holds the allowed origins for the chat API.
type CORS struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// Config holds the full configuration for the chat service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	API      config.API      `mapstructure:"api"`
	LLM      LLM             `mapstructure:"llm"`
	CORS     CORS            `mapstructure:"cors"`
}

var defaults = map[string]interface{}{
	"app.name":                   "stock-intel-chat",
	"logger.level":               "info",
	"logger.encoding":            "json",
	"database.host":              "localhost",
	"database.port":              5432,
	"database.user":              "",
	"database.password":          "",
	"database.name":              "stockintel",
	"database.ssl_mode":          "require",
	"database.max_idle_conns":    5,
	"database.max_open_conns":    10,
	"database.conn_max_lifetime": "30m",
	"api.port":                   8000,
	"llm.provider":               "deepseek",
	"llm.api_key":                "",
	"llm.base_url":               "https://api.deepseek.com/v1",
	"llm.intent_model":           "deepseek-chat",
	"llm.assistant_model":        "deepseek-chat",
	"llm.max_tokens":             1024,
	"llm.timeout":                "30s",
	"llm.max_request_per_minute": 60,
	"cors.allow_origins":         []string{"*"},
}

// Load loads the chat service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
