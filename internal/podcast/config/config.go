package config

import (
	"time"

	"stock-intel/pkg/common"
	"stock-intel/pkg/config"
)

// Podcast holds the upload target and the directory scanned for audio.
type Podcast struct {
	ServerURL string        `mapstructure:"server_url"`
	Endpoint  string        `mapstructure:"endpoint"`
	SecretKey string        `mapstructure:"secret_key"`
	Directory string        `mapstructure:"directory"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Cron      string        `mapstructure:"cron"`
}

// Telegram holds configuration for the Telegram notifier. An empty bot token disables notifications.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the podcast uploader.
type Config struct {
	App      config.App    `mapstructure:"app"`
	Logger   config.Logger `mapstructure:"logger"`
	Podcast  Podcast       `mapstructure:"podcast"`
	Telegram Telegram      `mapstructure:"telegram"`
}

var defaults = map[string]interface{}{
	"app.name":           "stock-intel-podcast",
	"logger.level":       "info",
	"logger.encoding":    "console",
	"podcast.server_url": common.PodcastDefaultServer,
	"podcast.endpoint":   common.PodcastUploadPath,
	"podcast.secret_key": "",
	"podcast.directory":  "output/audios",
	"podcast.timeout":    "5m",
	"podcast.cron":       "30 15,17 * * 1-5",
	"telegram.bot_token": "",
	"telegram.chat_id":   0,
}

// Load loads the podcast uploader configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, defaults); err != nil {
		return nil, err
	}
	return &cfg, nil
}
