package bot

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "lyricsbot/core/config"
	coredatabase "lyricsbot/core/database"
)

// GeniusConfig holds search API settings.
type GeniusConfig struct {
	Token          string `yaml:"token" envconfig:"GENIUS_API_TOKEN"`
	BaseURL        string `yaml:"base_url" envconfig:"GENIUS_BASE_URL"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"GENIUS_TIMEOUT_SECONDS"`
}

// LyricsConfig holds page scraping settings.
type LyricsConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"LYRICS_TIMEOUT_SECONDS"`
	UserAgent      string `yaml:"user_agent" envconfig:"LYRICS_USER_AGENT"`
}

// AppConfig holds bot behaviour settings.
type AppConfig struct {
	// ChannelID receives new-user notifications; 0 disables them.
	ChannelID       int64  `yaml:"channel_id" envconfig:"CHANNEL_ID"`
	PageSize        int    `yaml:"page_size" envconfig:"APP_PAGE_SIZE"`
	LocalesDir      string `yaml:"locales_dir" envconfig:"APP_LOCALES_DIR"`
	DefaultLanguage string `yaml:"default_language" envconfig:"APP_DEFAULT_LANGUAGE"`
}

// Config aggregates core and bot-specific configuration.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Genius   GeniusConfig        `yaml:"genius"`
	Lyrics   LyricsConfig        `yaml:"lyrics"`
	App      AppConfig           `yaml:"app"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// LoadConfig reads YAML configuration, applies environment overrides,
// and validates the result.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.PageSize <= 0 {
		cfg.App.PageSize = 10
	}
	if cfg.App.LocalesDir == "" {
		cfg.App.LocalesDir = "locales"
	}
	if cfg.App.DefaultLanguage == "" {
		cfg.App.DefaultLanguage = "ru"
	}
	if cfg.Genius.TimeoutSeconds <= 0 {
		cfg.Genius.TimeoutSeconds = 10
	}
	if cfg.Lyrics.TimeoutSeconds <= 0 {
		cfg.Lyrics.TimeoutSeconds = 15
	}
}

// GeniusTimeout returns the search API timeout as a duration.
func (c *Config) GeniusTimeout() time.Duration {
	return time.Duration(c.Genius.TimeoutSeconds) * time.Second
}

// LyricsTimeout returns the scrape timeout as a duration.
func (c *Config) LyricsTimeout() time.Duration {
	return time.Duration(c.Lyrics.TimeoutSeconds) * time.Second
}
