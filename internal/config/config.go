package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "PROFILESCOPE_CONFIG"
	botTokenEnv       = "BOT_TOKEN"
	summarizerKeyEnv  = "DEEPSEEK_API_KEY"
	summarizerModEnv  = "DEEPSEEK_MODEL"
	summarizerHostEnv = "DEEPSEEK_ENDPOINT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Telegram   TelegramConfig   `yaml:"telegram"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Source     SourceConfig     `yaml:"source"`
	Mirrors    []MirrorConfig   `yaml:"mirrors"`
	Browser    BrowserConfig    `yaml:"browser"`
	Queue      QueueConfig      `yaml:"queue"`
}

// LoggingConfig controls the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// TelegramConfig wires the bot credential.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
}

// SummarizerConfig defines how to contact the external summarizer.
type SummarizerConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"apiKey"`
	SystemPrompt string `yaml:"systemPrompt"`
}

// SourceConfig tunes the fallback chain.
type SourceConfig struct {
	MinContentLen  int `yaml:"minContentLen"`
	TimeoutSeconds int `yaml:"timeoutSeconds"`
}

// MirrorConfig describes one read-only mirror host, tried in list order.
type MirrorConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"baseUrl"`
}

// BrowserConfig controls the headless-render fallback strategy.
type BrowserConfig struct {
	Enabled             bool   `yaml:"enabled"`
	Bin                 string `yaml:"bin"`
	Headless            bool   `yaml:"headless"`
	NavigationTimeoutMs int    `yaml:"navigationTimeoutMs"`
	BaseURL             string `yaml:"baseUrl"`
}

// QueueConfig bounds the pending-job buffer.
type QueueConfig struct {
	Capacity int `yaml:"capacity"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Mirrors) == 0 {
		cfg.Mirrors = defaultConfig().Mirrors
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(botTokenEnv); v != "" {
		c.Telegram.BotToken = v
	}

	if v := os.Getenv(summarizerKeyEnv); v != "" {
		c.Summarizer.APIKey = v
	}

	if v := os.Getenv(summarizerModEnv); v != "" {
		c.Summarizer.Model = v
	}

	if v := os.Getenv(summarizerHostEnv); v != "" {
		c.Summarizer.Endpoint = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Telegram.BotToken != "" {
		base.Telegram.BotToken = override.Telegram.BotToken
	}

	if override.Summarizer.Endpoint != "" {
		base.Summarizer.Endpoint = override.Summarizer.Endpoint
	}
	if override.Summarizer.Model != "" {
		base.Summarizer.Model = override.Summarizer.Model
	}
	if override.Summarizer.APIKey != "" {
		base.Summarizer.APIKey = override.Summarizer.APIKey
	}
	if override.Summarizer.SystemPrompt != "" {
		base.Summarizer.SystemPrompt = override.Summarizer.SystemPrompt
	}

	if override.Source.MinContentLen > 0 {
		base.Source.MinContentLen = override.Source.MinContentLen
	}
	if override.Source.TimeoutSeconds > 0 {
		base.Source.TimeoutSeconds = override.Source.TimeoutSeconds
	}

	if len(override.Mirrors) > 0 {
		base.Mirrors = override.Mirrors
	}

	if override.Browser.Enabled {
		base.Browser.Enabled = true
	}
	if override.Browser.Bin != "" {
		base.Browser.Bin = override.Browser.Bin
	}
	if override.Browser.NavigationTimeoutMs > 0 {
		base.Browser.NavigationTimeoutMs = override.Browser.NavigationTimeoutMs
	}
	if override.Browser.BaseURL != "" {
		base.Browser.BaseURL = override.Browser.BaseURL
	}

	if override.Queue.Capacity > 0 {
		base.Queue.Capacity = override.Queue.Capacity
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging:  LoggingConfig{Level: "info"},
		Telegram: TelegramConfig{BotToken: ""},
		Summarizer: SummarizerConfig{
			Endpoint: "https://api.deepseek.com/chat/completions",
			Model:    "deepseek-chat",
			APIKey:   "",
		},
		Source: SourceConfig{
			MinContentLen:  24,
			TimeoutSeconds: 15,
		},
		Mirrors: []MirrorConfig{
			{Name: "nitter-net", BaseURL: "https://nitter.net"},
			{Name: "nitter-poast", BaseURL: "https://nitter.poast.org"},
			{Name: "nitter-privacydev", BaseURL: "https://nitter.privacydev.net"},
		},
		Browser: BrowserConfig{
			Enabled:             true,
			Headless:            true,
			NavigationTimeoutMs: 30000,
			BaseURL:             "https://nitter.net",
		},
		Queue: QueueConfig{Capacity: 64},
	}
}
