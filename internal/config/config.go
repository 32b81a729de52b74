package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores runtime configuration for the kiosk backend.
type Config struct {
	Store    StoreConfig
	Playback PlaybackConfig
	Nav      NavConfig
	Fallback FallbackConfig

	DefaultLanguage string `env:"KIOSK_DEFAULT_LANGUAGE" envDefault:"english"`
}

type StoreConfig struct {
	BaseURL          string        `env:"KIOSK_STORE_URL" envDefault:"http://localhost:8080"`
	Timeout          time.Duration `env:"KIOSK_STORE_TIMEOUT" envDefault:"10s"`
	DefaultVolumeCap int           `env:"KIOSK_DEFAULT_VOLUME_CAP" envDefault:"70"`
}

type PlaybackConfig struct {
	AutoplayRetryDelay time.Duration `env:"KIOSK_AUTOPLAY_RETRY_DELAY" envDefault:"300ms"`
	StartDelay         time.Duration `env:"KIOSK_START_PLAY_DELAY" envDefault:"100ms"`
}

type NavConfig struct {
	HistoryLimit int `env:"KIOSK_NAV_HISTORY_LIMIT" envDefault:"20"`
}

type FallbackConfig struct {
	LinksFile string `env:"KIOSK_FALLBACK_LINKS_FILE"`
}

// Load resolves configuration from environment variables and sensible
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = 10 * time.Second
	}
	if cfg.Store.DefaultVolumeCap <= 0 || cfg.Store.DefaultVolumeCap > 100 {
		cfg.Store.DefaultVolumeCap = 70
	}
	if cfg.Playback.AutoplayRetryDelay <= 0 {
		cfg.Playback.AutoplayRetryDelay = 300 * time.Millisecond
	}
	if cfg.Playback.StartDelay <= 0 {
		cfg.Playback.StartDelay = 100 * time.Millisecond
	}
	if cfg.Nav.HistoryLimit <= 0 {
		cfg.Nav.HistoryLimit = 20
	}

	return cfg, nil
}
