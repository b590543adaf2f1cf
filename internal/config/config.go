package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// ListingURL maps to LISTING_URL. The CLI positional argument overrides it.
	ListingURL string `envconfig:"LISTING_URL" default:"https://github.com/openbook-dex/openbook-v2/tree/master/programs/openbook-v2/src/state/orderbook"`

	// Suffix maps to SUFFIX. Only file entries ending with it are downloaded.
	Suffix string `envconfig:"SUFFIX" default:".rs"`

	// RawBaseURL maps to RAW_BASE_URL, the host serving unrendered file text.
	RawBaseURL string `envconfig:"RAW_BASE_URL" default:"https://raw.githubusercontent.com"`

	// LinkSelector maps to LINK_SELECTOR. It must match the file-entry anchors of the listing markup.
	LinkSelector string `envconfig:"LINK_SELECTOR" default:"a.js-navigation-open.Link--primary"`

	UserAgent string `envconfig:"USER_AGENT" default:"gitscrape/1.0"`

	// HTTPTimeout maps to HTTP_TIMEOUT. Durations parse directly, e.g. "10s".
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// PreviewLength maps to PREVIEW_LENGTH, the number of characters printed.
	PreviewLength int `envconfig:"PREVIEW_LENGTH" default:"500"`

	RenderJS      bool `envconfig:"RENDER_JS" default:"false"`
	RespectRobots bool `envconfig:"RESPECT_ROBOTS" default:"false"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then populates Config from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// A missing .env is normal; only a present but broken one is worth a warning.
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Warn("found .env file but could not load it", "err", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level resolves LogLevel, falling back to info for unknown names.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
