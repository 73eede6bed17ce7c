package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvFile is the optional local override file read before the ambient
// process environment.
const EnvFile = ".env.local"

const (
	DefaultViewerIdentity = "viewer"
	DefaultViewerName     = "Web Viewer"
)

// ErrMissingConfig is returned when a required environment value is absent.
var ErrMissingConfig = errors.New("missing required configuration")

// Config carries everything needed to mint a viewer token.
type Config struct {
	APIKey         string
	APISecret      string
	URL            string // ws:// or wss://, normalized by Load
	RoomName       string
	ViewerIdentity string
	ViewerName     string
}

// Load reads configuration from .env.local (if present) and the process
// environment. Values from the file win over the environment.
func Load() (*Config, error) {
	return LoadFile(EnvFile)
}

// LoadFile is Load with an explicit override file path.
func LoadFile(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}

	// Viper's precedence puts the environment above config files, which is
	// the opposite of what the override file needs, so fall back by hand.
	lookup := func(key string) string {
		if s := v.GetString(key); s != "" {
			return s
		}
		return os.Getenv(key)
	}
	require := func(key string) (string, error) {
		if s := lookup(key); s != "" {
			return s, nil
		}
		return "", fmt.Errorf("%w: %s", ErrMissingConfig, key)
	}

	cfg := &Config{}
	var err error
	if cfg.APIKey, err = require("LIVEKIT_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.APISecret, err = require("LIVEKIT_API_SECRET"); err != nil {
		return nil, err
	}
	if cfg.URL, err = require("LIVEKIT_URL"); err != nil {
		return nil, err
	}
	if cfg.RoomName, err = require("LIVEKIT_ROOM_NAME"); err != nil {
		return nil, err
	}
	cfg.URL = NormalizeWebSocketURL(cfg.URL)

	cfg.ViewerIdentity = lookup("LIVEKIT_VIEWER_IDENTITY")
	if cfg.ViewerIdentity == "" {
		cfg.ViewerIdentity = DefaultViewerIdentity
	}
	cfg.ViewerName = lookup("LIVEKIT_VIEWER_NAME")
	if cfg.ViewerName == "" {
		cfg.ViewerName = DefaultViewerName
	}

	return cfg, nil
}

// NormalizeWebSocketURL rewrites an HTTP scheme to its WebSocket
// equivalent. URLs already in WebSocket form, or without a scheme, pass
// through unchanged.
func NormalizeWebSocketURL(raw string) string {
	switch {
	case strings.HasPrefix(raw, "https://"):
		return "wss://" + strings.TrimPrefix(raw, "https://")
	case strings.HasPrefix(raw, "http://"):
		return "ws://" + strings.TrimPrefix(raw, "http://")
	default:
		return raw
	}
}
