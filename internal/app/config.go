package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	WebListen   string        `env:"PACENOTE_WEB_LISTEN" envDefault:"127.0.0.1:8080"` // HTTP listen address
	LogDir      string        `env:"PACENOTE_LOG_DIR"`                                // stage recordings root
	APIBase     string        `env:"PACENOTE_API_BASE"`                               // loader base URL, e.g. http://127.0.0.1:8080
	HTTPTimeout time.Duration `env:"PACENOTE_HTTP_TIMEOUT" envDefault:"0s"`           // outbound client timeout; 0 disables

	UDPListen  string  `env:"PACENOTE_UDP_LISTEN" envDefault:"127.0.0.1:20777"` // game telemetry listen address
	UDPForward string  `env:"PACENOTE_UDP_FORWARD"`                            // relay every datagram here when set
	CueOffset  float64 `env:"PACENOTE_CUE_OFFSET" envDefault:"10"`             // look-ahead factor for cue calls
}

// LoadConfig reads Config from the environment and fills derived defaults.
func LoadConfig() (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}
	return cfg.Normalize()
}

// ParseEnv reads Config from the environment without deriving defaults, so
// callers can apply overrides before Normalize.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Normalize fills LogDir and APIBase when empty.
func (c Config) Normalize() (Config, error) {
	if c.LogDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		c.LogDir = filepath.Join(home, "Documents", "My Games", "WRC", "pacenotes")
	}
	if c.APIBase == "" {
		c.APIBase = "http://" + c.WebListen
	}
	c.APIBase = strings.TrimRight(c.APIBase, "/")
	return c, nil
}
