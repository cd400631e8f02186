// Package config loads the service configuration from an optional YAML file
// and overlays environment variables on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"github.com/gooblox/gooblox/pkg/encyclopedia"
	"github.com/gooblox/gooblox/pkg/httpapi"
	"github.com/gooblox/gooblox/pkg/search"
	"github.com/gooblox/gooblox/pkg/shared/stringutil"
	"github.com/gooblox/gooblox/pkg/spellcheck"
)

const DefaultPort = 8000

type Config struct {
	Port         int                     `yaml:"port"`
	Logging      zeroconfig.Config       `yaml:"logging"`
	Search       search.Config           `yaml:"search"`
	Encyclopedia encyclopedia.Config     `yaml:"encyclopedia"`
	Spellcheck   spellcheck.Config       `yaml:"spellcheck"`
	RateLimit    httpapi.RateLimitConfig `yaml:"rate_limit"`
}

// Load reads the config file (optional; empty path skips it), applies
// environment overrides, then fills defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	cfg.applyEnv()
	cfg.withDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil && n > 0 {
			c.Port = n
		}
	}
	c.Search.ApplyEnv()
	c.Spellcheck.WordList = stringutil.EnvOr(c.Spellcheck.WordList, os.Getenv("SPELLCHECK_WORDLIST"))
}

func (c *Config) withDefaults() {
	if c.Port <= 0 {
		c.Port = DefaultPort
	}
	if len(c.Logging.Writers) == 0 {
		c.Logging.Writers = []zeroconfig.WriterConfig{{
			Type:   zeroconfig.WriterTypeStdout,
			Format: zeroconfig.LogFormatPrettyColored,
		}}
	}
}
