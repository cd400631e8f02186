package search

import "strings"

const (
	ProviderDDG    = "ddg"
	ProviderDDGAPI = "ddg-api"
	ProviderBrave  = "brave"

	DefaultSearchCount = 5
	MaxSearchCount     = 50
	DefaultTimeoutSecs = 30
)

// DefaultOrder is the provider chain used when none is configured. A single
// provider means one upstream failure is one client-visible failure.
var DefaultOrder = []string{ProviderDDG}

// Config controls provider selection, credentials and the outbound proxy.
type Config struct {
	Provider  string   `yaml:"provider"`
	Fallbacks []string `yaml:"fallbacks"`
	// ProxyURL is applied opaquely to provider HTTP clients.
	ProxyURL string `yaml:"proxy_url"`

	DDG    DDGConfig    `yaml:"ddg"`
	DDGAPI DDGAPIConfig `yaml:"ddg_api"`
	Brave  BraveConfig  `yaml:"brave"`
}

type DDGConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
	// Outbound pacing for the HTML endpoint, which throttles scrapers.
	RatePerSecond float64 `yaml:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst"`
}

type DDGAPIConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

type BraveConfig struct {
	Enabled     *bool  `yaml:"enabled"`
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderDDG
	}
	c.DDG = c.DDG.withDefaults()
	c.DDGAPI = c.DDGAPI.withDefaults()
	c.Brave = c.Brave.withDefaults()
	return c
}

func (c DDGConfig) withDefaults() DDGConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://html.duckduckgo.com/html/"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.RatePerSecond <= 0 {
		c.RatePerSecond = 1
	}
	if c.RateBurst <= 0 {
		c.RateBurst = 2
	}
	return c
}

func (c DDGAPIConfig) withDefaults() DDGAPIConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.duckduckgo.com/"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c BraveConfig) withDefaults() BraveConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.search.brave.com/res/v1/web/search"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func isEnabled(flag *bool, fallback bool) bool {
	if flag == nil {
		return fallback
	}
	return *flag
}
