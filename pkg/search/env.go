package search

import (
	"os"
	"strings"

	"github.com/gooblox/gooblox/pkg/shared/stringutil"
)

// ApplyEnv fills empty config fields from environment variables.
func (c *Config) ApplyEnv() {
	if provider := strings.TrimSpace(os.Getenv("SEARCH_PROVIDER")); provider != "" {
		c.Provider = provider
	}
	if fallbacks := strings.TrimSpace(os.Getenv("SEARCH_FALLBACKS")); fallbacks != "" {
		c.Fallbacks = stringutil.SplitCSV(fallbacks)
	}
	c.ProxyURL = stringutil.EnvOr(c.ProxyURL, os.Getenv("SEARCH_PROXY"))
	c.Brave.APIKey = stringutil.EnvOr(c.Brave.APIKey, os.Getenv("BRAVE_API_KEY"))
	c.Brave.BaseURL = stringutil.EnvOr(c.Brave.BaseURL, os.Getenv("BRAVE_BASE_URL"))
}
