// Package encyclopedia looks up short topic summaries on Wikipedia. It is a
// soft dependency: callers swallow its failures and degrade to no answer.
package encyclopedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gooblox/gooblox/pkg/shared/httputil"
)

// ErrNotFound means no page matched the phrase.
var ErrNotFound = errors.New("no matching page")

type Config struct {
	Enabled *bool `yaml:"enabled"`
	// APIBaseURL is the MediaWiki action API, used for title search.
	APIBaseURL string `yaml:"api_base_url"`
	// RestBaseURL is the REST API, used for page summaries.
	RestBaseURL string `yaml:"rest_base_url"`
	// Sentences is how many sentences of the extract to keep.
	Sentences   int `yaml:"sentences"`
	TimeoutSecs int `yaml:"timeout_seconds"`
}

func (c Config) withDefaults() Config {
	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://en.wikipedia.org/w/api.php"
	}
	if c.RestBaseURL == "" {
		c.RestBaseURL = "https://en.wikipedia.org/api/rest_v1"
	}
	if c.Sentences <= 0 {
		c.Sentences = 1
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = 10
	}
	return c
}

// Client is a read-only handle built once at startup. A nil Client is valid
// and always unavailable.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient returns nil when the capability is disabled.
func NewClient(cfg Config) *Client {
	if !enabled(cfg.Enabled) {
		return nil
	}
	cfg = cfg.withDefaults()
	client, err := httputil.NewClient("", cfg.TimeoutSecs)
	if err != nil {
		return nil
	}
	return &Client{cfg: cfg, client: client}
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func (c *Client) Available() bool {
	return c != nil
}

// Lookup searches for a page matching the phrase and returns a short summary.
func (c *Client) Lookup(ctx context.Context, phrase string) (string, error) {
	if c == nil {
		return "", ErrNotFound
	}
	title, err := c.SearchTitle(ctx, phrase)
	if err != nil {
		return "", err
	}
	return c.Summary(ctx, title)
}

// SearchTitle resolves a free-text phrase to the best-matching page title.
func (c *Client) SearchTitle(ctx context.Context, phrase string) (string, error) {
	endpoint, err := url.Parse(c.cfg.APIBaseURL)
	if err != nil {
		return "", err
	}
	q := endpoint.Query()
	q.Set("action", "opensearch")
	q.Set("search", phrase)
	q.Set("limit", "1")
	q.Set("format", "json")
	endpoint.RawQuery = q.Encode()

	data, _, err := httputil.Get(ctx, c.client, endpoint.String(), nil)
	if err != nil {
		return "", err
	}

	// Opensearch responses are positional: [phrase, titles, descriptions, urls].
	var payload []json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("invalid opensearch response: %w", err)
	}
	if len(payload) < 2 {
		return "", ErrNotFound
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return "", fmt.Errorf("invalid opensearch response: %w", err)
	}
	if len(titles) == 0 || strings.TrimSpace(titles[0]) == "" {
		return "", ErrNotFound
	}
	return titles[0], nil
}

// Summary fetches the page extract and trims it to the configured number of
// sentences.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	endpoint := strings.TrimSuffix(c.cfg.RestBaseURL, "/") + "/page/summary/" + url.PathEscape(title)
	data, _, err := httputil.Get(ctx, c.client, endpoint, map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return "", err
	}

	var decoded struct {
		Type    string `json:"type"`
		Extract string `json:"extract"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("invalid summary response: %w", err)
	}
	if decoded.Type == "disambiguation" {
		return "", fmt.Errorf("%q is a disambiguation page", title)
	}
	extract := strings.TrimSpace(decoded.Extract)
	if extract == "" {
		return "", ErrNotFound
	}
	return firstSentences(extract, c.cfg.Sentences), nil
}

// firstSentences keeps the leading n sentences of text, ending each at the
// first terminal punctuation. Text with fewer sentences passes through.
func firstSentences(text string, n int) string {
	if n <= 0 {
		return text
	}
	count := 0
	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		rest := text[i+1:]
		if rest != "" && !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\n") {
			continue
		}
		count++
		if count == n {
			return text[:i+1]
		}
	}
	return text
}
