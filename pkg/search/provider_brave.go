package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gooblox/gooblox/pkg/shared/httputil"
)

type braveProvider struct {
	cfg    BraveConfig
	client *http.Client
}

func newBraveProvider(cfg *Config) (Provider, error) {
	if cfg == nil || !isEnabled(cfg.Brave.Enabled, true) {
		return nil, nil
	}
	if strings.TrimSpace(cfg.Brave.APIKey) == "" {
		return nil, nil
	}
	client, err := newProviderClient(cfg, cfg.Brave.TimeoutSecs)
	if err != nil {
		return nil, err
	}
	return &braveProvider{cfg: cfg.Brave, client: client}, nil
}

func (p *braveProvider) Name() string {
	return ProviderBrave
}

func (p *braveProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if p.cfg.BaseURL == "" {
		return nil, errors.New("brave base_url is empty")
	}
	searchURL, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	queryValues := searchURL.Query()
	queryValues.Set("q", req.Query)
	queryValues.Set("count", strconv.Itoa(req.Count))
	if country := braveCountry(req.Region); country != "" {
		queryValues.Set("country", country)
	}
	queryValues.Set("safesearch", braveSafeSearch(req.SafeSearch))
	if freshness := braveFreshness(req.TimeLimit); freshness != "" {
		queryValues.Set("freshness", freshness)
	}
	searchURL.RawQuery = queryValues.Encode()

	start := time.Now()
	data, _, err := httputil.Get(ctx, p.client, searchURL.String(), map[string]string{
		"Accept":               "application/json",
		"X-Subscription-Token": p.cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(decoded.Web.Results))
	for _, entry := range decoded.Web.Results {
		if entry.URL == "" {
			continue
		}
		results = append(results, Result{
			Title: strings.TrimSpace(entry.Title),
			Href:  entry.URL,
			Body:  strings.TrimSpace(entry.Description),
		})
	}
	if len(results) > req.Count {
		results = results[:req.Count]
	}

	return &Response{
		Query:    req.Query,
		Provider: ProviderBrave,
		Count:    len(results),
		TookMs:   time.Since(start).Milliseconds(),
		Results:  results,
	}, nil
}

// braveCountry maps region codes like "us-en" to Brave's country parameter.
func braveCountry(region string) string {
	region = strings.TrimSpace(strings.ToLower(region))
	if region == "" || region == "wt-wt" {
		return ""
	}
	if country, _, found := strings.Cut(region, "-"); found {
		return strings.ToUpper(country)
	}
	return strings.ToUpper(region)
}

func braveSafeSearch(level string) string {
	switch level {
	case "on":
		return "strict"
	case "off":
		return "off"
	default:
		return "moderate"
	}
}

func braveFreshness(timeLimit string) string {
	switch timeLimit {
	case "d", "w", "m", "y":
		return "p" + timeLimit
	default:
		return ""
	}
}
