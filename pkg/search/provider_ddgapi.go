package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gooblox/gooblox/pkg/shared/httputil"
)

// ddgAPIProvider queries the DuckDuckGo instant-answer API. It needs no key
// but only covers encyclopedic queries and ignores most search parameters.
type ddgAPIProvider struct {
	cfg    DDGAPIConfig
	client *http.Client
}

func newDDGAPIProvider(cfg *Config) (Provider, error) {
	if cfg == nil || !isEnabled(cfg.DDGAPI.Enabled, true) {
		return nil, nil
	}
	client, err := newProviderClient(cfg, cfg.DDGAPI.TimeoutSecs)
	if err != nil {
		return nil, err
	}
	return &ddgAPIProvider{cfg: cfg.DDGAPI, client: client}, nil
}

func (p *ddgAPIProvider) Name() string {
	return ProviderDDGAPI
}

type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Topics   []ddgTopic `json:"Topics"`
}

func (p *ddgAPIProvider) Search(ctx context.Context, req Request) (*Response, error) {
	endpoint, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	q := endpoint.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	endpoint.RawQuery = q.Encode()

	start := time.Now()
	data, _, err := httputil.Get(ctx, p.client, endpoint.String(), map[string]string{
		"Accept": "application/json",
	})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		AbstractText  string     `json:"AbstractText"`
		AbstractURL   string     `json:"AbstractURL"`
		Heading       string     `json:"Heading"`
		RelatedTopics []ddgTopic `json:"RelatedTopics"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	results := make([]Result, 0, req.Count)
	if decoded.AbstractText != "" && decoded.AbstractURL != "" {
		results = append(results, Result{
			Title: strings.TrimSpace(decoded.Heading),
			Href:  decoded.AbstractURL,
			Body:  strings.TrimSpace(decoded.AbstractText),
		})
	}
	var appendTopic func(topic ddgTopic)
	appendTopic = func(topic ddgTopic) {
		if len(results) >= req.Count {
			return
		}
		if topic.Text != "" && topic.FirstURL != "" {
			title, body := splitTopicText(topic.Text)
			results = append(results, Result{Title: title, Href: topic.FirstURL, Body: body})
		}
		for _, child := range topic.Topics {
			appendTopic(child)
		}
	}
	for _, topic := range decoded.RelatedTopics {
		appendTopic(topic)
	}

	var ignored []string
	if req.Region != "" {
		ignored = append(ignored, "region")
	}
	if req.TimeLimit != "" {
		ignored = append(ignored, "timelimit")
	}

	return &Response{
		Query:    req.Query,
		Provider: ProviderDDGAPI,
		Count:    len(results),
		TookMs:   time.Since(start).Milliseconds(),
		Results:  results,
		Ignored:  ignored,
	}, nil
}

func splitTopicText(text string) (title string, body string) {
	parts := strings.SplitN(text, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(text), ""
}
