package search

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/gooblox/gooblox/pkg/shared/httputil"
)

// The HTML endpoint rejects the default Go user agent.
const ddgUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// ddgProvider scrapes the DuckDuckGo HTML endpoint, which honors region,
// safe search and time filters without an API key.
type ddgProvider struct {
	cfg     DDGConfig
	client  *http.Client
	limiter *rate.Limiter
}

func newDDGProvider(cfg *Config) (Provider, error) {
	if cfg == nil || !isEnabled(cfg.DDG.Enabled, true) {
		return nil, nil
	}
	client, err := newProviderClient(cfg, cfg.DDG.TimeoutSecs)
	if err != nil {
		return nil, err
	}
	return &ddgProvider{
		cfg:     cfg.DDG,
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.DDG.RatePerSecond), cfg.DDG.RateBurst),
	}, nil
}

func (p *ddgProvider) Name() string {
	return ProviderDDG
}

func (p *ddgProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("q", req.Query)
	if req.Region != "" {
		form.Set("kl", req.Region)
	}
	form.Set("kp", ddgSafeSearchParam(req.SafeSearch))
	if req.TimeLimit != "" {
		form.Set("df", req.TimeLimit)
	}

	start := time.Now()
	body, _, err := httputil.PostForm(ctx, p.client, p.cfg.BaseURL, form, map[string]string{
		"User-Agent": ddgUserAgent,
	})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, req.Count)
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.HasClass("result--ad") {
			return true
		}
		link := sel.Find("a.result__a").First()
		href := resolveDDGLink(link.AttrOr("href", ""))
		if href == "" {
			return true
		}
		title := strings.TrimSpace(link.Text())
		if title == "" {
			title = href
		}
		results = append(results, Result{
			Title: title,
			Href:  href,
			Body:  strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
		})
		return len(results) < req.Count
	})

	return &Response{
		Query:    req.Query,
		Provider: ProviderDDG,
		Count:    len(results),
		TookMs:   time.Since(start).Milliseconds(),
		Results:  results,
	}, nil
}

// resolveDDGLink unwraps the /l/?uddg= redirect the HTML endpoint uses.
func resolveDDGLink(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if strings.HasSuffix(parsed.Hostname(), "duckduckgo.com") {
		if target := parsed.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return raw
}

func ddgSafeSearchParam(level string) string {
	switch level {
	case "on":
		return "1"
	case "off":
		return "-2"
	default:
		return "-1"
	}
}
