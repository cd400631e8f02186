package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gooblox/gooblox/pkg/shared/httputil"
)

// ErrSearchFailed wraps any upstream provider failure. A single upstream
// failure is a single client-visible failure; nothing is retried.
var ErrSearchFailed = errors.New("search failed")

// Service walks the configured provider chain. It is built once at startup
// and is safe for concurrent use.
type Service struct {
	registry *Registry
	order    []string
}

// NewService builds the provider chain from config.
func NewService(cfg *Config) (*Service, error) {
	cfg = cfg.WithDefaults()
	registry := NewRegistry()
	if p, err := newDDGProvider(cfg); err != nil {
		return nil, err
	} else if p != nil {
		registry.Register(p)
	}
	if p, err := newDDGAPIProvider(cfg); err != nil {
		return nil, err
	} else if p != nil {
		registry.Register(p)
	}
	if p, err := newBraveProvider(cfg); err != nil {
		return nil, err
	} else if p != nil {
		registry.Register(p)
	}
	return &Service{registry: registry, order: buildOrder(cfg)}, nil
}

// Providers lists the registered provider names in sorted order.
func (s *Service) Providers() []string {
	return s.registry.Names()
}

// Search executes a search using the configured provider chain. Zero results
// is not an error; provider failures are wrapped in ErrSearchFailed.
func (s *Service) Search(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: missing query", ErrSearchFailed)
	}
	req = normalizeRequest(req)

	var lastErr error
	for _, name := range s.order {
		provider := s.registry.Get(name)
		if provider == nil {
			continue
		}
		resp, err := provider.Search(ctx, req)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("provider", name).Msg("Search provider failed")
			lastErr = err
			continue
		}
		if resp == nil {
			lastErr = fmt.Errorf("provider %s returned empty response", name)
			continue
		}
		if resp.Provider == "" {
			resp.Provider = name
		}
		if resp.Query == "" {
			resp.Query = req.Query
		}
		resp.Count = len(resp.Results)
		return resp, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchFailed, lastErr)
	}
	return nil, fmt.Errorf("%w: no search providers available", ErrSearchFailed)
}

func normalizeRequest(req Request) Request {
	if req.Count <= 0 {
		req.Count = DefaultSearchCount
	}
	if req.Count > MaxSearchCount {
		req.Count = MaxSearchCount
	}
	return req
}

func buildOrder(cfg *Config) []string {
	order := make([]string, 0, len(cfg.Fallbacks)+1)
	provider := strings.TrimSpace(cfg.Provider)
	if provider != "" && provider != "auto" {
		order = append(order, provider)
	}
	order = append(order, cfg.Fallbacks...)
	return dedupeOrder(order)
}

func dedupeOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	if len(result) == 0 {
		return append([]string{}, DefaultOrder...)
	}
	return result
}

func newProviderClient(cfg *Config, timeoutSecs int) (*http.Client, error) {
	return httputil.NewClient(cfg.ProxyURL, timeoutSecs)
}
