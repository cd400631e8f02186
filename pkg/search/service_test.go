package search

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name    string
	resp    *Response
	err     error
	calls   int
	lastReq Request
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Search(_ context.Context, req Request) (*Response, error) {
	p.calls++
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	return p.resp, nil
}

func newStubService(order []string, providers ...*stubProvider) *Service {
	registry := NewRegistry()
	for _, p := range providers {
		registry.Register(p)
	}
	return &Service{registry: registry, order: order}
}

func TestSearchUsesFirstHealthyProvider(t *testing.T) {
	broken := &stubProvider{name: "a", err: errors.New("quota exceeded")}
	healthy := &stubProvider{name: "b", resp: &Response{Results: []Result{{Title: "t", Href: "https://example.com"}}}}
	svc := newStubService([]string{"a", "b"}, broken, healthy)

	resp, err := svc.Search(context.Background(), Request{Query: "q"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Provider != "b" || resp.Count != 1 {
		t.Fatalf("expected fallback provider response, got %+v", resp)
	}
	if broken.calls != 1 || healthy.calls != 1 {
		t.Fatalf("expected each provider tried once, got %d/%d", broken.calls, healthy.calls)
	}
}

func TestSearchWrapsProviderFailure(t *testing.T) {
	svc := newStubService([]string{"a"}, &stubProvider{name: "a", err: errors.New("upstream exploded")})

	_, err := svc.Search(context.Background(), Request{Query: "q"})
	if !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed, got %v", err)
	}
}

func TestSearchEmptyResultSetIsNotAnError(t *testing.T) {
	svc := newStubService([]string{"a"}, &stubProvider{name: "a", resp: &Response{}})

	resp, err := svc.Search(context.Background(), Request{Query: "q"})
	if err != nil {
		t.Fatalf("zero results must not be an error, got %v", err)
	}
	if resp.Count != 0 || len(resp.Results) != 0 {
		t.Fatalf("expected empty result set, got %+v", resp)
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := newStubService([]string{"a"}, &stubProvider{name: "a", resp: &Response{}})
	if _, err := svc.Search(context.Background(), Request{Query: "   "}); !errors.Is(err, ErrSearchFailed) {
		t.Fatalf("expected ErrSearchFailed for empty query, got %v", err)
	}
}

func TestSearchClampsRequestedCount(t *testing.T) {
	provider := &stubProvider{name: "a", resp: &Response{}}
	svc := newStubService([]string{"a"}, provider)

	if _, err := svc.Search(context.Background(), Request{Query: "q", Count: 500}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.lastReq.Count != MaxSearchCount {
		t.Fatalf("expected count clamped to %d, got %d", MaxSearchCount, provider.lastReq.Count)
	}
}

func TestBuildOrder(t *testing.T) {
	cfg := (&Config{Provider: "brave", Fallbacks: []string{"ddg", "brave", " ", "ddg"}}).WithDefaults()
	got := buildOrder(cfg)
	want := []string{"brave", "ddg"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNewServiceDefaults(t *testing.T) {
	svc, err := NewService(&Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(svc.order) != 1 || svc.order[0] != ProviderDDG {
		t.Fatalf("expected default order [ddg], got %v", svc.order)
	}
	if svc.registry.Get(ProviderBrave) != nil {
		t.Fatalf("brave must not register without an API key")
	}
	names := svc.Providers()
	if len(names) != 2 || names[0] != ProviderDDG || names[1] != ProviderDDGAPI {
		t.Fatalf("expected sorted provider names [ddg ddg-api], got %v", names)
	}

	svc, err = NewService(&Config{Brave: BraveConfig{APIKey: "key"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.registry.Get(ProviderBrave) == nil {
		t.Fatalf("brave must register once an API key is configured")
	}
}
