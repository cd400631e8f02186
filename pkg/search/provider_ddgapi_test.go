package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDDGAPIProviderFlattensTopics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("expected format=json, got %q", r.URL.Query().Get("format"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Heading": "Python",
			"AbstractText": "Python is a programming language.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Python",
			"RelatedTopics": [
				{"Text": "CPython - The reference implementation.", "FirstURL": "https://example.com/cpython"},
				{"Topics": [
					{"Text": "PyPy - An alternative implementation.", "FirstURL": "https://example.com/pypy"}
				]},
				{"Text": "No URL here"}
			]
		}`))
	}))
	defer server.Close()

	cfg := (&Config{DDGAPI: DDGAPIConfig{BaseURL: server.URL, TimeoutSecs: 5}}).WithDefaults()
	provider, err := newDDGAPIProvider(cfg)
	if err != nil {
		t.Fatalf("building provider: %v", err)
	}

	resp, err := provider.Search(context.Background(), Request{
		Query:     "python",
		Count:     5,
		Region:    "us-en",
		TimeLimit: "w",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Results) != 3 {
		t.Fatalf("expected abstract plus 2 topics, got %d results", len(resp.Results))
	}
	if resp.Results[0].Title != "Python" || resp.Results[0].Body != "Python is a programming language." {
		t.Errorf("unexpected abstract result %+v", resp.Results[0])
	}
	if resp.Results[1].Title != "CPython" || resp.Results[1].Body != "The reference implementation." {
		t.Errorf("unexpected topic result %+v", resp.Results[1])
	}
	if resp.Results[2].Href != "https://example.com/pypy" {
		t.Errorf("nested topics must be flattened, got %+v", resp.Results[2])
	}

	if len(resp.Ignored) != 2 {
		t.Fatalf("expected region and timelimit reported as ignored, got %v", resp.Ignored)
	}
}

func TestDDGAPIProviderCapsResultCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"RelatedTopics": [
			{"Text": "A - one", "FirstURL": "https://example.com/a"},
			{"Text": "B - two", "FirstURL": "https://example.com/b"},
			{"Text": "C - three", "FirstURL": "https://example.com/c"}
		]}`))
	}))
	defer server.Close()

	cfg := (&Config{DDGAPI: DDGAPIConfig{BaseURL: server.URL, TimeoutSecs: 5}}).WithDefaults()
	provider, err := newDDGAPIProvider(cfg)
	if err != nil {
		t.Fatalf("building provider: %v", err)
	}

	resp, err := provider.Search(context.Background(), Request{Query: "abc", Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected result count capped at 2, got %d", len(resp.Results))
	}
}
