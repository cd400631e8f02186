package query

import (
	"testing"

	"github.com/gooblox/gooblox/pkg/search"
)

func TestFilterResultsDropsUnrelatedResults(t *testing.T) {
	results := []search.Result{
		{Title: "Tiger - Wikipedia", Href: "https://example.com/tiger", Body: "Wild tigers live in Asia."},
		{Title: "Cheap flights", Href: "https://example.com/flights", Body: "Book a flight today."},
		{Title: "Save the tigers", Href: "https://example.com/save", Body: "Conservation efforts for tigers."},
	}
	filtered := FilterResults("how many tigers are there", results)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 results after filtering, got %d", len(filtered))
	}
	if filtered[0].Href != results[0].Href || filtered[1].Href != results[2].Href {
		t.Fatalf("filtering must preserve provider order, got %+v", filtered)
	}
}

func TestFilterResultsRequiresAllSignificantTokens(t *testing.T) {
	results := []search.Result{
		{Title: "Snakes", Body: "About pythons in the wild."},
		{Title: "Python tutorials", Body: "Learn python programming step by step."},
	}
	filtered := FilterResults("python programming", results)
	if len(filtered) != 1 || filtered[0].Title != "Python tutorials" {
		t.Fatalf("expected only the result containing every token, got %+v", filtered)
	}
}

func TestFilterResultsWithoutSignificantTokensKeepsEverything(t *testing.T) {
	results := []search.Result{
		{Title: "Anything", Body: "at all"},
		{Title: "Something", Body: "else"},
	}
	if filtered := FilterResults("what is the", results); len(filtered) != len(results) {
		t.Fatalf("stop-word-only query must not filter, got %d results", len(filtered))
	}
}

func TestFilterResultsMatchesAcrossTitleAndBody(t *testing.T) {
	results := []search.Result{
		{Title: "Python news", Body: "The latest on programming."},
	}
	if filtered := FilterResults("python programming", results); len(filtered) != 1 {
		t.Fatalf("tokens split across title and body must still match")
	}
}
