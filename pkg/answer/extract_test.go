package answer

import (
	"context"
	"errors"
	"testing"

	"github.com/gooblox/gooblox/pkg/search"
)

type fakeEncyclopedia struct {
	pages   map[string]string
	lookups []string
}

func (f *fakeEncyclopedia) Available() bool { return true }

func (f *fakeEncyclopedia) Lookup(_ context.Context, phrase string) (string, error) {
	f.lookups = append(f.lookups, phrase)
	if summary, ok := f.pages[phrase]; ok {
		return summary, nil
	}
	return "", errors.New("no matching page")
}

func TestDefinitionRule(t *testing.T) {
	summary := "Photosynthesis is a process used by plants to convert light into chemical energy."
	enc := &fakeEncyclopedia{pages: map[string]string{"photosynthesis": summary}}
	extractor := NewExtractor(enc)

	got := extractor.Extract(context.Background(), "what is photosynthesis", nil)
	if got != summary {
		t.Fatalf("expected the summary verbatim, got %q", got)
	}
}

func TestPopulationRuleUsesEncyclopedia(t *testing.T) {
	summary := "The global tiger population is estimated at 5,500 individuals."
	enc := &fakeEncyclopedia{pages: map[string]string{"tigers population": summary}}
	extractor := NewExtractor(enc)

	got := extractor.Extract(context.Background(), "how many tigers are there", nil)
	if got != summary {
		t.Fatalf("expected encyclopedia answer, got %q", got)
	}
	if len(enc.lookups) != 1 || enc.lookups[0] != "tigers population" {
		t.Fatalf("expected a single lookup for %q, got %v", "tigers population", enc.lookups)
	}
}

func TestPopulationNumericFallback(t *testing.T) {
	results := []search.Result{
		{Title: "Tiger - Wikipedia", Body: "Today approximately 5,574 tigers remain in the wild."},
	}
	extractor := NewExtractor(nil)

	got := extractor.Extract(context.Background(), "how many tigers are there", results)
	want := "The estimated tigers population is around 5,574."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNumericFallbackSkipsResultsWithoutSubject(t *testing.T) {
	results := []search.Result{
		{Title: "Unrelated", Body: "Numbers like 12,345 everywhere."},
		{Title: "Tiger count", Body: "Roughly 3,900 tigers left."},
	}
	extractor := NewExtractor(nil)

	got := extractor.Extract(context.Background(), "how many tigers are there", results)
	want := "The estimated tigers population is around 3,900."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMisspelledPopulationFallback(t *testing.T) {
	results := []search.Result{
		{Title: "India", Body: "India's population grew to about 1.4 billion."},
	}
	extractor := NewExtractor(nil)

	got := extractor.Extract(context.Background(), "popluation of india", results)
	want := "The estimated india population is around 1.4 billion."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestQuestionPhrasingYieldsNoNumericAnswer(t *testing.T) {
	results := []search.Result{
		{Title: "What is the population of India? - Worldometer", Body: "India's population is about 1.4 billion people."},
	}
	extractor := NewExtractor(nil)

	if got := extractor.Extract(context.Background(), "what is the population of india", results); got != "" {
		t.Fatalf("question scaffolding must not become a subject, got %q", got)
	}
}

func TestGenericShortQuery(t *testing.T) {
	summary := "Go is a statically typed, compiled programming language."
	enc := &fakeEncyclopedia{pages: map[string]string{"golang": summary}}
	extractor := NewExtractor(enc)

	if got := extractor.Extract(context.Background(), "golang", nil); got != summary {
		t.Fatalf("expected summary for short query, got %q", got)
	}
	if got := extractor.Extract(context.Background(), "a very long query indeed", nil); got != "" {
		t.Fatalf("queries over three tokens must not trigger the generic rule, got %q", got)
	}
}

func TestEncyclopediaFailuresAreSwallowed(t *testing.T) {
	enc := &fakeEncyclopedia{pages: map[string]string{}}
	extractor := NewExtractor(enc)

	if got := extractor.Extract(context.Background(), "what is flurbitude", nil); got != "" {
		t.Fatalf("lookup failure must yield no answer, got %q", got)
	}
}

func TestNoAnswerWithoutEncyclopediaOrNumbers(t *testing.T) {
	extractor := NewExtractor(nil)
	results := []search.Result{{Title: "Go", Body: "A language"}}
	if got := extractor.Extract(context.Background(), "golang tutorial here now", results); got != "" {
		t.Fatalf("expected no answer, got %q", got)
	}
}

func TestFallbackSubject(t *testing.T) {
	cases := []struct {
		query, want string
	}{
		{"population of india", "india"},
		{"population for brazil", "brazil"},
		{"population in kenya", "kenya"},
		{"popultation of kenya", "kenya"},
		{"tokyo population", ""},
		{"what is the population of india", ""},
		{"population", ""},
		{"weather today", ""},
	}
	for _, tc := range cases {
		if got := fallbackSubject(tc.query); got != tc.want {
			t.Errorf("fallbackSubject(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}
