// Package answer derives an optional one-line direct answer from the
// effective query and the filtered search results. Every failure here is
// soft: the response simply omits the answer.
package answer

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gooblox/gooblox/pkg/query"
	"github.com/gooblox/gooblox/pkg/search"
)

// Encyclopedia is the soft lookup capability used for direct answers.
type Encyclopedia interface {
	Available() bool
	Lookup(ctx context.Context, phrase string) (string, error)
}

// Extractor evaluates an ordered list of rules; the first rule producing an
// answer wins and later rules never overwrite it.
type Extractor struct {
	enc   Encyclopedia
	rules []rule
}

type ruleInput struct {
	query   string
	intent  query.Classification
	results []search.Result
}

type rule struct {
	name string
	run  func(ctx context.Context, in ruleInput) string
}

func NewExtractor(enc Encyclopedia) *Extractor {
	e := &Extractor{enc: enc}
	e.rules = []rule{
		{"definition", e.definitionRule},
		{"population", e.populationRule},
		{"population-numeric", e.numericFallbackRule},
		{"generic", e.genericRule},
	}
	return e
}

// Extract runs the rule cascade. The empty string means no answer.
func (e *Extractor) Extract(ctx context.Context, effective string, results []search.Result) string {
	q := strings.ToLower(strings.TrimSpace(effective))
	in := ruleInput{query: q, intent: query.Classify(q), results: results}
	for _, r := range e.rules {
		if answer := r.run(ctx, in); answer != "" {
			zerolog.Ctx(ctx).Debug().Str("rule", r.name).Msg("Derived direct answer")
			return answer
		}
	}
	return ""
}

func (e *Extractor) definitionRule(ctx context.Context, in ruleInput) string {
	if in.intent.Intent != query.IntentDefinition {
		return ""
	}
	return e.lookup(ctx, in.intent.Topic)
}

func (e *Extractor) populationRule(ctx context.Context, in ruleInput) string {
	if in.intent.Intent != query.IntentPopulation {
		return ""
	}
	return e.lookup(ctx, in.intent.Topic+" population")
}

// numericFallbackRule mines the filtered snippets for a population figure
// when the encyclopedia had nothing. The subject comes from the population
// intent when there is one, otherwise from "population ..." phrasing in the
// query itself (tolerating common misspellings of the keyword).
func (e *Extractor) numericFallbackRule(_ context.Context, in ruleInput) string {
	subject := in.intent.Topic
	if in.intent.Intent != query.IntentPopulation {
		subject = fallbackSubject(in.query)
	}
	if subject == "" {
		return ""
	}
	return numericEstimate(subject, in.results)
}

func (e *Extractor) genericRule(ctx context.Context, in ruleInput) string {
	if n := len(strings.Fields(in.query)); n < 1 || n > 3 {
		return ""
	}
	return e.lookup(ctx, in.query)
}

func (e *Extractor) lookup(ctx context.Context, topic string) string {
	if e.enc == nil || !e.enc.Available() {
		return ""
	}
	summary, err := e.enc.Lookup(ctx, topic)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("topic", topic).Msg("Encyclopedia lookup failed")
		return ""
	}
	return summary
}
