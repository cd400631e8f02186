package query

import (
	"strings"

	"github.com/gooblox/gooblox/pkg/search"
)

// Function words and question scaffolding that carry no lexical signal.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"who": {}, "what": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"many": {}, "much": {}, "there": {}, "that": {}, "this": {},
	"with": {}, "from": {}, "into": {}, "does": {}, "did": {},
	"can": {}, "will": {}, "its": {}, "his": {}, "her": {},
}

// FilterResults drops results whose title and snippet share no lexical
// overlap with the query. Every significant query token must appear as a
// case-insensitive substring; queries with no significant tokens filter
// nothing. Provider ordering is preserved.
func FilterResults(effective string, results []search.Result) []search.Result {
	terms := significantTokens(effective)
	if len(terms) == 0 {
		return results
	}
	filtered := make([]search.Result, 0, len(results))
	for _, result := range results {
		text := strings.ToLower(result.Title + " " + result.Body)
		if containsAll(text, terms) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

func containsAll(text string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

func significantTokens(effective string) []string {
	var out []string
	for _, token := range tokenPattern.FindAllString(strings.ToLower(effective), -1) {
		if len(token) < 3 {
			continue
		}
		if _, skip := stopWords[token]; skip {
			continue
		}
		out = append(out, token)
	}
	return out
}
