// Package query holds the pure text stages of the search pipeline: spelling
// normalization, parameter resolution, intent classification and result
// filtering.
package query

import (
	"regexp"
	"strings"
)

// tokenPattern matches alphabetic runs (with an optional apostrophe-joined
// suffix) and digit runs. Everything else is a separator.
var tokenPattern = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?|[0-9]+`)

// Corrector provides the best correction for a lowercase word. It is a soft
// capability: implementations report availability and never fail.
type Corrector interface {
	Available() bool
	Correct(word string) string
}

// Effective is the query used for search and intent analysis after optional
// spelling correction, distinct from the input echoed back to the caller.
type Effective struct {
	Text      string
	Corrected bool
}

// Normalize corrects likely misspellings token by token. Queries containing
// any rune outside ASCII are left untouched, which protects non-Latin
// scripts from corruption. Tokens are rejoined with single spaces, so
// separator formatting is not preserved.
func Normalize(raw string, dict Corrector) Effective {
	if dict == nil || !dict.Available() || !isASCII(raw) {
		return Effective{Text: raw}
	}
	tokens := tokenPattern.FindAllString(raw, -1)
	if len(tokens) == 0 {
		return Effective{Text: raw}
	}
	corrected := make([]string, len(tokens))
	for i, token := range tokens {
		corrected[i] = correctToken(token, dict)
	}
	joined := strings.Join(corrected, " ")
	if strings.EqualFold(joined, raw) {
		return Effective{Text: raw}
	}
	return Effective{Text: joined, Corrected: true}
}

func correctToken(token string, dict Corrector) string {
	if token == "" || !isAlpha(token[0]) {
		return token
	}
	suggestion := dict.Correct(strings.ToLower(token))
	if suggestion == "" || strings.EqualFold(suggestion, token) {
		return token
	}
	return RestoreCase(suggestion, token)
}

// RestoreCase reapplies the original token's capitalization pattern to a
// corrected token: title case when the original started uppercase, lowercase
// otherwise.
func RestoreCase(corrected, original string) string {
	if corrected == "" || original == "" {
		return corrected
	}
	if original[0] >= 'A' && original[0] <= 'Z' {
		return strings.ToUpper(corrected[:1]) + corrected[1:]
	}
	return corrected
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
