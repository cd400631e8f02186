package answer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gooblox/gooblox/pkg/search"
)

// estimatePattern matches numbers with optional thousands separators and an
// optional magnitude word.
var estimatePattern = regexp.MustCompile(`\d+(?:,\d{3})*(?:\.\d+)?(?:\s*(?:million|billion))?`)

// Misspellings folded into the canonical keyword before subject extraction.
var populationMisspellings = []string{"poplutation", "popluation", "popultation", "populaton"}

var subjectPrefixes = []string{"population of ", "population for ", "population in ", "population "}

// numericEstimate scans the filtered results in order for the first one
// mentioning the subject and takes the last magnitude-style number from its
// combined title and snippet.
func numericEstimate(subject string, results []search.Result) string {
	needle := strings.ToLower(subject)
	for _, result := range results {
		text := strings.ToLower(result.Title + " " + result.Body)
		if !strings.Contains(text, needle) {
			continue
		}
		matches := estimatePattern.FindAllString(text, -1)
		if len(matches) == 0 {
			return ""
		}
		return fmt.Sprintf("The estimated %s population is around %s.", subject, matches[len(matches)-1])
	}
	return ""
}

// fallbackSubject extracts a population subject from queries that lead with
// the keyword, like "population of india". Only a leading phrase counts:
// taking text from elsewhere in the query would turn question scaffolding
// ("what is the ...") into a subject.
func fallbackSubject(q string) string {
	for _, misspelling := range populationMisspellings {
		q = strings.ReplaceAll(q, misspelling, "population")
	}
	if !strings.Contains(q, "population") {
		return ""
	}
	for _, prefix := range subjectPrefixes {
		if strings.HasPrefix(q, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(q, prefix))
		}
	}
	return ""
}
