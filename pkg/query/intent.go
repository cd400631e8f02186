package query

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a query, determining which answer
// derivation applies.
type Intent int

const (
	IntentGeneric Intent = iota
	IntentDefinition
	IntentPopulation
)

// Classification pairs an intent with its extracted topic: the term to
// define, or the subject whose population is asked for.
type Classification struct {
	Intent Intent
	Topic  string
}

var (
	definitionPrefix = regexp.MustCompile(`^(?:what is|who is|define|meaning of)\s+(.+)$`)
	definitionSuffix = regexp.MustCompile(`^(.+)\s+definition$`)
)

// Trailing words stripped from population subjects, longest first.
var populationTrailers = []string{"are there", "exist", "are"}

// Classify derives the intent from the lowercased, trimmed effective query.
// Rules are checked in priority order; the first match wins.
func Classify(effective string) Classification {
	q := strings.ToLower(strings.TrimSpace(effective))
	if m := definitionPrefix.FindStringSubmatch(q); m != nil {
		return Classification{Intent: IntentDefinition, Topic: strings.TrimSpace(m[1])}
	}
	if m := definitionSuffix.FindStringSubmatch(q); m != nil {
		return Classification{Intent: IntentDefinition, Topic: strings.TrimSpace(m[1])}
	}
	if subject, ok := populationSubject(q); ok {
		return Classification{Intent: IntentPopulation, Topic: subject}
	}
	return Classification{Intent: IntentGeneric, Topic: q}
}

func populationSubject(q string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(q, "how many "):
		rest = strings.TrimPrefix(q, "how many ")
	case strings.HasPrefix(q, "population of "):
		rest = strings.TrimPrefix(q, "population of ")
	default:
		return "", false
	}
	rest = strings.TrimSpace(rest)
	for stripped := true; stripped; {
		stripped = false
		for _, trailer := range populationTrailers {
			if strings.HasSuffix(rest, " "+trailer) {
				rest = strings.TrimSpace(strings.TrimSuffix(rest, " "+trailer))
				stripped = true
			}
		}
	}
	return rest, rest != ""
}
