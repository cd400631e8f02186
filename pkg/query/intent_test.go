package query

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		query string
		want  Classification
	}{
		{"what is photosynthesis", Classification{IntentDefinition, "photosynthesis"}},
		{"Who is Ada Lovelace", Classification{IntentDefinition, "ada lovelace"}},
		{"define entropy", Classification{IntentDefinition, "entropy"}},
		{"meaning of life", Classification{IntentDefinition, "life"}},
		{"gravity definition", Classification{IntentDefinition, "gravity"}},
		{"how many tigers are there", Classification{IntentPopulation, "tigers"}},
		{"how many pandas exist", Classification{IntentPopulation, "pandas"}},
		{"how many wolves are", Classification{IntentPopulation, "wolves"}},
		{"population of france", Classification{IntentPopulation, "france"}},
		{"golang generics tutorial", Classification{IntentGeneric, "golang generics tutorial"}},
		{"how many", Classification{IntentGeneric, "how many"}},
	}
	for _, tc := range cases {
		got := Classify(tc.query)
		if got != tc.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tc.query, got, tc.want)
		}
	}
}
