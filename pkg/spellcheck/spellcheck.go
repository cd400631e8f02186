// Package spellcheck provides a best-effort spelling dictionary trained from
// a word list. It is a soft dependency: when no word list is configured the
// checker reports itself unavailable and callers skip correction.
package spellcheck

import (
	"os"
	"strings"

	"github.com/sajari/fuzzy"
)

type Config struct {
	// WordList is a path to a plain-text word list or corpus. Empty means
	// the capability is disabled.
	WordList string `yaml:"word_list"`
	// Depth is the edit distance explored when suggesting corrections.
	Depth int `yaml:"depth"`
}

// Checker wraps a trained fuzzy model. The model is read-only after Load and
// safe for concurrent use. A nil Checker is valid and always unavailable.
type Checker struct {
	model *fuzzy.Model
}

// Load trains a checker from the configured word list. A missing path yields
// (nil, nil): not configured is not an error.
func Load(cfg Config) (*Checker, error) {
	path := strings.TrimSpace(cfg.WordList)
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	depth := cfg.Depth
	if depth <= 0 {
		depth = 2
	}
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(depth)
	model.Train(strings.Fields(string(data)))
	return &Checker{model: model}, nil
}

func (c *Checker) Available() bool {
	return c != nil && c.model != nil
}

// Correct returns the best correction for a lowercase word, or the word
// itself when no better candidate is known.
func (c *Checker) Correct(word string) string {
	if !c.Available() {
		return word
	}
	if suggestion := c.model.SpellCheck(word); suggestion != "" {
		return suggestion
	}
	return word
}
