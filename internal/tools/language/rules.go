package language

import (
	"fmt"

	"github.com/readbridge/readbridge-mcp/internal/scan"
)

// RuleSet is the trauma-informed language policy: phrases to avoid, phrases
// offered as replacements, and the principles behind both. Built once at
// startup and never mutated.
type RuleSet struct {
	Avoid      []string
	Encourage  []string
	Principles []string
}

func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Avoid: []string{
			"wrong",
			"fail",
			"failure",
			"bad",
			"stupid",
			"dumb",
			"lazy",
			"slow learner",
			"behind",
			"can't",
			"hopeless",
			"try again",
			"hurry",
		},
		Encourage: []string{
			"let's explore",
			"great effort",
			"not yet",
			"your way",
			"take your time",
			"you're growing",
			"let's practice together",
		},
		Principles: []string{
			"Avoid failure framing; learning is exploration, not a test",
			"Preserve learner agency through choice and invitation",
			"Favor positive reinforcement over correction",
			"Keep language predictable and calm",
			"Celebrate effort independently of outcome",
		},
	}
}

// Pressure words are scanned regardless of the configured rule set.
var pressureWords = []string{"must", "should", "have to", "need to", "required"}

// Static fallback offered whenever any issue is found; not derived from the
// matched phrases.
var encouragementAlternatives = []string{
	"Use invitational framing: \"Let's explore this together\"",
	"Replace failure words with growth words: \"not yet\" instead of \"wrong\"",
	"Offer choices so the learner keeps agency: \"Would you like to...\"",
	"Acknowledge effort regardless of outcome: \"You gave that a great try\"",
}

// Scan checks text against the avoid list and the fixed pressure-word set.
// Matching is caseless substring search over the folded text.
func Scan(text string, rules *RuleSet) scan.Result {
	folded := scan.Fold(text)

	var issues []string
	for _, phrase := range rules.Avoid {
		if scan.Contains(folded, phrase) {
			issues = append(issues, fmt.Sprintf("Contains potentially triggering word: '%s'", phrase))
		}
	}
	for _, word := range pressureWords {
		if scan.Contains(folded, word) {
			issues = append(issues, fmt.Sprintf("Contains pressure language: '%s'", word))
		}
	}

	var recommendations []string
	if len(issues) > 0 {
		recommendations = append(recommendations, encouragementAlternatives...)
	}

	return scan.NewResult(issues, recommendations)
}
