package engagement

import (
	"fmt"

	"github.com/readbridge/readbridge-mcp/internal/scan"
)

// Rule families evaluated in fixed order. The broad red-flag list comes
// first; the narrower families can overlap it (e.g. "timer" also matches
// the time-pressure family via "time") and each match is reported on its
// own.
var redFlags = []string{
	"score", "points", "leaderboard", "competition", "timer", "deadline",
	"fail", "lose", "wrong", "mistake", "try again", "beat", "win",
	"achievement", "badge", "unlock", "earn", "reward points",
}

var extrinsicRewards = []string{"reward", "prize"}

var comparisons = []string{"compare", "better than"}

var timePressure = []string{"time", "speed", "fast"}

var proactiveSuggestions = []string{
	"Add celebration moments tied to effort, not completion",
	"Offer the learner choices in pacing and difficulty",
	"Use a companion character that models self-compassion when things are hard",
}

// ReviewMechanic scans an engagement mechanic description for
// psychologically unsafe patterns. A clean mechanic gets the proactive
// suggestions instead of remediation advice.
func ReviewMechanic(mechanic, context string) scan.Result {
	folded := scan.Fold(mechanic + " " + context)

	var issues []string
	var recommendations []string

	for _, flag := range redFlags {
		if scan.Contains(folded, flag) {
			issues = append(issues, fmt.Sprintf("Red flag: '%s' suggests competitive or failure-based pressure", flag))
		}
	}
	if len(issues) > 0 {
		recommendations = append(recommendations, "Replace competitive and failure mechanics with exploration and discovery")
	}

	if matched, ok := firstMatch(folded, extrinsicRewards); ok {
		issues = append(issues, fmt.Sprintf("Extrinsic reward mechanic detected ('%s')", matched))
		recommendations = append(recommendations, "Favor intrinsic motivation: curiosity, story progress, helping a character")
	}

	if matched, ok := firstMatch(folded, comparisons); ok {
		issues = append(issues, fmt.Sprintf("Social comparison mechanic detected ('%s')", matched))
		recommendations = append(recommendations, "Compare learners only against their own past progress")
	}

	if matched, ok := firstMatch(folded, timePressure); ok {
		issues = append(issues, fmt.Sprintf("Time pressure mechanic detected ('%s')", matched))
		recommendations = append(recommendations, "Remove time pressure; let the learner set the pace")
	}

	if len(issues) == 0 {
		recommendations = append(recommendations, proactiveSuggestions...)
	}

	return scan.NewResult(issues, recommendations)
}

func firstMatch(folded string, phrases []string) (string, bool) {
	for _, phrase := range phrases {
		if scan.Contains(folded, phrase) {
			return phrase, true
		}
	}
	return "", false
}
