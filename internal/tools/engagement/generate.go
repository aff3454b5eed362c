package engagement

import (
	"fmt"
	"strings"
)

type Options struct {
	Theme        string
	Phoneme      string
	InputMethods []string
	StressLevel  string
}

// complexityTag maps stress to narrative complexity; anything other than
// high or medium gets the rich variant.
func complexityTag(stressLevel string) string {
	switch stressLevel {
	case "high":
		return "simple"
	case "medium":
		return "moderate"
	default:
		return "rich"
	}
}

var complexityNarrative = map[string]string{
	"simple":   "One short scene, one task at a time, frequent resting points",
	"moderate": "A single storyline with a couple of gentle choices",
	"rich":     "A branching storyline with optional side discoveries",
}

func interactionBlock(method, phoneme string) ([]string, bool) {
	switch method {
	case "touch":
		return []string{
			fmt.Sprintf("Tap every object whose name carries '%s'", phoneme),
			fmt.Sprintf("Drag letter tiles to build words around '%s'", phoneme),
			"Swipe to turn story pages at your own pace",
			"Press and hold any word to hear it read aloud",
		}, true
	case "voice":
		return []string{
			fmt.Sprintf("Say the sound '%s' to open the next scene", phoneme),
			fmt.Sprintf("Read a word containing '%s' aloud to the companion character", phoneme),
			"Repeat after the narrator whenever you want a second model",
		}, true
	case "keyboard":
		return []string{
			fmt.Sprintf("Type the letter(s) for '%s' when the sound is spoken", phoneme),
			fmt.Sprintf("Complete words by filling in the missing '%s'", phoneme),
			"Arrow keys move through the story; no key combinations needed",
		}, true
	case "switch":
		return []string{
			fmt.Sprintf("Single-switch scanning highlights each word with '%s' in turn", phoneme),
			"One press selects; a second press confirms, with no time window",
			"Auto-advance is off by default and the scan speed is adjustable",
		}, true
	}
	return nil, false
}

var engagementStrategies = []string{
	"Progress is shown as a journey map, never a score",
	"Every session ends on a success the learner chose",
	"The companion character narrates mistakes as discoveries",
	"Returning learners are welcomed back, never reminded of absence",
}

var stressAdaptations = []string{
	"Shorten scenes and add a calm-breathing interlude between them",
	"Reduce on-screen elements to one focal point",
	"Offer an immediate no-penalty exit to a quiet activity",
}

// Generate assembles the themed activity text. The theme must be one of
// the declared tags; anything else is a domain-reported error string.
func Generate(opts Options, themes Themes) (string, bool) {
	theme, ok := themes[opts.Theme]
	if !ok {
		return "", false
	}

	complexity := complexityTag(opts.StressLevel)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Engagement Activity: %s (phoneme '%s')\n\n", titleCase(opts.Theme), opts.Phoneme)

	sb.WriteString("## Story\n")
	fmt.Fprintf(&sb, "- Setting: %s\n", theme.Setting)
	fmt.Fprintf(&sb, "- Character: %s\n", theme.Character)
	fmt.Fprintf(&sb, "- Goal: %s\n", fmt.Sprintf(theme.Motivation, opts.Phoneme))
	fmt.Fprintf(&sb, "- Tone: %s\n", theme.LanguageStyle)
	fmt.Fprintf(&sb, "- Complexity: %s (%s)\n", complexity, complexityNarrative[complexity])

	seen := make(map[string]bool)
	for _, method := range opts.InputMethods {
		if seen[method] {
			continue
		}
		seen[method] = true

		capabilities, ok := interactionBlock(method, opts.Phoneme)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n## Interactions: %s\n", method)
		for _, capability := range capabilities {
			fmt.Fprintf(&sb, "- %s\n", capability)
		}
	}

	sb.WriteString("\n## Engagement Strategies\n")
	for _, strategy := range engagementStrategies {
		fmt.Fprintf(&sb, "- %s\n", strategy)
	}

	if opts.StressLevel == "high" {
		sb.WriteString("\n## Stress Adaptations\n")
		for _, adaptation := range stressAdaptations {
			fmt.Fprintf(&sb, "- %s\n", adaptation)
		}
	}

	return sb.String(), true
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
