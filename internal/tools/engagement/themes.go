package engagement

// Theme describes the narrative frame of an engagement activity.
type Theme struct {
	Setting       string
	Character     string
	Motivation    string
	LanguageStyle string
}

type Themes map[string]Theme

func DefaultThemes() Themes {
	return Themes{
		"dragons": {
			Setting:       "a mountain village where friendly dragons deliver the mail",
			Character:     "Ember, a young dragon learning to read addresses",
			Motivation:    "help Ember sort letters by the sound '%s' so every package finds its home",
			LanguageStyle: "warm and adventurous",
		},
		"space": {
			Setting:       "a small research station orbiting a candy-colored nebula",
			Character:     "Nova, a curious astronaut cataloguing new stars",
			Motivation:    "name the stars that carry the sound '%s' in Nova's star log",
			LanguageStyle: "calm and wondering",
		},
		"magic": {
			Setting:       "a library where spells are written in glowing letters",
			Character:     "Sage, an apprentice keeper of the spell books",
			Motivation:    "restore faded spells by finding the sound '%s' in their words",
			LanguageStyle: "gentle and mysterious",
		},
		"animals": {
			Setting:       "a wildlife sanctuary at feeding time",
			Character:     "Pip, a ranger who knows every animal by name",
			Motivation:    "match animals to their pens by the sound '%s' in their names",
			LanguageStyle: "friendly and playful",
		},
		"adventure": {
			Setting:       "a winding trail with map markers at every fork",
			Character:     "Scout, a guide mapping the trail for others",
			Motivation:    "mark the trail signs containing the sound '%s' so no traveler gets lost",
			LanguageStyle: "encouraging and steady",
		},
		"mystery": {
			Setting:       "a cozy detective office above a bakery",
			Character:     "Marlow, a detective who solves puzzles with patience",
			Motivation:    "follow clues hidden in words with the sound '%s' to solve the case",
			LanguageStyle: "curious and unhurried",
		},
	}
}

func ThemeNames() []string {
	return []string{"dragons", "space", "magic", "animals", "adventure", "mystery"}
}
