package ui

// Palette is a low-stimulation color scheme keyed by intent. Every intent
// in the tool's enum resolves; anything else falls back to primary.
type Palette struct {
	Name       string
	Background string
	Text       string
	Accent     string
}

type Palettes map[string]Palette

func DefaultPalettes() Palettes {
	return Palettes{
		"primary": {
			Name:       "warm cream with soft blue",
			Background: "#F5F1E8",
			Text:       "#2D2A26",
			Accent:     "#4A7FB5",
		},
		"success": {
			Name:       "gentle green",
			Background: "#EFF5EC",
			Text:       "#2D2A26",
			Accent:     "#5B9A68",
		},
		"gentle": {
			Name:       "muted lavender",
			Background: "#F7F3F9",
			Text:       "#2D2A26",
			Accent:     "#9B7FB5",
		},
		"focus": {
			Name:       "low-glare amber",
			Background: "#FDF8EC",
			Text:       "#2D2A26",
			Accent:     "#C9A050",
		},
	}
}

func (p Palettes) Resolve(intent string) Palette {
	if palette, ok := p[intent]; ok {
		return palette
	}
	return p["primary"]
}

var componentGuidance = map[string][]string{
	"button": {
		"Single clear action label, verb first",
		"Generous padding so the 44px minimum target is comfortably exceeded",
		"No double-click or long-press requirements",
	},
	"card": {
		"One concept per card with a short heading",
		"Line length capped near 60 characters",
		"Consistent position for any action the card offers",
	},
	"text_display": {
		"Dyslexia-friendly typeface with 1.5x line spacing",
		"Left-aligned ragged-right text, never justified",
		"Letter spacing slightly widened (0.05em)",
	},
	"input": {
		"Label always visible, never placeholder-only",
		"Accepts answers without a timeout",
		"Gentle inline hint instead of red error flashes",
	},
	"navigation": {
		"At most five destinations visible at once",
		"Current location always highlighted",
		"Back always available and always safe",
	},
}

func ComponentTypes() []string {
	return []string{"button", "card", "input", "navigation", "text_display"}
}
