package practice

import (
	"fmt"

	"github.com/readbridge/readbridge-mcp/internal/tools/curriculum"
)

// Activity is a multisensory practice plan for a single phoneme. Sections
// follow the caller's modality order; the assessment block is always
// present.
type Activity struct {
	Phoneme    string
	Level      *curriculum.Level
	Sections   []Section
	Assessment Assessment
}

type Section struct {
	Modality   string
	Components []Component
}

type Component struct {
	Name        string
	Description string
}

type Assessment struct {
	MasteryIndicators []string
	PracticeStructure string
}

const practiceStructure = "1. Review previous sounds, 2. Introduce new sound, 3. Guided practice, 4. Independent practice, 5. Celebrate effort"

func buildSection(modality, phoneme string) (Section, bool) {
	switch modality {
	case "visual":
		return Section{Modality: "visual", Components: []Component{
			{"letter_display", fmt.Sprintf("Show '%s' in large dyslexia-friendly type with consistent letter shapes", phoneme)},
			{"color_coding", fmt.Sprintf("Highlight '%s' in a steady accent color wherever it appears in words", phoneme)},
			{"picture_anchor", fmt.Sprintf("Pair '%s' with one memorable anchor image used every session", phoneme)},
		}}, true
	case "auditory":
		return Section{Modality: "auditory", Components: []Component{
			{"sound_model", fmt.Sprintf("Model the pure sound of '%s' slowly, without an added vowel", phoneme)},
			{"echo_practice", fmt.Sprintf("Learner echoes '%s' three times at their own pace", phoneme)},
			{"sound_hunt", fmt.Sprintf("Listen for '%s' at the start, middle, and end of spoken words", phoneme)},
		}}, true
	case "kinesthetic":
		return Section{Modality: "kinesthetic", Components: []Component{
			{"sky_writing", fmt.Sprintf("Write '%s' in the air with the whole arm while saying the sound", phoneme)},
			{"body_motion", fmt.Sprintf("Attach one repeatable movement to '%s' and perform it on each repetition", phoneme)},
			{"letter_walk", fmt.Sprintf("Walk the shape of '%s' taped on the floor", phoneme)},
		}}, true
	case "tactile":
		return Section{Modality: "tactile", Components: []Component{
			{"sand_tracing", fmt.Sprintf("Trace '%s' in a sand tray while saying the sound", phoneme)},
			{"textured_letters", fmt.Sprintf("Finger-trace a textured cutout of '%s' with eyes open, then closed", phoneme)},
			{"clay_forming", fmt.Sprintf("Form '%s' out of clay and trace the finished shape", phoneme)},
		}}, true
	}
	return Section{}, false
}

// Build assembles the activity. Unrecognized modality names are skipped;
// duplicates keep only the first occurrence.
func Build(phoneme string, modalities []string, level *curriculum.Level) Activity {
	activity := Activity{
		Phoneme: phoneme,
		Level:   level,
		Assessment: Assessment{
			MasteryIndicators: []string{
				fmt.Sprintf("Produces the sound of '%s' accurately when shown the letter", phoneme),
				fmt.Sprintf("Identifies '%s' within spoken words", phoneme),
				fmt.Sprintf("Writes '%s' from the spoken sound alone", phoneme),
			},
			PracticeStructure: practiceStructure,
		},
	}

	seen := make(map[string]bool)
	for _, modality := range modalities {
		if seen[modality] {
			continue
		}
		seen[modality] = true
		if section, ok := buildSection(modality, phoneme); ok {
			activity.Sections = append(activity.Sections, section)
		}
	}

	return activity
}
