package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/tools"
)

func GetTools(seq *Sequence) []tools.Tool {
	return []tools.Tool{
		NewValidateActivityTool(seq),
	}
}

type ValidateActivityTool struct {
	seq *Sequence
}

func NewValidateActivityTool(seq *Sequence) *ValidateActivityTool {
	return &ValidateActivityTool{seq: seq}
}

func (t *ValidateActivityTool) Name() string {
	return "validate_og_activity"
}

func (t *ValidateActivityTool) Description() string {
	return `Validate a learning activity against Orton-Gillingham principles.

Checks that the activity is multisensory (engages at least two of visual,
auditory, kinesthetic, tactile) and targets the phonemes of the given
curriculum level. The activity may be any JSON structure; it is scanned as
flattened text.`
}

func (t *ValidateActivityTool) Title() string {
	return "Validate OG Activity"
}

func (t *ValidateActivityTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ValidateActivityTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"activity": {
				"type": "object",
				"description": "Activity description (free-form structure)"
			},
			"targetLevel": {
				"type": "integer",
				"description": "Curriculum level the activity targets (1-based)"
			}
		},
		"required": ["activity", "targetLevel"]
	}`)
}

func (t *ValidateActivityTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		Activity    any `json:"activity"`
		TargetLevel int `json:"targetLevel"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	level, ok := t.seq.Lookup(req.TargetLevel)
	if !ok {
		return fmt.Sprintf("Error: Invalid OG level %d. Valid levels are 1-%d.",
			req.TargetLevel, t.seq.Count()), nil
	}

	verdict := ValidateActivity(req.Activity, level)
	return renderVerdict(verdict, level), nil
}

func renderVerdict(v Verdict, level *Level) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# OG Activity Validation (Level %d: %s)\n\n", level.Level, level.Focus)

	if v.MeetsLevel {
		sb.WriteString("Status: MEETS LEVEL REQUIREMENTS\n\n")
	} else {
		sb.WriteString("Status: DOES NOT MEET LEVEL REQUIREMENTS\n\n")
	}

	sb.WriteString("## Criteria\n")
	fmt.Fprintf(&sb, "- Multisensory (2+ modalities): %s (%d of %d modalities present)\n",
		passFail(v.Multisensory), v.ModalityCount, len(modalityNames))
	fmt.Fprintf(&sb, "- Phoneme focus for level %d: %s\n", level.Level, passFail(v.PhonemeFocus))
	sb.WriteString("- Sequential progression: pass (not independently verified)\n")

	if v.PhonemeFocus {
		fmt.Fprintf(&sb, "\nMatched phonemes: %s\n", strings.Join(v.MatchedPhonemes, ", "))
	}

	if !v.MeetsLevel {
		sb.WriteString("\n## Issues\n")
		if !v.Multisensory {
			sb.WriteString("- Activity engages fewer than two modalities\n")
		}
		if !v.PhonemeFocus {
			fmt.Fprintf(&sb, "- Activity does not target any level %d phoneme (%s)\n",
				level.Level, strings.Join(level.Phonemes, ", "))
		}

		sb.WriteString("\n## Recommendations\n")
		if !v.Multisensory {
			sb.WriteString("- Pair the core task with a second modality, e.g. tracing letters (tactile) while saying the sound (auditory)\n")
		}
		if !v.PhonemeFocus {
			fmt.Fprintf(&sb, "- Build the activity around the level's phonemes: %s\n",
				strings.Join(level.Phonemes, ", "))
		}
	}

	fmt.Fprintf(&sb, "\nMastery requirement for this level: %d%%\n", level.Mastery)
	return sb.String()
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
