package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/tools"
	"github.com/readbridge/readbridge-mcp/internal/tools/curriculum"
)

func GetTools(seq *curriculum.Sequence) []tools.Tool {
	return []tools.Tool{
		NewGenerateActivityTool(seq),
	}
}

type GenerateActivityTool struct {
	seq *curriculum.Sequence
}

func NewGenerateActivityTool(seq *curriculum.Sequence) *GenerateActivityTool {
	return &GenerateActivityTool{seq: seq}
}

func (t *GenerateActivityTool) Name() string {
	return "generate_phoneme_activity"
}

func (t *GenerateActivityTool) Description() string {
	return `Generate a multisensory practice activity for a phoneme.

Produces one section per requested modality (visual, auditory, kinesthetic,
tactile) plus a fixed assessment block with mastery indicators and the
five-stage OG practice structure.`
}

func (t *GenerateActivityTool) Title() string {
	return "Generate Phoneme Activity"
}

func (t *GenerateActivityTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GenerateActivityTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"phoneme": {
				"type": "string",
				"description": "Target phoneme, e.g. 'sh'"
			},
			"modalities": {
				"type": "array",
				"items": {
					"type": "string",
					"enum": ["visual", "auditory", "kinesthetic", "tactile"]
				},
				"description": "Modalities to include"
			},
			"level": {
				"type": "integer",
				"description": "Curriculum level for context (default 1)"
			}
		},
		"required": ["phoneme", "modalities"]
	}`)
}

func (t *GenerateActivityTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		Phoneme    string   `json:"phoneme"`
		Modalities []string `json:"modalities"`
		Level      int      `json:"level"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.Level == 0 {
		req.Level = 1
	}
	level, _ := t.seq.Lookup(req.Level)

	activity := Build(req.Phoneme, req.Modalities, level)
	return render(activity), nil
}

func render(a Activity) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Phoneme Practice Activity: '%s'\n", a.Phoneme)
	if a.Level != nil {
		fmt.Fprintf(&sb, "\nCurriculum context: Level %d (%s)\n", a.Level.Level, a.Level.Focus)
	}

	for _, section := range a.Sections {
		fmt.Fprintf(&sb, "\n## %s\n", titleCase(section.Modality))
		for _, c := range section.Components {
			fmt.Fprintf(&sb, "- %s: %s\n", c.Name, c.Description)
		}
	}

	sb.WriteString("\n## Assessment\n")
	sb.WriteString("Mastery indicators:\n")
	for _, indicator := range a.Assessment.MasteryIndicators {
		fmt.Fprintf(&sb, "- %s\n", indicator)
	}
	fmt.Fprintf(&sb, "\nPractice structure: %s\n", a.Assessment.PracticeStructure)

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
