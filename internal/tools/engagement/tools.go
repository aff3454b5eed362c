package engagement

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/scan"
	"github.com/readbridge/readbridge-mcp/internal/tools"
)

func GetTools(themes Themes) []tools.Tool {
	return []tools.Tool{
		NewValidateSafetyTool(),
		NewGenerateActivityTool(themes),
	}
}

type ValidateSafetyTool struct{}

func NewValidateSafetyTool() *ValidateSafetyTool {
	return &ValidateSafetyTool{}
}

func (t *ValidateSafetyTool) Name() string {
	return "validate_engagement_safety"
}

func (t *ValidateSafetyTool) Description() string {
	return `Check an engagement mechanic for psychological safety.

Flags competitive, failure-based, extrinsic-reward, comparison, and
time-pressure patterns. A clean mechanic receives proactive positive-design
suggestions instead.`
}

func (t *ValidateSafetyTool) Title() string {
	return "Validate Engagement Safety"
}

func (t *ValidateSafetyTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ValidateSafetyTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"mechanic": {
				"type": "string",
				"description": "Description of the engagement mechanic"
			},
			"context": {
				"type": "string",
				"description": "Optional surrounding context (default: empty)"
			}
		},
		"required": ["mechanic"]
	}`)
}

func (t *ValidateSafetyTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		Mechanic string `json:"mechanic"`
		Context  string `json:"context"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	result := ReviewMechanic(req.Mechanic, req.Context)
	return renderSafety(result), nil
}

func renderSafety(result scan.Result) string {
	var sb strings.Builder

	sb.WriteString("# Engagement Safety Review\n\n")
	if result.Compliant {
		sb.WriteString("Status: SAFE\n\n")
		sb.WriteString("No unsafe mechanics detected.\n")
		sb.WriteString("\n## Suggestions\n")
	} else {
		sb.WriteString("Status: UNSAFE PATTERNS FOUND\n\n")
		sb.WriteString("## Issues\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "- %s\n", issue)
		}
		sb.WriteString("\n## Recommendations\n")
	}

	for _, rec := range result.Recommendations {
		fmt.Fprintf(&sb, "- %s\n", rec)
	}

	return sb.String()
}

type GenerateActivityTool struct {
	themes Themes
}

func NewGenerateActivityTool(themes Themes) *GenerateActivityTool {
	return &GenerateActivityTool{themes: themes}
}

func (t *GenerateActivityTool) Name() string {
	return "generate_engagement_activity"
}

func (t *GenerateActivityTool) Description() string {
	return `Generate a themed, psychologically safe engagement activity.

Builds a story block from the theme, one interaction block per input
method, fixed engagement strategies, and stress adaptations when the
learner's stress level is high.`
}

func (t *GenerateActivityTool) Title() string {
	return "Generate Engagement Activity"
}

func (t *GenerateActivityTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GenerateActivityTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"theme": {
				"type": "string",
				"enum": ["dragons", "space", "magic", "animals", "adventure", "mystery"],
				"description": "Narrative theme"
			},
			"phoneme": {
				"type": "string",
				"description": "Target phoneme woven into the story"
			},
			"inputMethods": {
				"type": "array",
				"items": {
					"type": "string",
					"enum": ["touch", "voice", "keyboard", "switch"]
				},
				"description": "Input methods to design interactions for"
			},
			"stressLevel": {
				"type": "string",
				"enum": ["low", "medium", "high"],
				"description": "Learner stress level (default: low)"
			}
		},
		"required": ["theme", "phoneme", "inputMethods"]
	}`)
}

func (t *GenerateActivityTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		Theme        string   `json:"theme"`
		Phoneme      string   `json:"phoneme"`
		InputMethods []string `json:"inputMethods"`
		StressLevel  string   `json:"stressLevel"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.StressLevel == "" {
		req.StressLevel = "low"
	}

	text, ok := Generate(Options{
		Theme:        req.Theme,
		Phoneme:      req.Phoneme,
		InputMethods: req.InputMethods,
		StressLevel:  req.StressLevel,
	}, t.themes)
	if !ok {
		return fmt.Sprintf("Error: unknown theme '%s'. Supported themes: %s.",
			req.Theme, strings.Join(ThemeNames(), ", ")), nil
	}

	return text, nil
}
