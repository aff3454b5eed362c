package language

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/scan"
	"github.com/readbridge/readbridge-mcp/internal/tools"
)

func GetTools(rules *RuleSet) []tools.Tool {
	return []tools.Tool{
		NewReviewTool(rules),
		NewGuidelinesTool(rules),
	}
}

type ReviewTool struct {
	rules *RuleSet
}

func NewReviewTool(rules *RuleSet) *ReviewTool {
	return &ReviewTool{rules: rules}
}

func (t *ReviewTool) Name() string {
	return "review_trauma_content"
}

func (t *ReviewTool) Description() string {
	return `Review learning content for trauma-informed language compliance.

Scans text for triggering words (failure framing, ability labels) and
pressure language, and suggests encouraging alternatives. Matching is
deterministic substring search against a curated phrase list, not
semantic analysis.`
}

func (t *ReviewTool) Title() string {
	return "Review Trauma-Informed Content"
}

func (t *ReviewTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *ReviewTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"text": {
				"type": "string",
				"description": "Content text to review"
			}
		},
		"required": ["text"]
	}`)
}

func (t *ReviewTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	result := Scan(req.Text, t.rules)
	return renderReview(result, t.rules), nil
}

func renderReview(result scan.Result, rules *RuleSet) string {
	var sb strings.Builder

	sb.WriteString("# Trauma-Informed Content Review\n\n")
	if result.Compliant {
		sb.WriteString("Status: COMPLIANT\n\n")
		sb.WriteString("No triggering or pressure language detected.\n")
	} else {
		sb.WriteString("Status: NEEDS REVISION\n\n")
		sb.WriteString("## Issues\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "- %s\n", issue)
		}
		sb.WriteString("\n## Recommendations\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&sb, "- %s\n", rec)
		}
	}

	sb.WriteString("\n## Guiding Principles\n")
	for i, p := range rules.Principles {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, p)
	}

	return sb.String()
}

type GuidelinesTool struct {
	rules *RuleSet
}

func NewGuidelinesTool(rules *RuleSet) *GuidelinesTool {
	return &GuidelinesTool{rules: rules}
}

func (t *GuidelinesTool) Name() string {
	return "get_language_guidelines"
}

func (t *GuidelinesTool) Description() string {
	return "Get the trauma-informed language guidelines: words to avoid, encouraging alternatives, and the principles behind them."
}

func (t *GuidelinesTool) Title() string {
	return "Language Guidelines"
}

func (t *GuidelinesTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GuidelinesTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *GuidelinesTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var sb strings.Builder
	sb.WriteString("# Trauma-Informed Language Guidelines\n\n")

	sb.WriteString("## Avoid\n")
	for _, phrase := range t.rules.Avoid {
		fmt.Fprintf(&sb, "- %s\n", phrase)
	}
	fmt.Fprintf(&sb, "\nAlso avoid pressure language: %s.\n", strings.Join(pressureWords, ", "))

	sb.WriteString("\n## Encourage\n")
	for _, phrase := range t.rules.Encourage {
		fmt.Fprintf(&sb, "- %s\n", phrase)
	}

	sb.WriteString("\n## Principles\n")
	for i, p := range t.rules.Principles {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, p)
	}

	return sb.String(), nil
}
