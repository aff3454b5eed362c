package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/tools"
)

func GetTools(palettes Palettes) []tools.Tool {
	return []tools.Tool{
		NewGenerateComponentTool(palettes),
	}
}

type GenerateComponentTool struct {
	palettes Palettes
}

func NewGenerateComponentTool(palettes Palettes) *GenerateComponentTool {
	return &GenerateComponentTool{palettes: palettes}
}

func (t *GenerateComponentTool) Name() string {
	return "generate_ui_component"
}

func (t *GenerateComponentTool) Description() string {
	return `Generate a dyslexia-friendly UI component descriptor.

Returns typography, color, and layout guidance for the component plus the
accessibility properties every generated component guarantees.`
}

func (t *GenerateComponentTool) Title() string {
	return "Generate UI Component"
}

func (t *GenerateComponentTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GenerateComponentTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"componentType": {
				"type": "string",
				"enum": ["button", "card", "text_display", "input", "navigation"],
				"description": "Kind of component to describe"
			},
			"content": {
				"type": "string",
				"description": "Text content or label for the component"
			},
			"intent": {
				"type": "string",
				"enum": ["primary", "success", "gentle", "focus"],
				"description": "Visual intent (default: primary)"
			}
		},
		"required": ["componentType", "content"]
	}`)
}

func (t *GenerateComponentTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		ComponentType string `json:"componentType"`
		Content       string `json:"content"`
		Intent        string `json:"intent"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	if req.Intent == "" {
		req.Intent = "primary"
	}

	guidance, ok := componentGuidance[req.ComponentType]
	if !ok {
		return fmt.Sprintf("Error: unknown component type '%s'. Supported types: %s.",
			req.ComponentType, strings.Join(ComponentTypes(), ", ")), nil
	}

	palette := t.palettes.Resolve(req.Intent)
	return renderComponent(req.ComponentType, req.Content, req.Intent, palette, guidance), nil
}

func renderComponent(componentType, content, intent string, palette Palette, guidance []string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# UI Component: %s\n\n", componentType)
	fmt.Fprintf(&sb, "Content: %q\n", content)
	fmt.Fprintf(&sb, "Intent: %s\n\n", intent)

	sb.WriteString("## Color Scheme\n")
	fmt.Fprintf(&sb, "- Scheme: %s\n", palette.Name)
	fmt.Fprintf(&sb, "- Background: %s\n", palette.Background)
	fmt.Fprintf(&sb, "- Text: %s\n", palette.Text)
	fmt.Fprintf(&sb, "- Accent: %s\n", palette.Accent)

	sb.WriteString("\n## Typography\n")
	sb.WriteString("- Font: OpenDyslexic, with Lexend and system sans-serif fallbacks\n")
	sb.WriteString("- Minimum size: 18px body text\n")
	sb.WriteString("- Line spacing: 1.5\n")

	fmt.Fprintf(&sb, "\n## %s Guidance\n", titleCase(componentType))
	for _, item := range guidance {
		fmt.Fprintf(&sb, "- %s\n", item)
	}

	sb.WriteString("\n## Accessibility Guarantees\n")
	sb.WriteString("- Touch targets at least 44x44px\n")
	sb.WriteString("- Text contrast at or above 4.5:1\n")
	sb.WriteString("- Visible focus indicator on every interactive element\n")
	sb.WriteString("- ARIA labels on all controls\n")

	return sb.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ReplaceAll(s[1:], "_", " ")
}
