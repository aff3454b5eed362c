package stress

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/readbridge/readbridge-mcp/internal/tools"
)

func GetTools(table Table) []tools.Tool {
	return []tools.Tool{
		NewGetProtocolTool(table),
	}
}

type GetProtocolTool struct {
	table Table
}

func NewGetProtocolTool(table Table) *GetProtocolTool {
	return &GetProtocolTool{table: table}
}

func (t *GetProtocolTool) Name() string {
	return "get_stress_protocol"
}

func (t *GetProtocolTool) Description() string {
	return `Get the stress detection and response protocol for a trigger type
and severity. Behavioral and physiological triggers are implemented;
performance triggers are reserved.`
}

func (t *GetProtocolTool) Title() string {
	return "Get Stress Protocol"
}

func (t *GetProtocolTool) Annotations() map[string]bool {
	return tools.ReadOnlyAnnotations()
}

func (t *GetProtocolTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"triggerType": {
				"type": "string",
				"enum": ["behavioral", "physiological", "performance"],
				"description": "What kind of signal triggered the lookup"
			},
			"severity": {
				"type": "string",
				"enum": ["mild", "moderate", "high"],
				"description": "Observed severity"
			}
		},
		"required": ["triggerType", "severity"]
	}`)
}

func (t *GetProtocolTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var req struct {
		TriggerType string `json:"triggerType"`
		Severity    string `json:"severity"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}

	protocol, ok := t.table.Lookup(req.TriggerType, req.Severity)
	if !ok {
		return t.invalidParams(req.TriggerType, req.Severity), nil
	}

	return renderProtocol(req.TriggerType, req.Severity, protocol), nil
}

func (t *GetProtocolTool) invalidParams(triggerType, severity string) string {
	populated := make([]string, 0, len(t.table))
	for trigger := range t.table {
		populated = append(populated, trigger)
	}
	sort.Strings(populated)

	return fmt.Sprintf(
		"Error: no protocol defined for triggerType='%s', severity='%s'. "+
			"Populated trigger types: %s (severities: %s).",
		triggerType, severity,
		strings.Join(populated, ", "),
		strings.Join(Severities(), ", "))
}

func renderProtocol(triggerType, severity string, p Protocol) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Stress Response Protocol: %s / %s\n\n", triggerType, severity)

	sb.WriteString("## Detection Indicators\n")
	for _, indicator := range p.Detection {
		fmt.Fprintf(&sb, "- %s\n", indicator)
	}

	sb.WriteString("\n## Response Actions\n")
	for _, action := range p.Response {
		fmt.Fprintf(&sb, "- %s\n", action)
	}

	sb.WriteString("\n## Example\n")
	fmt.Fprintf(&sb, "```\n%s\n```\n", p.ExampleCode)

	return sb.String()
}
