package stress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestPopulatedPairs(t *testing.T) {
	table := DefaultTable()

	for _, trigger := range []string{"behavioral", "physiological"} {
		for _, severity := range Severities() {
			p, ok := table.Lookup(trigger, severity)
			if !ok {
				t.Errorf("expected protocol for %s/%s", trigger, severity)
				continue
			}
			if len(p.Detection) == 0 {
				t.Errorf("%s/%s has no detection indicators", trigger, severity)
			}
			if len(p.Response) == 0 {
				t.Errorf("%s/%s has no response actions", trigger, severity)
			}
			if p.ExampleCode == "" {
				t.Errorf("%s/%s has no example", trigger, severity)
			}
		}
	}
}

func TestPerformanceReserved(t *testing.T) {
	table := DefaultTable()

	for _, severity := range Severities() {
		if _, ok := table.Lookup("performance", severity); ok {
			t.Errorf("performance/%s must not be populated", severity)
		}
	}
}

func TestGetProtocolTool(t *testing.T) {
	tool := NewGetProtocolTool(DefaultTable())

	input := json.RawMessage(`{"triggerType":"behavioral","severity":"moderate"}`)
	result, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	text := result.(string)
	if !strings.Contains(text, "behavioral / moderate") {
		t.Errorf("expected protocol header, got %q", text)
	}
	if !strings.Contains(text, "## Detection Indicators") {
		t.Error("expected detection section")
	}
	if !strings.Contains(text, "## Response Actions") {
		t.Error("expected response section")
	}
}

func TestGetProtocolToolInvalidPair(t *testing.T) {
	tool := NewGetProtocolTool(DefaultTable())

	for _, severity := range Severities() {
		input := json.RawMessage(fmt.Sprintf(`{"triggerType":"performance","severity":"%s"}`, severity))
		result, err := tool.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("reserved trigger must not be a protocol error: %v", err)
		}

		text := result.(string)
		if !strings.HasPrefix(text, "Error:") {
			t.Errorf("expected failure marker, got %q", text)
		}
		if !strings.Contains(text, "behavioral, physiological") {
			t.Errorf("expected populated trigger types listed, got %q", text)
		}
	}
}

func TestGetProtocolToolDeterministic(t *testing.T) {
	tool := NewGetProtocolTool(DefaultTable())
	input := json.RawMessage(`{"triggerType":"physiological","severity":"high"}`)

	first, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	second, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if first.(string) != second.(string) {
		t.Error("identical input should yield byte-identical output")
	}
}
