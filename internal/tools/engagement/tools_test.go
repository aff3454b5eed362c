package engagement

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestGetTools(t *testing.T) {
	got := GetTools(DefaultThemes())
	if len(got) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(got))
	}
	if got[0].Name() != "validate_engagement_safety" {
		t.Errorf("unexpected first tool %s", got[0].Name())
	}
	if got[1].Name() != "generate_engagement_activity" {
		t.Errorf("unexpected second tool %s", got[1].Name())
	}
}

func TestValidateSafetyToolUnsafe(t *testing.T) {
	tool := NewValidateSafetyTool()

	input := json.RawMessage(`{"mechanic":"Timer-based challenges with leaderboard scoring"}`)
	result, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	text := result.(string)
	if !strings.Contains(text, "UNSAFE PATTERNS FOUND") {
		t.Errorf("expected unsafe status, got %q", text)
	}
	if !strings.Contains(text, "## Issues") {
		t.Error("expected issues section")
	}
}

func TestValidateSafetyToolSafe(t *testing.T) {
	tool := NewValidateSafetyTool()

	input := json.RawMessage(`{"mechanic":"Explore a garden and collect seeds"}`)
	result, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	text := result.(string)
	if !strings.Contains(text, "Status: SAFE") {
		t.Errorf("expected safe status, got %q", text)
	}
	if !strings.Contains(text, "## Suggestions") {
		t.Error("expected proactive suggestions section")
	}
}

func TestGenerateActivityToolDefaultsStressLevel(t *testing.T) {
	tool := NewGenerateActivityTool(DefaultThemes())

	input := json.RawMessage(`{"theme":"dragons","phoneme":"sh","inputMethods":["touch"]}`)
	result, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	text := result.(string)
	if !strings.Contains(text, "Complexity: rich") {
		t.Error("expected default low stress to select rich complexity")
	}
	if strings.Contains(text, "## Stress Adaptations") {
		t.Error("default stress must not add adaptations")
	}
}

func TestGenerateActivityToolUnknownTheme(t *testing.T) {
	tool := NewGenerateActivityTool(DefaultThemes())

	input := json.RawMessage(`{"theme":"pirates","phoneme":"sh","inputMethods":["touch"]}`)
	result, err := tool.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unknown theme must not be a protocol error: %v", err)
	}

	text := result.(string)
	if !strings.HasPrefix(text, "Error:") {
		t.Errorf("expected failure marker, got %q", text)
	}
	if !strings.Contains(text, "dragons") {
		t.Error("expected supported themes listed")
	}
}
