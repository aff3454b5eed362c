package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

type fakeTool struct {
	name   string
	schema string
	result interface{}
}

func (f *fakeTool) Name() string            { return f.name }
func (f *fakeTool) Description() string     { return "fake tool for registry tests" }
func (f *fakeTool) Schema() json.RawMessage { return json.RawMessage(f.schema) }
func (f *fakeTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return f.result, nil
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	tool := &fakeTool{name: "echo", schema: `{"type":"object","properties":{}}`}

	if err := r.Register(tool); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if err := r.Register(tool); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&fakeTool{name: "", schema: `{}`}); err == nil {
		t.Error("expected empty name registration to fail")
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Execute(context.Background(), "nope", nil)
	if err == nil {
		t.Fatal("expected error for unknown tool")
	}

	toolErr, ok := err.(*ToolError)
	if !ok {
		t.Fatalf("expected *ToolError, got %T", err)
	}
	if toolErr.Code != -32601 {
		t.Errorf("expected code -32601, got %d", toolErr.Code)
	}
}

func TestExecuteMissingRequired(t *testing.T) {
	r := NewRegistry()
	tool := &fakeTool{
		name:   "greet",
		schema: `{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`,
		result: "hello",
	}
	if err := r.Register(tool); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := r.Execute(context.Background(), "greet", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("missing required field must not be a protocol error: %v", err)
	}

	text, ok := result.(string)
	if !ok {
		t.Fatalf("expected string result, got %T", result)
	}
	if !strings.HasPrefix(text, "Error:") {
		t.Errorf("expected failure marker, got %q", text)
	}
	if !strings.Contains(text, "name") {
		t.Errorf("expected missing field named, got %q", text)
	}
}

func TestExecuteNullRequired(t *testing.T) {
	r := NewRegistry()
	tool := &fakeTool{
		name:   "greet",
		schema: `{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`,
		result: "hello",
	}
	if err := r.Register(tool); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := r.Execute(context.Background(), "greet", json.RawMessage(`{"name":null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text, ok := result.(string); !ok || !strings.HasPrefix(text, "Error:") {
		t.Errorf("null required field should be reported missing, got %v", result)
	}
}

func TestExecutePassesThrough(t *testing.T) {
	r := NewRegistry()
	tool := &fakeTool{
		name:   "greet",
		schema: `{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`,
		result: "hello",
	}
	if err := r.Register(tool); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := r.Execute(context.Background(), "greet", json.RawMessage(`{"name":"sam"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "hello" {
		t.Errorf("expected tool result, got %v", result)
	}
}

func TestListSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := r.Register(&fakeTool{name: name, schema: `{}`}); err != nil {
			t.Fatalf("register %s failed: %v", name, err)
		}
	}

	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %s at %d, got %s", name, i, names[i])
		}
	}
}
