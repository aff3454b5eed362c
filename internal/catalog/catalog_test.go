package catalog

import (
	"testing"
)

func TestCatalogHasExactlyEightTools(t *testing.T) {
	registry, err := New()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	want := []string{
		"generate_engagement_activity",
		"generate_phoneme_activity",
		"generate_ui_component",
		"get_language_guidelines",
		"get_stress_protocol",
		"review_trauma_content",
		"validate_engagement_safety",
		"validate_og_activity",
	}

	names := registry.Names()
	if len(names) != len(want) {
		t.Fatalf("expected %d tools, got %d: %v", len(want), len(names), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %s at %d, got %s", name, i, names[i])
		}
	}
}

func TestCatalogToolsHaveSchemas(t *testing.T) {
	registry, err := New()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	for _, tool := range registry.List() {
		if tool.Description() == "" {
			t.Errorf("tool %s has no description", tool.Name())
		}
		if len(tool.Schema()) == 0 {
			t.Errorf("tool %s has no schema", tool.Name())
		}
	}
}
