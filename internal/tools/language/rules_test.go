package language

import (
	"strings"
	"testing"
)

func TestScanFlagsTriggeringWords(t *testing.T) {
	rules := DefaultRuleSet()
	result := Scan("You got that wrong! Try again.", rules)

	if result.Compliant {
		t.Error("expected non-compliant result")
	}

	joined := strings.Join(result.Issues, "\n")
	if !strings.Contains(joined, "'wrong'") {
		t.Errorf("expected issue citing 'wrong', got %q", joined)
	}
	if !strings.Contains(joined, "'try again'") {
		t.Errorf("expected issue citing 'try again', got %q", joined)
	}

	if len(result.Recommendations) == 0 {
		t.Error("expected recommendations when issues found")
	}
}

func TestScanCompliantText(t *testing.T) {
	rules := DefaultRuleSet()
	result := Scan("Let's practice this sound together.", rules)

	if !result.Compliant {
		t.Errorf("expected compliant result, issues: %v", result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("expected no issues, got %v", result.Issues)
	}
}

func TestScanPressureWords(t *testing.T) {
	rules := DefaultRuleSet()
	result := Scan("You need to finish this now.", rules)

	if result.Compliant {
		t.Error("expected pressure language to be flagged")
	}

	joined := strings.Join(result.Issues, "\n")
	if !strings.Contains(joined, "pressure language") {
		t.Errorf("expected pressure language issue, got %q", joined)
	}
	if !strings.Contains(joined, "'need to'") {
		t.Errorf("expected 'need to' cited, got %q", joined)
	}
}

func TestScanCaseInsensitive(t *testing.T) {
	rules := DefaultRuleSet()
	result := Scan("That was WRONG.", rules)

	if result.Compliant {
		t.Error("expected case-insensitive match for WRONG")
	}
}

func TestScanRecommendationsAreStatic(t *testing.T) {
	rules := DefaultRuleSet()
	first := Scan("wrong", rules)
	second := Scan("hurry", rules)

	if len(first.Recommendations) != len(encouragementAlternatives) {
		t.Errorf("expected fixed recommendation list, got %d entries", len(first.Recommendations))
	}
	for i := range first.Recommendations {
		if first.Recommendations[i] != second.Recommendations[i] {
			t.Error("recommendations should not depend on the matched phrase")
		}
	}
}

func TestScanDeterministic(t *testing.T) {
	rules := DefaultRuleSet()
	text := "You must not fail; hurry up and try again."

	first := Scan(text, rules)
	for i := 0; i < 10; i++ {
		next := Scan(text, rules)
		if strings.Join(next.Issues, "|") != strings.Join(first.Issues, "|") {
			t.Fatal("issue order not deterministic")
		}
	}
}
