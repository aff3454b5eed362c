// Package scan holds the text-matching primitives shared by the validators:
// Unicode case folding and the structural flatten that turns loose-schema
// payloads into searchable text. Flattening is the one place where untyped
// payload data is handled; everything downstream works on plain strings.
package scan

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold case-folds text for caseless substring matching.
func Fold(s string) string {
	return folder.String(s)
}

// Contains reports whether phrase occurs in folded text. The phrase is
// expected to already be lower case (all rule tables are).
func Contains(folded, phrase string) bool {
	return strings.Contains(folded, phrase)
}

// Flatten renders an arbitrary decoded JSON value as a single searchable
// string. Map keys are emitted too (a modality may appear only as a key)
// and are visited in sorted order so output is deterministic.
func Flatten(v any) string {
	var sb strings.Builder
	flattenInto(&sb, v)
	return strings.TrimSpace(sb.String())
}

// FoldFlatten is Flatten followed by Fold, the form every validator scans.
func FoldFlatten(v any) string {
	return Fold(Flatten(v))
}

func flattenInto(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
	case string:
		sb.WriteString(val)
		sb.WriteByte(' ')
	case bool:
		sb.WriteString(strconv.FormatBool(val))
		sb.WriteByte(' ')
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
		sb.WriteByte(' ')
	case json.Number:
		sb.WriteString(val.String())
		sb.WriteByte(' ')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(k)
			sb.WriteByte(' ')
			flattenInto(sb, val[k])
		}
	case []any:
		for _, item := range val {
			flattenInto(sb, item)
		}
	default:
		fmt.Fprintf(sb, "%v ", val)
	}
}

// Result is the outcome of a rule scan. Compliant is true exactly when
// Issues is empty; Recommendations may be non-empty either way.
type Result struct {
	Compliant       bool
	Issues          []string
	Recommendations []string
}

func NewResult(issues, recommendations []string) Result {
	return Result{
		Compliant:       len(issues) == 0,
		Issues:          issues,
		Recommendations: recommendations,
	}
}
