// Package catalog assembles the fixed eight-tool registry. The tables are
// built once here and injected by reference; nothing mutates them after
// startup.
package catalog

import (
	"fmt"

	"github.com/readbridge/readbridge-mcp/internal/tools"
	"github.com/readbridge/readbridge-mcp/internal/tools/curriculum"
	"github.com/readbridge/readbridge-mcp/internal/tools/engagement"
	"github.com/readbridge/readbridge-mcp/internal/tools/language"
	"github.com/readbridge/readbridge-mcp/internal/tools/practice"
	"github.com/readbridge/readbridge-mcp/internal/tools/stress"
	"github.com/readbridge/readbridge-mcp/internal/tools/ui"
)

func New() (*tools.Registry, error) {
	registry := tools.NewRegistry()

	rules := language.DefaultRuleSet()
	sequence := curriculum.DefaultSequence()
	themes := engagement.DefaultThemes()
	palettes := ui.DefaultPalettes()
	protocols := stress.DefaultTable()

	families := [][]tools.Tool{
		language.GetTools(rules),
		curriculum.GetTools(sequence),
		ui.GetTools(palettes),
		practice.GetTools(sequence),
		engagement.GetTools(themes),
		stress.GetTools(protocols),
	}

	for _, family := range families {
		for _, tool := range family {
			if err := registry.Register(tool); err != nil {
				return nil, fmt.Errorf("failed to register %s: %w", tool.Name(), err)
			}
		}
	}

	return registry, nil
}
