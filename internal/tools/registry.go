package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Execute(ctx context.Context, input json.RawMessage) (interface{}, error)
}

type AnnotatedTool interface {
	Tool
	Title() string
	Annotations() map[string]bool
}

type Registry struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	required map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		required: make(map[string][]string),
	}
}

func (r *Registry) Register(tool Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered: %s", name)
	}

	required, err := requiredFields(tool.Schema())
	if err != nil {
		return fmt.Errorf("tool %s has invalid schema: %w", name, err)
	}

	r.tools[name] = tool
	r.required[name] = required
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Execute dispatches to a registered tool. An unknown name is the only
// protocol-level failure; a missing required argument is reported as a
// normal text response so clients see it in-band.
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) (interface{}, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, NewToolNotFoundError(name)
	}

	r.mu.RLock()
	required := r.required[name]
	r.mu.RUnlock()

	if missing := missingFields(input, required); len(missing) > 0 {
		return fmt.Sprintf("Error: missing required parameter(s) for %s: %s",
			name, strings.Join(missing, ", ")), nil
	}

	return tool.Execute(ctx, input)
}

func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		result = append(result, tool)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func requiredFields(schema json.RawMessage) ([]string, error) {
	var parsed struct {
		Required []string `json:"required"`
	}
	if err := json.Unmarshal(schema, &parsed); err != nil {
		return nil, err
	}
	return parsed.Required, nil
}

func missingFields(input json.RawMessage, required []string) []string {
	if len(required) == 0 {
		return nil
	}

	fields := make(map[string]json.RawMessage)
	if len(input) > 0 {
		// Malformed argument objects fall through with every field missing.
		json.Unmarshal(input, &fields)
	}

	var missing []string
	for _, name := range required {
		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			missing = append(missing, name)
		}
	}
	return missing
}
