package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/readbridge/readbridge-mcp/internal/audit"
	"github.com/readbridge/readbridge-mcp/internal/logger"
	"github.com/readbridge/readbridge-mcp/internal/tools"
	"github.com/readbridge/readbridge-mcp/pkg/protocol"
	"github.com/readbridge/readbridge-mcp/pkg/version"
)

var log = logger.ForComponent("mcp")

type Handler struct {
	registry    *tools.Registry
	audit       *audit.Store
	startTime   time.Time
	initialized bool
	clientInfo  ClientInfo
}

type ClientInfo struct {
	Name    string
	Version string
}

// NewHandler wires the tool registry and an optional audit store (nil
// disables invocation logging).
func NewHandler(registry *tools.Registry, auditStore *audit.Store) *Handler {
	return &Handler{
		registry:  registry,
		audit:     auditStore,
		startTime: time.Now(),
	}
}

// Dispatch routes one MCP method. A nil *jsonrpc2.Error means success.
func (h *Handler) Dispatch(ctx context.Context, method string, params *json.RawMessage) (interface{}, *jsonrpc2.Error) {
	switch method {
	case "initialize":
		result, err := h.handleInitialize(params)
		if err != nil {
			return nil, &jsonrpc2.Error{Code: -32603, Message: err.Error()}
		}
		return result, nil
	case "ping":
		return map[string]interface{}{}, nil
	case "tools/list":
		return h.handleListTools(), nil
	case "tools/call":
		result, err := h.handleCallTool(ctx, params)
		if err != nil {
			return nil, &jsonrpc2.Error{Code: errorCode(err), Message: err.Error()}
		}
		return result, nil
	default:
		return nil, &jsonrpc2.Error{
			Code:    -32601,
			Message: fmt.Sprintf("Method not found: %s", method),
		}
	}
}

// HandleNotification processes methods that never get a response.
func (h *Handler) HandleNotification(method string) {
	if method == "notifications/initialized" {
		h.initialized = true
	}
}

func (h *Handler) handleInitialize(params *json.RawMessage) (interface{}, error) {
	initReq := struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}{}

	if params != nil {
		if err := json.Unmarshal(*params, &initReq); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}

	h.clientInfo.Name = initReq.ClientInfo.Name
	h.clientInfo.Version = initReq.ClientInfo.Version

	return map[string]interface{}{
		"protocolVersion": negotiateProtocolVersion(initReq.ProtocolVersion),
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    version.ServerName,
			"version": version.Version,
		},
	}, nil
}

func negotiateProtocolVersion(clientVersion string) string {
	for _, v := range version.SupportedProtocolVersions {
		if clientVersion == v {
			return v
		}
	}
	return version.ProtocolVersion
}

func (h *Handler) handleListTools() interface{} {
	toolsList := h.registry.List()
	toolsData := make([]map[string]interface{}, len(toolsList))

	for i, t := range toolsList {
		var schema interface{}
		if err := json.Unmarshal(t.Schema(), &schema); err != nil {
			schema = json.RawMessage(t.Schema())
		}

		toolData := map[string]interface{}{
			"name":        t.Name(),
			"description": t.Description(),
			"inputSchema": schema,
		}

		if annotated, ok := t.(tools.AnnotatedTool); ok {
			if title := annotated.Title(); title != "" {
				toolData["title"] = title
			}
			if annotations := annotated.Annotations(); annotations != nil {
				toolData["annotations"] = annotations
			}
		}

		toolsData[i] = toolData
	}

	return map[string]interface{}{
		"tools": toolsData,
	}
}

func (h *Handler) handleCallTool(ctx context.Context, params *json.RawMessage) (result interface{}, err error) {
	callReq := struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}{}

	if params != nil {
		if err := json.Unmarshal(*params, &callReq); err != nil {
			return nil, fmt.Errorf("failed to parse tool call request: %w", err)
		}
	}

	if callReq.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool execution panicked: %v", r)
			log.Error("tool panic recovered",
				"tool", callReq.Name,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	started := time.Now()
	raw, err := h.registry.Execute(ctx, callReq.Name, callReq.Arguments)
	h.recordInvocation(callReq.Name, err, time.Since(started))
	if err != nil {
		return nil, err
	}

	text, ok := raw.(string)
	if !ok {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
		text = string(data)
	}

	return protocol.NewTextResult(text), nil
}

func (h *Handler) recordInvocation(tool string, callErr error, duration time.Duration) {
	if h.audit == nil {
		return
	}

	outcome := "ok"
	if callErr != nil {
		outcome = "error"
	}

	if err := h.audit.Record(audit.Entry{Tool: tool, Outcome: outcome, Duration: duration}); err != nil {
		log.Warn("failed to record invocation", "tool", tool, "error", err)
	}
}

func errorCode(err error) int64 {
	if toolErr, ok := err.(*tools.ToolError); ok {
		return int64(toolErr.Code)
	}
	return -32603
}
