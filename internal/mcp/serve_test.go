package mcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/readbridge/readbridge-mcp/internal/catalog"
)

type noopClientHandler struct{}

func (noopClientHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {}

func TestServeRoundTrip(t *testing.T) {
	registry, err := catalog.New()
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	handler := NewHandler(registry, nil)

	serverConn, clientConn := net.Pipe()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, handler, serverConn)
	}()

	client := jsonrpc2.NewConn(ctx, jsonrpc2.NewPlainObjectStream(clientConn), noopClientHandler{})
	defer client.Close()

	var listResult struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := client.Call(ctx, "tools/list", nil, &listResult); err != nil {
		t.Fatalf("tools/list call failed: %v", err)
	}
	if len(listResult.Tools) != 8 {
		t.Errorf("expected 8 tools over the wire, got %d", len(listResult.Tools))
	}

	var callResult struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	params := map[string]interface{}{
		"name":      "get_stress_protocol",
		"arguments": map[string]string{"triggerType": "behavioral", "severity": "mild"},
	}
	if err := client.Call(ctx, "tools/call", params, &callResult); err != nil {
		t.Fatalf("tools/call failed: %v", err)
	}
	if len(callResult.Content) != 1 || callResult.Content[0].Type != "text" {
		t.Fatalf("expected one text block, got %+v", callResult.Content)
	}

	client.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("server did not stop after client disconnect")
	}
}
