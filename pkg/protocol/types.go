// Package protocol holds the MCP content envelope shared by the server and
// its tests. Every tool call returns exactly one text block; there is no
// structured success payload.
package protocol

type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type CallToolResult struct {
	Content []TextContent `json:"content"`
}

func NewTextResult(text string) *CallToolResult {
	return &CallToolResult{
		Content: []TextContent{{Type: "text", Text: text}},
	}
}
