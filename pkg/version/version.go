package version

const (
	Version         = "0.3.1"
	ServerName      = "ReadBridge MCP Server"
	ProtocolVersion = "2024-11-05"
)

var SupportedProtocolVersions = []string{
	"2025-06-18",
	"2025-03-26",
	"2024-11-05",
}
