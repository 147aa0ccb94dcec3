package mcp

import mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterAllTools wires every gocalc tool into the MCP server.
func RegisterAllTools(s *mcpsdk.Server, state *MCPServer) {
	registerKeypadTools(s, state)
	registerMemoryTools(s, state)
	registerHistoryTools(s, state)
	registerSessionTools(s, state)
}
